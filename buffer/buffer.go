package buffer

import "github.com/iw2rmb/scribe/internal/glyphwidth"

type Options struct {
	// Strict makes Lines panic when it observes records out of line order.
	// Otherwise the offending record is skipped and reported.
	Strict bool

	// OnInconsistency receives every skipped record when Strict is false.
	OnInconsistency func(err error)
}

// Buffer is the document state: the raw rune sequence and its derived
// Character records, always equal in length and aligned by index.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	raw     []rune
	parsed  []Character
	version uint64

	opt Options
}

func New(text string, opt Options) *Buffer {
	b := &Buffer{
		raw: []rune(text),
		opt: opt,
	}
	b.parse()
	return b
}

func (b *Buffer) Text() string { return string(b.raw) }

func (b *Buffer) Len() int { return len(b.raw) }

// Version increments on every mutation that changes the text.
func (b *Buffer) Version() uint64 { return b.version }

// Characters returns a copy of every derived record in buffer order.
func (b *Buffer) Characters() []Character {
	return append([]Character(nil), b.parsed...)
}

// parse re-derives every record from raw. Mutations always call it, so the
// records never need incremental maintenance.
func (b *Buffer) parse() {
	if cap(b.parsed) < len(b.raw) {
		b.parsed = make([]Character, 0, len(b.raw))
	}
	b.parsed = b.parsed[:0]

	var loc Location
	var pos Position
	for i, r := range b.raw {
		w := glyphwidth.Of(r)
		b.parsed = append(b.parsed, Character{
			Value:    r,
			Index:    i,
			Width:    w,
			Location: loc,
			Position: pos,
		})
		// A newline terminates its own line; the next rune starts a new one.
		if r == '\n' {
			loc.Line++
			loc.Col = 0
			pos.X = 0
			pos.Y++
			continue
		}
		loc.Col++
		pos.X += w
	}
}
