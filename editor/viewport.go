package editor

import (
	"strings"

	"github.com/iw2rmb/scribe/buffer"
)

// ViewportOptions configures a Viewport.
type ViewportOptions struct {
	// Initial text for the owned buffer.
	Text string

	// Forwarded to buffer.New.
	Buffer buffer.Options
}

// Viewport projects a Buffer onto a fixed-size window.
//
// It owns the buffer, the cursor Location and two scroll offsets. Every edit
// goes through the Viewport so the cursor and the offsets stay consistent
// with the text. Viewport is not safe for concurrent use.
type Viewport struct {
	buf *buffer.Buffer

	width  int
	height int

	offsetTop  int
	offsetLeft int

	cursor buffer.Location
}

func NewViewport(width, height int, opt ViewportOptions) *Viewport {
	return &Viewport{
		buf:    buffer.New(opt.Text, opt.Buffer),
		width:  maxInt(width, 0),
		height: maxInt(height, 0),
	}
}

func (v *Viewport) Buffer() *buffer.Buffer { return v.buf }

func (v *Viewport) Cursor() buffer.Location { return v.cursor }

func (v *Viewport) Size() (width, height int) { return v.width, v.height }

// Input inserts text at the cursor and moves the cursor one column past the
// last inserted character. A trailing newline moves it to the start of the
// next line.
func (v *Viewport) Input(text string) {
	chars := v.buf.Insert(v.cursor, text)
	if len(chars) == 0 {
		return
	}
	last := chars[len(chars)-1]
	if last.Value == '\n' {
		v.cursor = buffer.Location{Line: last.Location.Line + 1}
	} else {
		v.cursor = buffer.Location{Line: last.Location.Line, Col: last.Location.Col + 1}
	}
	v.autoCenter()
}

// Backspace removes the character before the cursor. At the start of the
// document it does nothing.
func (v *Viewport) Backspace() {
	c, ok := v.buf.Before(v.cursor)
	if !ok {
		return
	}
	v.buf.Remove(buffer.NewRange(c.Location, v.cursor))
	v.cursor = c.Location
	v.autoCenter()
}

func (v *Viewport) Resize(width, height int) {
	v.width = maxInt(width, 0)
	v.height = maxInt(height, 0)
	v.autoCenter()
}

// ScrollUp moves the content up by one row.
func (v *Viewport) ScrollUp() { v.offsetTop++ }

// ScrollDown moves the content down by one row, stopping at the first row.
func (v *Viewport) ScrollDown() { v.offsetTop = saturatingSub(v.offsetTop, 1) }

// ScrollLeft moves the content left by one column.
func (v *Viewport) ScrollLeft() { v.offsetLeft++ }

// ScrollRight moves the content right by one column, stopping at the first
// column.
func (v *Viewport) ScrollRight() { v.offsetLeft = saturatingSub(v.offsetLeft, 1) }

// CursorPosition returns the cursor's cell relative to the scrolled window.
func (v *Viewport) CursorPosition() buffer.Position {
	pos := v.absoluteCursorPosition()
	return buffer.Position{
		X: saturatingSub(pos.X, v.offsetLeft),
		Y: saturatingSub(pos.Y, v.offsetTop),
	}
}

// absoluteCursorPosition returns the rendered Position of the character under
// the cursor. A cursor past the last character sits right after it, which is
// the start of the next row when the document ends with a newline.
func (v *Viewport) absoluteCursorPosition() buffer.Position {
	if c, ok := v.buf.Get(v.cursor); ok {
		return c.Position
	}
	last, ok := v.buf.Last()
	if !ok {
		return buffer.Position{}
	}
	if last.Value == '\n' {
		return buffer.Position{X: 0, Y: last.Position.Y + 1}
	}
	pos := last.Position
	pos.X += last.Width
	return pos
}

// VisibleLines clips the document to the window, one string per row.
//
// A wide glyph cut by the left edge renders as '<' fillers and one cut by the
// right edge as '>' fillers, one per visible column. Left fillers are emitted
// in front of up to width cells of content, so a row may be one cell wider
// than the window; renderers clip it.
func (v *Viewport) VisibleLines() []string {
	lines := v.buf.Lines()
	if v.offsetTop >= len(lines) || v.height == 0 {
		return []string{}
	}
	end := minInt(v.offsetTop+v.height, len(lines))

	out := make([]string, 0, end-v.offsetTop)
	for _, line := range lines[v.offsetTop:end] {
		out = append(out, clipLine(line, v.offsetLeft, v.width))
	}
	return out
}

func clipLine(line buffer.Line, left, width int) string {
	var sb strings.Builder
	cut := 0
	used := 0
	for _, c := range line {
		if cut < left {
			if cut+c.Width <= left {
				cut += c.Width
				continue
			}
			// Fillers do not count toward the content width.
			sb.WriteString(strings.Repeat("<", cut+c.Width-left))
			cut = left
			continue
		}
		if used >= width {
			break
		}
		if used+c.Width <= width {
			sb.WriteRune(c.Value)
			used += c.Width
			continue
		}
		sb.WriteString(strings.Repeat(">", width-used))
		break
	}
	return sb.String()
}

// autoCenter keeps the cursor inside the window after an edit or resize.
//
// Horizontal corrections jump by half a page since typing moves the cursor in
// bursts. Vertical corrections move one row at a time.
func (v *Viewport) autoCenter() {
	rel := v.CursorPosition()
	abs := v.absoluteCursorPosition()
	half := v.width / 2

	if rel.X > v.width {
		v.offsetLeft += half
	}
	if v.height > 0 && rel.Y > v.height-1 {
		v.offsetTop++
	}
	if abs.X < v.offsetLeft {
		v.offsetLeft = saturatingSub(v.offsetLeft, half)
	}
	if abs.Y < v.offsetTop {
		v.offsetTop = saturatingSub(v.offsetTop, 1)
	}
}

func saturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
