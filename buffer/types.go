package buffer

// Location points into the logical document by (line, column) in runes.
//
// Line increments once per newline consumed in buffer order. Col counts every
// rune on a line, so a newline occupies the column after the last rune of the
// line it terminates, and the rune after it starts the next line at column 0.
type Location struct {
	Line int
	Col  int
}

// Position is a rendered coordinate in display columns.
type Position struct {
	X int
	Y int
}

// Range is a half-open span of Locations: [Start, End).
type Range struct {
	Start Location
	End   Location
}

// Character is the derived metadata for one rune of the buffer.
//
// Records are values owned by the Buffer. Any mutation re-derives them, so a
// record obtained before an Insert or Remove describes a stale document.
type Character struct {
	Value    rune
	Index    int
	Width    int
	Location Location
	Position Position
}

// Line is a maximal run of visible Characters sharing one line number.
// Zero-width records, including the newline itself, are not part of it.
type Line []Character

func (l Line) String() string {
	rs := make([]rune, len(l))
	for i, c := range l {
		rs[i] = c.Value
	}
	return string(rs)
}

// Width returns the number of display columns the line occupies.
func (l Line) Width() int {
	w := 0
	for _, c := range l {
		w += c.Width
	}
	return w
}

func CompareLocation(a, b Location) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func (l Location) Less(o Location) bool { return CompareLocation(l, o) < 0 }

func NewRange(start, end Location) Range {
	return Range{Start: start, End: end}
}

func (r Range) IsEmpty() bool {
	return CompareLocation(r.Start, r.End) >= 0
}

// Contains reports whether l lies in [Start, End).
func (r Range) Contains(l Location) bool {
	return CompareLocation(l, r.Start) >= 0 && CompareLocation(l, r.End) < 0
}
