// Package glyphwidth maps code points to terminal display widths.
//
// The table is a fixed list of ascending (upper bound, width) ranges derived
// from urwid's str_util widths. It intentionally does not consult the
// terminal or the locale: every width in the document model comes from here.
package glyphwidth

type widthRange struct {
	upper rune
	width int
}

var widths = [...]widthRange{
	{126, 1},
	{159, 0},
	{687, 1},
	{710, 0},
	{711, 1},
	{727, 0},
	{733, 1},
	{879, 0},
	{1154, 1},
	{1161, 0},
	{4347, 1},
	{4447, 2},
	{7467, 1},
	{7521, 0},
	{8369, 1},
	{8426, 0},
	{9000, 1},
	{9002, 2},
	{11021, 1},
	{12350, 2},
	{12351, 1},
	{12438, 2},
	{12442, 0},
	{19893, 2},
	{19967, 1},
	{55203, 2},
	{63743, 1},
	{64106, 2},
	{65039, 1},
	{65059, 0},
	{65131, 2},
	{65279, 1},
	{65376, 2},
	{65500, 1},
	{65510, 2},
	{120831, 1},
	{130047, 1},
	{262141, 2},
	{1114109, 1},
}

// Of returns the number of display columns r occupies: 0, 1 or 2.
//
// Line feed, carriage return, shift-out and shift-in are always zero width,
// regardless of the range table.
func Of(r rune) int {
	switch r {
	case '\n', '\r', 0x0e, 0x0f:
		return 0
	}
	for _, wr := range widths {
		if r <= wr.upper {
			return wr.width
		}
	}
	return 1
}

// String returns the summed width of every rune in s.
func String(s string) int {
	w := 0
	for _, r := range s {
		w += Of(r)
	}
	return w
}
