package editor

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/glyphwidth"
)

// render paints the visible rows onto a width x height grid. Rows past the
// end of the document are blank; the cursor cell is drawn with Style.Cursor.
func (m Model) render() string {
	width, height := m.vp.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := m.vp.VisibleLines()
	cursor := m.vp.CursorPosition()
	st := m.cfg.Style

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		line := ""
		if row < len(lines) {
			line = fitCells(lines[row], width)
		}
		if m.focused && row == cursor.Y && cursor.X < width {
			out = append(out, renderCursorRow(st, line, cursor.X, width))
			continue
		}
		out = append(out, st.Text.Render(padCells(line, width)))
	}
	return strings.Join(out, "\n")
}

// renderCursorRow styles the glyph covering cell x. A cursor past the end of
// the row gets a one-cell placeholder space.
func renderCursorRow(st Style, line string, x, width int) string {
	var before, at strings.Builder
	after := ""
	cell := 0
	for i, r := range line {
		w := glyphwidth.Of(r)
		if x < cell+w {
			at.WriteRune(r)
			after = line[i+len(string(r)):]
			cell += w
			break
		}
		before.WriteRune(r)
		cell += w
	}

	if at.Len() == 0 {
		before.WriteString(strings.Repeat(" ", x-cell))
		at.WriteByte(' ')
		cell = x + 1
	}

	var sb strings.Builder
	if before.Len() > 0 {
		sb.WriteString(st.Text.Render(before.String()))
	}
	sb.WriteString(st.Cursor.Render(at.String()))
	rest := padCells(after, width-cell)
	if rest != "" {
		sb.WriteString(st.Text.Render(rest))
	}
	return sb.String()
}

// padCells right-pads s with spaces to width display cells.
func padCells(s string, width int) string {
	if n := width - glyphwidth.String(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// fitCells prepares a clipped row for the grid. Tabs are drawn as a single
// space, matching their width in the document. A left-edge filler may push
// the row one cell past the window, so it is cut at width cells with '>'
// standing in for a wide glyph that no longer fits.
func fitCells(s string, width int) string {
	var sb strings.Builder
	used := 0
	for _, r := range s {
		w := glyphwidth.Of(r)
		if used+w > width {
			sb.WriteString(strings.Repeat(">", width-used))
			break
		}
		if r == '\t' {
			r = ' '
		}
		sb.WriteRune(r)
		used += w
	}
	return sb.String()
}
