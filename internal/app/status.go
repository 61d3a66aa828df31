package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

const title = "Editor"

type styles struct {
	status lipgloss.Style
	log    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		status: lipgloss.NewStyle().Reverse(true),
		log:    lipgloss.NewStyle().Faint(true),
	}
}

// statusText lays out the cursor summary on the left and the title on the
// right, truncated to width. The character count is in grapheme clusters.
func (m Model) statusText() string {
	vp := m.editor.Viewport()
	st := vp.State()
	left := fmt.Sprintf("Ln %d, Col %d | top %d left %d | %d chars",
		st.Cursor.Line+1, st.Cursor.Col+1, st.OffsetTop, st.OffsetLeft, grapheme.Count(vp.Buffer().Text()))

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(title)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + title
}

func (m Model) statusBar() string {
	return m.styles.status.Render(m.statusText())
}
