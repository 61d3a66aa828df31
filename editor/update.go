package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(string(msg.Runes))
		return m, nil
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.ScrollUp):
		m.scroll(m.vp.ScrollUp)
	case key.Matches(msg, km.ScrollDown):
		m.scroll(m.vp.ScrollDown)
	case key.Matches(msg, km.ScrollLeft):
		m.scroll(m.vp.ScrollLeft)
	case key.Matches(msg, km.ScrollRight):
		m.scroll(m.vp.ScrollRight)

	case key.Matches(msg, km.Backspace):
		m.backspace()
	case key.Matches(msg, km.Enter):
		m.input("\n")
	case key.Matches(msg, km.Tab):
		m.input("\t")

	default:
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && len(msg.Runes) > 0 && !msg.Alt {
			m.insertText(string(msg.Runes))
		}
	}

	return m, nil
}

// insertText feeds text to the viewport one grapheme cluster at a time so the
// cursor is re-centered after every glyph rather than once per burst.
func (m Model) insertText(s string) {
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for _, g := range grapheme.Split(s) {
		m.input(g)
	}
}

func (m Model) input(s string) {
	if m.cfg.ReadOnly || s == "" {
		return
	}
	m.checkWidth(s)
	before := m.vp.Buffer().Version()
	m.vp.Input(s)
	if m.vp.Buffer().Version() == before {
		return
	}
	m.log.Debug("input", "text", s, "cursor", m.vp.Cursor())
	m.emitChange()
}

func (m Model) backspace() {
	if m.cfg.ReadOnly {
		return
	}
	before := m.vp.Buffer().Version()
	m.vp.Backspace()
	if m.vp.Buffer().Version() == before {
		return
	}
	m.log.Debug("backspace", "cursor", m.vp.Cursor())
	m.emitChange()
}

func (m Model) scroll(fn func()) {
	if m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
		return
	}
	fn()
}

func (m Model) emitChange() {
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.vp))
}
