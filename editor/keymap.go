package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Scroll bindings name the direction the content moves: ScrollUp reveals the
// rows below the window. Bindings must be portable across terminals
// (ctrl/alt fallbacks).
type KeyMap struct {
	Backspace key.Binding
	Enter     key.Binding
	Tab       key.Binding

	ScrollUp, ScrollDown    key.Binding
	ScrollLeft, ScrollRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		// Portable scrolling: terminals vary between alt+arrows and ctrl+arrows.
		ScrollUp:    key.NewBinding(key.WithKeys("ctrl+down", "alt+down"), key.WithHelp("ctrl+↓", "scroll down")),
		ScrollDown:  key.NewBinding(key.WithKeys("ctrl+up", "alt+up"), key.WithHelp("ctrl+↑", "scroll up")),
		ScrollLeft:  key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "scroll right")),
		ScrollRight: key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "scroll left")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Backspace, k.ScrollUp, k.ScrollDown}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Tab, k.Backspace},
		{k.ScrollUp, k.ScrollDown, k.ScrollLeft, k.ScrollRight},
	}
}
