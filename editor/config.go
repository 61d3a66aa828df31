package editor

import (
	"log/slog"

	"github.com/iw2rmb/scribe/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Initial window size. Hosts usually resize on the first
	// tea.WindowSizeMsg.
	Width  int
	Height int

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap
	Style  Style

	// ScrollPolicy controls whether manual scrolling is honoured.
	ScrollPolicy ScrollPolicy

	// ReadOnly ignores every text mutation. Scrolling still works.
	ReadOnly bool

	// Forwarded to buffer.Options.
	Buffer buffer.Options

	// Logger receives debug records for edits and width diagnostics.
	// Nil discards them.
	Logger *slog.Logger

	// OnChange is called after every edit that changed the text.
	OnChange func(ChangeEvent)
}

func (c Config) keyMap() KeyMap {
	if len(c.KeyMap.Enter.Keys()) == 0 {
		return DefaultKeyMap()
	}
	return c.KeyMap
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
