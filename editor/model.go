package editor

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component that renders and edits a Viewport.
type Model struct {
	cfg     Config
	keys    KeyMap
	log     *slog.Logger
	vp      *Viewport
	focused bool
}

func New(cfg Config) Model {
	return Model{
		cfg:     cfg,
		keys:    cfg.keyMap(),
		log:     cfg.logger(),
		vp:      NewViewport(cfg.Width, cfg.Height, ViewportOptions{Text: cfg.Text, Buffer: cfg.Buffer}),
		focused: true,
	}
}

// Viewport exposes the underlying viewport. Edits made through it bypass
// ReadOnly and OnChange.
func (m Model) Viewport() *Viewport { return m.vp }

func (m Model) Text() string { return m.vp.Buffer().Text() }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.vp.Resize(width, height)
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) View() string { return m.render() }
