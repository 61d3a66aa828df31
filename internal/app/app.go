// Package app is the terminal shell around the editor: layout, status bar,
// diagnostics panel and the Bubble Tea program lifecycle.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/diag"
	"github.com/iw2rmb/scribe/editor"
)

// Size used until the terminal reports its dimensions.
const (
	initialWidth  = 50
	initialHeight = 50
)

// logPercent is the share of the screen height given to the diagnostics panel.
const logPercent = 20

type Config struct {
	Text string

	// ShowLog shows the diagnostics panel at start.
	ShowLog bool

	LogLevel slog.Level

	// LogMax bounds the diagnostics log. Zero means diag.DefaultMaxLines.
	LogMax int

	// FollowOnly disables manual scrolling.
	FollowOnly bool
}

// Model is the root Bubble Tea model.
type Model struct {
	editor editor.Model
	panel  viewport.Model
	log    *diag.Log
	logger *slog.Logger
	keys   keyMap
	styles styles

	showLog bool
	width   int
	height  int
}

func New(cfg Config) Model {
	limit := cfg.LogMax
	if limit <= 0 {
		limit = diag.DefaultMaxLines
	}
	log := diag.NewLog(limit)
	logger := diag.NewLogger(log, cfg.LogLevel)

	policy := editor.ScrollAllowManual
	if cfg.FollowOnly {
		policy = editor.ScrollFollowCursorOnly
	}

	ed := editor.New(editor.Config{
		Text:         cfg.Text,
		Style:        editor.DefaultStyle(),
		ScrollPolicy: policy,
		Logger:       logger.With("component", "editor"),
		Buffer: buffer.Options{
			OnInconsistency: func(err error) {
				logger.Warn("inconsistent buffer", "err", err)
			},
		},
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("changed", "version", ev.Version, "line", ev.Cursor.Line, "col", ev.Cursor.Col)
		},
	})

	m := Model{
		editor:  ed,
		panel:   viewport.New(0, 0),
		log:     log,
		logger:  logger,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		showLog: cfg.ShowLog,
	}
	logger.Info("started", "chars", ed.Viewport().Buffer().Len())
	return m.resize(initialWidth, initialHeight)
}

// Log exposes the diagnostics log.
func (m Model) Log() *diag.Log { return m.log }

func (m Model) Editor() editor.Model { return m.editor }

func (m Model) ShowLog() bool { return m.showLog }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	case tea.KeyMsg:
		m.logger.Info("key", "key", msg.String())
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleLog):
			m.showLog = !m.showLog
			m = m.resize(m.width, m.height)
		default:
			m.editor, cmd = m.editor.Update(msg)
		}
	case tea.MouseMsg:
		m.editor, cmd = m.editor.Update(msg)
	}
	m.refreshPanel()
	return m, cmd
}

func (m Model) View() string {
	parts := make([]string, 0, 3)
	if v := m.editor.View(); v != "" {
		parts = append(parts, v)
	}
	if m.height > 0 {
		parts = append(parts, m.statusBar())
	}
	if m.showLog && m.panel.Height > 0 {
		parts = append(parts, m.panel.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// resize splits the screen into the edit area, a one-row status bar and, when
// shown, the diagnostics panel.
func (m Model) resize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)

	logHeight := 0
	if m.showLog {
		logHeight = m.height * logPercent / 100
	}
	editHeight := max(m.height-1-logHeight, 0)

	m.editor = m.editor.SetSize(m.width, editHeight)
	m.panel.Width = m.width
	m.panel.Height = logHeight
	m.refreshPanel()
	return m
}

func (m *Model) refreshPanel() {
	m.panel.SetContent(m.styles.log.Render(strings.Join(m.log.Lines(), "\n")))
	m.panel.GotoBottom()
}

// Run starts the program on the terminal and blocks until it exits.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	if _, err := tea.NewProgram(New(cfg), opts...).Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
