package app

import (
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want app.Model", next)
	}
	return am, cmd
}

func TestLayout_SplitsHeight(t *testing.T) {
	m := New(Config{Text: "hello", ShowLog: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if _, h := m.Editor().Viewport().Size(); h != 7 {
		t.Fatalf("edit height with log: got %d, want %d", h, 7)
	}
	if got := lipgloss.Height(m.View()); got != 10 {
		t.Fatalf("view height with log: got %d, want %d", got, 10)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.ShowLog() {
		t.Fatalf("log still shown after toggle")
	}
	if _, h := m.Editor().Viewport().Size(); h != 9 {
		t.Fatalf("edit height without log: got %d, want %d", h, 9)
	}
	if got := lipgloss.Height(m.View()); got != 10 {
		t.Fatalf("view height without log: got %d, want %d", got, 10)
	}
}

func TestNew_UsesInitialSizeUntilResize(t *testing.T) {
	m := New(Config{})
	if w, h := m.Editor().Viewport().Size(); w != 50 || h != 49 {
		t.Fatalf("initial edit size: got (%d,%d), want (50,49)", w, h)
	}
}

func TestStatusBar_ReportsCursorAndOffsets(t *testing.T) {
	m := New(Config{Text: "hello"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 5})

	got := m.statusText()
	want := "Ln 1, Col 1 | top 0 left 0 | 5 chars"
	if !strings.HasPrefix(got, want) {
		t.Fatalf("status: got %q, want prefix %q", got, want)
	}
	if !strings.HasSuffix(got, title) {
		t.Fatalf("status: got %q, want suffix %q", got, title)
	}
	if w := ansi.StringWidth(got); w != 50 {
		t.Fatalf("status width: got %d, want %d", w, 50)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.statusText(); !strings.HasPrefix(got, "Ln 2, Col 1 | top 0 left 0 | 8 chars") {
		t.Fatalf("status after typing: got %q", got)
	}
}

func TestStatusBar_TruncatesToWidth(t *testing.T) {
	m := New(Config{Text: "hello"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 5})

	got := m.statusText()
	if w := ansi.StringWidth(got); w > 12 {
		t.Fatalf("status width: got %d, want <= 12 (%q)", w, got)
	}
	if strings.Contains(got, title) {
		t.Fatalf("title kept in truncated status: %q", got)
	}
}

func TestKeys_CtrlCQuits(t *testing.T) {
	m := New(Config{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c command: got %T, want tea.QuitMsg", cmd())
	}
}

func TestDiagnostics_RecordsEdits(t *testing.T) {
	m := New(Config{ShowLog: true, LogLevel: slog.LevelDebug})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	lines := m.Log().Lines()
	var input, changed bool
	for _, l := range lines {
		if strings.HasPrefix(l, "DEBUG input component=editor text=x") {
			input = true
		}
		if strings.HasPrefix(l, "DEBUG changed version=1 line=0 col=1") {
			changed = true
		}
	}
	if !input || !changed {
		t.Fatalf("missing edit records in %q", lines)
	}

	if got := ansi.Strip(m.View()); !strings.Contains(got, "DEBUG changed version=1") {
		t.Fatalf("panel does not show the latest record:\n%s", got)
	}
}

func TestDiagnostics_RespectsLevel(t *testing.T) {
	m := New(Config{LogLevel: slog.LevelInfo})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	for _, l := range m.Log().Lines() {
		if strings.HasPrefix(l, "DEBUG") {
			t.Fatalf("debug record at info level: %q", l)
		}
	}
	want := []string{"INFO started chars=0", "INFO key key=x"}
	got := m.Log().Lines()
	if len(got) != len(want) {
		t.Fatalf("log: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFollowOnly_IgnoresManualScroll(t *testing.T) {
	m := New(Config{Text: "a\nb\nc", FollowOnly: true})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlDown})
	if got := m.Editor().Viewport().State().OffsetTop; got != 0 {
		t.Fatalf("offsetTop: got %d, want 0", got)
	}
}

func TestDiagnostics_KeysShownAtDefaultLevel(t *testing.T) {
	m := New(Config{ShowLog: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := ansi.Strip(m.View())
	for _, want := range []string{"INFO key key=q", "INFO key key=enter"} {
		if !strings.Contains(view, want) {
			t.Fatalf("panel missing %q:\n%s", want, view)
		}
	}
}

func TestStatusBar_CountsGraphemeClusters(t *testing.T) {
	m := New(Config{Text: "e\u0301x"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 5})

	if got := m.statusText(); !strings.HasPrefix(got, "Ln 1, Col 1 | top 0 left 0 | 2 chars") {
		t.Fatalf("status: got %q", got)
	}
}
