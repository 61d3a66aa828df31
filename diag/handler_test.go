package diag

import (
	"log/slog"
	"testing"
)

func TestHandler_FormatsRecords(t *testing.T) {
	l := NewLog(10)
	logger := NewLogger(l, slog.LevelDebug)

	logger.Debug("insert", "text", "ab", "col", 3)
	logger.With("component", "viewport").WithGroup("cursor").Info("moved", "line", 1)

	got := l.Lines()
	want := []string{
		"DEBUG insert text=ab col=3",
		"INFO moved component=viewport cursor.line=1",
	}
	if len(got) != len(want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHandler_LevelThreshold(t *testing.T) {
	l := NewLog(10)
	logger := NewLogger(l, nil)
	logger.Debug("hidden")
	logger.Warn("shown")
	if got := l.Lines(); len(got) != 1 || got[0] != "WARN shown" {
		t.Fatalf("lines: got %q, want [\"WARN shown\"]", got)
	}
}

func TestHandler_MultilineMessage(t *testing.T) {
	l := NewLog(10)
	NewLogger(l, nil).Info("first\nsecond")
	if got := l.Lines(); len(got) != 2 || got[0] != "INFO first" || got[1] != "second" {
		t.Fatalf("lines: got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q): err=%v, wantErr=%v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
