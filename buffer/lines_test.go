package buffer

import (
	"errors"
	"strings"
	"testing"
)

func lineStrings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

func TestLines_Decomposition(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{}},
		{text: "rust\n铁锈", want: []string{"rust", "铁锈"}},
		{text: "a\n", want: []string{"a"}},
		{text: "a\n\nb", want: []string{"a", "", "b"}},
		{text: "\n\n", want: []string{"", ""}},
		{text: "a\r\nb", want: []string{"a", "b"}},
	}
	for _, tc := range cases {
		got := lineStrings(New(tc.text, Options{}).Lines())
		if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
			t.Fatalf("Lines(%q): got %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestLines_NoZeroWidthAndReconstructs(t *testing.T) {
	text := "first 行\n\x0esecond\n\nthird\r"
	b := New(text, Options{})
	lines := b.Lines()
	for i, l := range lines {
		for _, c := range l {
			if c.Width == 0 {
				t.Fatalf("line %d contains zero-width %U", i, c.Value)
			}
		}
	}

	var visible strings.Builder
	for _, r := range text {
		if r == '\n' || r == '\r' || r == 0x0e {
			if r == '\n' {
				visible.WriteByte('\n')
			}
			continue
		}
		visible.WriteRune(r)
	}
	if got, want := strings.Join(lineStrings(lines), "\n"), visible.String(); got != want {
		t.Fatalf("reconstruction: got %q, want %q", got, want)
	}
}

func TestLines_InconsistentRecordIsSkippedAndReported(t *testing.T) {
	var reported []error
	b := New("ab\ncd", Options{OnInconsistency: func(err error) { reported = append(reported, err) }})
	b.parsed[4].Location.Line = 0

	got := lineStrings(b.Lines())
	if strings.Join(got, "|") != "ab|c" {
		t.Fatalf("lines: got %q, want %q", got, []string{"ab", "c"})
	}
	if len(reported) != 1 {
		t.Fatalf("reports: got %d, want 1", len(reported))
	}
	var ie *InconsistencyError
	if !errors.As(reported[0], &ie) || ie.Char.Value != 'd' || ie.CurrentLine != 1 {
		t.Fatalf("report: got %v", reported[0])
	}
}

func TestLines_StrictPanics(t *testing.T) {
	b := New("ab\ncd", Options{Strict: true})
	b.parsed[3].Location.Line = 0

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()
	b.Lines()
}
