package buffer

import "fmt"

// InconsistencyError reports a record observed out of line order while
// decomposing the buffer into lines. It means the records no longer match
// the raw text and is never caused by caller input.
type InconsistencyError struct {
	Char        Character
	CurrentLine int
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("buffer: record %d at line %d observed after line %d",
		e.Char.Index, e.Char.Location.Line, e.CurrentLine)
}

// Lines groups the visible records by line number in buffer order.
//
// A newline closes the current line, so consecutive newlines produce empty
// lines. A trailing newline does not open an extra empty line.
func (b *Buffer) Lines() []Line {
	var lines []Line
	cur := 0
	var line Line
	for _, c := range b.parsed {
		if c.Location.Line < cur {
			b.inconsistent(&InconsistencyError{Char: c, CurrentLine: cur})
			continue
		}
		if c.Value == '\n' {
			lines = append(lines, line)
			line = nil
			cur = c.Location.Line + 1
			continue
		}
		if c.Location.Line > cur {
			lines = append(lines, line)
			line = nil
			cur = c.Location.Line
		}
		if c.Width == 0 {
			continue
		}
		line = append(line, c)
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func (b *Buffer) inconsistent(err *InconsistencyError) {
	if b.opt.Strict {
		panic(err)
	}
	if b.opt.OnInconsistency != nil {
		b.opt.OnInconsistency(err)
	}
}
