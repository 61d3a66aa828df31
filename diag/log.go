package diag

import (
	"strings"
	"sync"
)

const DefaultMaxLines = 1000

// Log is an append-only line sink. When it grows past its limit the oldest
// lines are dropped. Log is safe for concurrent use.
type Log struct {
	mu    sync.RWMutex
	lines []string
	max   int
}

func NewLog(max int) *Log {
	if max <= 0 {
		max = DefaultMaxLines
	}
	return &Log{max: max}
}

// Append adds s to the log, one entry per '\n'-separated line.
func (l *Log) Append(s string) {
	parts := strings.Split(s, "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, parts...)
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns a copy of every retained line, oldest first.
func (l *Log) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.lines...)
}

// Tail returns up to n of the most recent lines, oldest first.
func (l *Log) Tail(n int) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || n > len(l.lines) {
		n = len(l.lines)
	}
	return append([]string(nil), l.lines[len(l.lines)-n:]...)
}

// Drain returns every retained line and empties the log.
func (l *Log) Drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.lines
	l.lines = nil
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines)
}
