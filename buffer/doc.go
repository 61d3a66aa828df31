// Package buffer implements the rune-accurate document model for scribe.
//
// A Buffer keeps the raw rune sequence and a parallel sequence of derived
// Character records. Every record carries three coordinates for the same
// rune: its linear buffer index, its logical Location (line, column) and its
// rendered Position (x, y in display columns).
//
// Locations are 0-based. Columns count every rune on a line, including the
// newline that ends it. Ranges are half-open: [Start, End).
package buffer
