// Package diag provides the diagnostics sink shown by the editor shell.
//
// A Log is an append-only, bounded list of formatted lines. Handler adapts it
// to log/slog so the dispatch loop can emit structured records that end up as
// readable lines in the diagnostics panel.
package diag
