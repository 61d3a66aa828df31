package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/scribe/internal/glyphwidth"
)

// checkWidth logs when the document's width table and the terminal disagree
// on how many cells a cluster occupies. Rows containing such a cluster will
// render misaligned.
func (m Model) checkWidth(cluster string) {
	// Tabs are drawn as one space, which matches the table.
	if cluster == "\n" || cluster == "\t" {
		return
	}
	table := glyphwidth.String(cluster)
	term := runewidth.StringWidth(cluster)
	if table == term {
		return
	}
	m.log.Debug("width mismatch", "text", cluster, "table", table, "terminal", term)
}
