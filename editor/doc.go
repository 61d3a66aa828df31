// Package editor projects a buffer onto a terminal window.
//
// Viewport is the host-independent core: it owns a buffer.Buffer, a cursor
// and two scroll offsets, applies edits, clips the document to a fixed-size
// rectangle and keeps the cursor in view.
//
// Model wraps a Viewport as a Bubble Tea component: it turns key, mouse and
// resize messages into Viewport calls and renders the clipped rows into a
// fixed grid with a visible cursor cell.
package editor
