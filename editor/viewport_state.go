package editor

import "github.com/iw2rmb/scribe/buffer"

// ViewportState is a stable host-facing snapshot of viewport camera state.
type ViewportState struct {
	Width  int
	Height int

	// OffsetTop is the document line rendered at window row 0.
	OffsetTop int
	// OffsetLeft is the display column rendered at window column 0.
	OffsetLeft int

	Cursor buffer.Location
	// CursorPosition is the cursor cell relative to the window.
	CursorPosition buffer.Position
	// AbsoluteCursorPosition is the cursor cell in document display space.
	AbsoluteCursorPosition buffer.Position
}

// State returns the current viewport snapshot.
func (v *Viewport) State() ViewportState {
	return ViewportState{
		Width:                  v.width,
		Height:                 v.height,
		OffsetTop:              v.offsetTop,
		OffsetLeft:             v.offsetLeft,
		Cursor:                 v.cursor,
		CursorPosition:         v.CursorPosition(),
		AbsoluteCursorPosition: v.absoluteCursorPosition(),
	}
}
