package editor

import "github.com/iw2rmb/scribe/buffer"

type ChangeEvent struct {
	Version  uint64
	Cursor   buffer.Location
	Position buffer.Position

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(v *Viewport) ChangeEvent {
	return ChangeEvent{
		Version:  v.Buffer().Version(),
		Cursor:   v.Cursor(),
		Position: v.CursorPosition(),
		Text:     v.Buffer().Text(),
	}
}
