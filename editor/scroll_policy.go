package editor

// ScrollPolicy decides whether the host may scroll the window independently
// of the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual honours scroll keys and the mouse wheel.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores manual scrolling; offsets change only
	// through auto-centering.
	ScrollFollowCursorOnly
)
