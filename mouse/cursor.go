package mouse

// Cursor identifies a stock pointer image a window can display.
type Cursor uint8

const (
	// CursorArrow is the default pointer.
	CursorArrow Cursor = iota
	// CursorIBeam is the text insertion pointer.
	CursorIBeam
	// CursorPointer is the hand pointer shown over links.
	CursorPointer
	// CursorCrosshair is a precision crosshair.
	CursorCrosshair
	// CursorNotAllowed indicates the action is unavailable.
	CursorNotAllowed
	// CursorResizeLeftRight is a horizontal resize pointer.
	CursorResizeLeftRight
	// CursorResizeUpDown is a vertical resize pointer.
	CursorResizeUpDown
)

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	switch c {
	case CursorIBeam:
		return "ibeam"
	case CursorPointer:
		return "pointer"
	case CursorCrosshair:
		return "crosshair"
	case CursorNotAllowed:
		return "not-allowed"
	case CursorResizeLeftRight:
		return "resize-left-right"
	case CursorResizeUpDown:
		return "resize-up-down"
	default:
		return "arrow"
	}
}
