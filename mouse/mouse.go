// Package mouse defines the pointer event model shared by every
// backend: buttons, button sets, wheel deltas, and cursor styles.
package mouse

import (
	"fmt"

	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonX1 is the first extra button (usually back navigation).
	ButtonX1
	// ButtonX2 is the second extra button (usually forward navigation).
	ButtonX2
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "none"
	}
}

// Buttons is a set of mouse buttons that are currently held down.
// The zero value is the empty set.
type Buttons uint8

// Insert adds a button to the set. Inserting ButtonNone is a no-op.
func (bs *Buttons) Insert(b Button) {
	*bs |= b.mask()
}

// Remove takes a button out of the set. Removing a button that is not
// in the set is a no-op.
func (bs *Buttons) Remove(b Button) {
	*bs &^= b.mask()
}

// Contains reports whether the button is in the set.
func (bs Buttons) Contains(b Button) bool {
	return bs&b.mask() != 0
}

// HasLeft reports whether the primary button is in the set.
func (bs Buttons) HasLeft() bool { return bs.Contains(ButtonLeft) }

// HasRight reports whether the secondary button is in the set.
func (bs Buttons) HasRight() bool { return bs.Contains(ButtonRight) }

// HasMiddle reports whether the middle button is in the set.
func (bs Buttons) HasMiddle() bool { return bs.Contains(ButtonMiddle) }

// IsEmpty reports whether no buttons are held.
func (bs Buttons) IsEmpty() bool { return bs == 0 }

// Count returns the number of buttons in the set.
func (bs Buttons) Count() int {
	n := 0
	for v := bs; v != 0; v &= v - 1 {
		n++
	}
	return n
}

func (b Button) mask() Buttons {
	if b == ButtonNone || b > ButtonX2 {
		return 0
	}
	return 1 << (b - 1)
}

// Event describes a pointer event delivered to a window handler. The
// same struct carries moves, presses, releases, and wheel motion; the
// receiving callback disambiguates.
type Event struct {
	// Pos is the pointer position in display points, relative to the
	// origin of the window's content area.
	Pos geom.Point

	// WindowPos is the pointer position relative to the window origin,
	// including any frame or titlebar inset.
	WindowPos geom.Point

	// Buttons is the set of buttons held at the time of the event. For
	// a press the pressed button is included; for a release it is not.
	Buttons Buttons

	// Mods is the keyboard modifier state at the time of the event.
	Mods key.Modifiers

	// Count is the click count for press events (1 single, 2 double,
	// 3 triple). It is 0 for moves and releases.
	Count int

	// Focus is set on a press that also gave the window keyboard focus.
	Focus bool

	// Button is the button that changed state, or ButtonNone for moves
	// and wheel events.
	Button Button

	// WheelDelta is the scroll distance in display points. Positive Y
	// scrolls content up (wheel pulled toward the user).
	WheelDelta geom.Vec2
}

// String returns a compact description for logging.
func (e Event) String() string {
	return fmt.Sprintf("mouse(%v pos=%v buttons=%d count=%d)", e.Button, e.Pos, e.Buttons, e.Count)
}
