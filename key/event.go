package key

import "fmt"

// State indicates whether a key was pressed or released.
type State uint8

const (
	// StateDown is a key press.
	StateDown State = iota
	// StateUp is a key release.
	StateUp
)

// String returns "Down" or "Up".
func (s State) String() string {
	if s == StateUp {
		return "Up"
	}
	return "Down"
}

// Event is a single normalized keyboard event. The run loop constructs
// one fresh Event per raw hardware event; it is a pure value and is not
// mutated after dispatch.
type Event struct {
	// State indicates press or release.
	State State

	// Key is the logical key value.
	Key Key

	// Code is the physical key position.
	Code Code

	// Location distinguishes keys with multiple instances on common
	// keyboards.
	Location Location

	// Mods are the modifiers in effect when the event was translated.
	Mods Modifiers

	// Repeat is true if the event was synthesized by key auto-repeat.
	Repeat bool

	// IsComposing is true while an IME composition session is active;
	// text editors should ignore such events and consume composition
	// events instead.
	IsComposing bool
}

// String returns a compact representation like "Down Ctrl+a (KeyA)".
func (e Event) String() string {
	if e.Mods.IsEmpty() {
		return fmt.Sprintf("%s %s (%s)", e.State, e.Key, e.Code)
	}
	return fmt.Sprintf("%s %s+%s (%s)", e.State, e.Mods, e.Key, e.Code)
}
