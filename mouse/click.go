package mouse

import (
	"time"

	"github.com/dshills/winshell/geom"
)

// ClickTracker derives click counts (single, double, triple) from a
// stream of button presses. Backends that do not report click counts
// natively run their presses through one tracker per window.
type ClickTracker struct {
	maxTime     time.Duration
	maxDistance float64

	lastButton Button
	lastPos    geom.Point
	lastTime   time.Time
	lastCount  int
}

// NewClickTracker creates a tracker. Presses closer together than
// maxTime and maxDistance (Manhattan distance in display points)
// extend the click sequence.
func NewClickTracker(maxTime time.Duration, maxDistance float64) *ClickTracker {
	return &ClickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// RecordClick records a button press and returns the click count
// (1, 2, or 3). The count wraps back to 1 after 3. A zero timestamp
// falls back to time.Now().
func (t *ClickTracker) RecordClick(b Button, pos geom.Point, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(b, pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastButton = b
	t.lastPos = pos
	t.lastTime = timestamp

	return t.lastCount
}

// isPartOfSequence checks if a press extends the current sequence.
func (t *ClickTracker) isPartOfSequence(b Button, pos geom.Point, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	if b != t.lastButton {
		return false
	}

	// Negative elapsed time means clock skew; start a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return manhattan(pos, t.lastPos) <= t.maxDistance
}

// Reset clears the click tracking state.
func (t *ClickTracker) Reset() {
	t.lastButton = ButtonNone
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = geom.Point{}
}

func manhattan(a, b geom.Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
