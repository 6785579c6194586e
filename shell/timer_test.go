package shell

import (
	"testing"
	"time"
)

func TestTimerQueueOrdering(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var q timerQueue
	t3 := NextTimerToken()
	t1 := NextTimerToken()
	t2 := NextTimerToken()

	// Inserted out of deadline order.
	q.add(1, t3, base.Add(30*time.Millisecond))
	q.add(1, t1, base.Add(10*time.Millisecond))
	q.add(1, t2, base.Add(20*time.Millisecond))

	due := q.popDue(base.Add(time.Second))
	if len(due) != 3 {
		t.Fatalf("popDue returned %d entries, want 3", len(due))
	}
	want := []TimerToken{t1, t2, t3}
	for i, e := range due {
		if e.token != want[i] {
			t.Errorf("entry %d: token %d, want %d", i, e.token, want[i])
		}
	}
}

func TestTimerQueueTieBreakByRegistration(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := base.Add(10 * time.Millisecond)

	var q timerQueue
	first := NextTimerToken()
	second := NextTimerToken()
	q.add(1, first, deadline)
	q.add(1, second, deadline)

	due := q.popDue(deadline)
	if len(due) != 2 {
		t.Fatalf("popDue returned %d entries, want 2", len(due))
	}
	if due[0].token != first || due[1].token != second {
		t.Error("equal deadlines did not fire in registration order")
	}
}

func TestTimerQueuePopDueOnce(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var q timerQueue
	tok := NextTimerToken()
	q.add(1, tok, base)

	if due := q.popDue(base); len(due) != 1 {
		t.Fatalf("first popDue returned %d entries, want 1", len(due))
	}
	if due := q.popDue(base.Add(time.Hour)); len(due) != 0 {
		t.Errorf("second popDue returned %d entries, want 0", len(due))
	}
}

func TestTimerQueuePartialDue(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var q timerQueue
	early := NextTimerToken()
	late := NextTimerToken()
	q.add(1, early, base.Add(5*time.Millisecond))
	q.add(1, late, base.Add(50*time.Millisecond))

	due := q.popDue(base.Add(10 * time.Millisecond))
	if len(due) != 1 || due[0].token != early {
		t.Fatalf("popDue = %v, want only the early timer", due)
	}
	if q.len() != 1 {
		t.Errorf("queue length = %d, want 1", q.len())
	}
	if next, ok := q.next(); !ok || !next.Equal(base.Add(50*time.Millisecond)) {
		t.Error("remaining deadline wrong")
	}
}

func TestTimerQueueDropWindow(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var q timerQueue
	keep := NextTimerToken()
	q.add(1, NextTimerToken(), base)
	q.add(2, keep, base)
	q.add(1, NextTimerToken(), base.Add(time.Millisecond))

	q.dropWindow(1)
	if q.len() != 1 {
		t.Fatalf("queue length after drop = %d, want 1", q.len())
	}
	due := q.popDue(base.Add(time.Hour))
	if due[0].token != keep || due[0].window != 2 {
		t.Error("wrong entry survived dropWindow")
	}
}
