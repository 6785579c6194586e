package shell

import (
	"sort"
	"time"

	"github.com/dshills/winshell/backend"
)

// timerEntry is one pending timer.
type timerEntry struct {
	deadline time.Time
	seq      uint64
	window   backend.WindowID
	token    TimerToken
}

// timerQueue orders pending timers by deadline, breaking ties by
// registration order. Not safe for concurrent use; the loop guards it.
type timerQueue struct {
	entries []timerEntry
	nextSeq uint64
}

// add registers a timer and keeps the queue sorted.
func (q *timerQueue) add(window backend.WindowID, token TimerToken, deadline time.Time) {
	e := timerEntry{
		deadline: deadline,
		seq:      q.nextSeq,
		window:   window,
		token:    token,
	}
	q.nextSeq++

	i := sort.Search(len(q.entries), func(i int) bool {
		other := q.entries[i]
		if !other.deadline.Equal(e.deadline) {
			return other.deadline.After(e.deadline)
		}
		return other.seq > e.seq
	})
	q.entries = append(q.entries, timerEntry{})
	copy(q.entries[i+1:], q.entries[i:])
	q.entries[i] = e
}

// next returns the earliest deadline, or false if the queue is empty.
func (q *timerQueue) next() (time.Time, bool) {
	if len(q.entries) == 0 {
		return time.Time{}, false
	}
	return q.entries[0].deadline, true
}

// popDue removes and returns every timer whose deadline is at or
// before now, in firing order.
func (q *timerQueue) popDue(now time.Time) []timerEntry {
	n := 0
	for n < len(q.entries) && !q.entries[n].deadline.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]timerEntry, n)
	copy(due, q.entries[:n])
	q.entries = q.entries[:copy(q.entries, q.entries[n:])]
	return due
}

// dropWindow discards all timers belonging to a window.
func (q *timerQueue) dropWindow(window backend.WindowID) {
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.window != window {
			kept = append(kept, e)
		}
	}
	q.entries = kept
}

// len returns the number of pending timers.
func (q *timerQueue) len() int {
	return len(q.entries)
}
