package mouse

import (
	"testing"
	"time"

	"github.com/dshills/winshell/geom"
)

func TestButtonsInsertRemove(t *testing.T) {
	var bs Buttons

	if !bs.IsEmpty() {
		t.Error("zero value should be empty")
	}

	bs.Insert(ButtonLeft)
	if !bs.Contains(ButtonLeft) {
		t.Error("set should contain left after insert")
	}
	if bs.Contains(ButtonRight) {
		t.Error("set should not contain right")
	}

	bs.Insert(ButtonRight)
	bs.Insert(ButtonMiddle)
	if got := bs.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	bs.Remove(ButtonRight)
	if bs.Contains(ButtonRight) {
		t.Error("set should not contain right after remove")
	}
	if got := bs.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	// Removing a button that is absent must not disturb the rest.
	bs.Remove(ButtonRight)
	if !bs.Contains(ButtonLeft) || !bs.Contains(ButtonMiddle) {
		t.Error("double remove disturbed unrelated buttons")
	}
}

func TestButtonsInsertIdempotent(t *testing.T) {
	var bs Buttons
	bs.Insert(ButtonLeft)
	bs.Insert(ButtonLeft)
	if got := bs.Count(); got != 1 {
		t.Errorf("Count() after double insert = %d, want 1", got)
	}
}

func TestButtonsInsertNone(t *testing.T) {
	var bs Buttons
	bs.Insert(ButtonNone)
	if !bs.IsEmpty() {
		t.Error("inserting ButtonNone should be a no-op")
	}
	bs.Insert(ButtonX2)
	bs.Remove(ButtonNone)
	if !bs.Contains(ButtonX2) {
		t.Error("removing ButtonNone should be a no-op")
	}
}

func TestButtonsPredicates(t *testing.T) {
	var bs Buttons
	bs.Insert(ButtonLeft)
	bs.Insert(ButtonMiddle)

	if !bs.HasLeft() {
		t.Error("HasLeft() = false")
	}
	if bs.HasRight() {
		t.Error("HasRight() = true")
	}
	if !bs.HasMiddle() {
		t.Error("HasMiddle() = false")
	}
}

func TestClickTrackerSequences(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		clicks []struct {
			button Button
			pos    geom.Point
			at     time.Duration
		}
		want []int
	}{
		{
			name: "triple click",
			clicks: []struct {
				button Button
				pos    geom.Point
				at     time.Duration
			}{
				{ButtonLeft, geom.Pt(10, 10), 0},
				{ButtonLeft, geom.Pt(10, 10), 100 * time.Millisecond},
				{ButtonLeft, geom.Pt(11, 10), 200 * time.Millisecond},
			},
			want: []int{1, 2, 3},
		},
		{
			name: "quad click wraps to single",
			clicks: []struct {
				button Button
				pos    geom.Point
				at     time.Duration
			}{
				{ButtonLeft, geom.Pt(0, 0), 0},
				{ButtonLeft, geom.Pt(0, 0), 50 * time.Millisecond},
				{ButtonLeft, geom.Pt(0, 0), 100 * time.Millisecond},
				{ButtonLeft, geom.Pt(0, 0), 150 * time.Millisecond},
			},
			want: []int{1, 2, 3, 1},
		},
		{
			name: "timeout starts new sequence",
			clicks: []struct {
				button Button
				pos    geom.Point
				at     time.Duration
			}{
				{ButtonLeft, geom.Pt(5, 5), 0},
				{ButtonLeft, geom.Pt(5, 5), time.Second},
			},
			want: []int{1, 1},
		},
		{
			name: "distance starts new sequence",
			clicks: []struct {
				button Button
				pos    geom.Point
				at     time.Duration
			}{
				{ButtonLeft, geom.Pt(0, 0), 0},
				{ButtonLeft, geom.Pt(50, 50), 100 * time.Millisecond},
			},
			want: []int{1, 1},
		},
		{
			name: "different button starts new sequence",
			clicks: []struct {
				button Button
				pos    geom.Point
				at     time.Duration
			}{
				{ButtonLeft, geom.Pt(0, 0), 0},
				{ButtonRight, geom.Pt(0, 0), 50 * time.Millisecond},
			},
			want: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewClickTracker(400*time.Millisecond, 4)
			for i, c := range tt.clicks {
				got := tr.RecordClick(c.button, c.pos, base.Add(c.at))
				if got != tt.want[i] {
					t.Errorf("click %d: count = %d, want %d", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestClickTrackerReset(t *testing.T) {
	tr := NewClickTracker(400*time.Millisecond, 4)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tr.RecordClick(ButtonLeft, geom.Pt(0, 0), base)
	tr.Reset()
	got := tr.RecordClick(ButtonLeft, geom.Pt(0, 0), base.Add(50*time.Millisecond))
	if got != 1 {
		t.Errorf("count after reset = %d, want 1", got)
	}
}

func TestClickTrackerClockSkew(t *testing.T) {
	tr := NewClickTracker(400*time.Millisecond, 4)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tr.RecordClick(ButtonLeft, geom.Pt(0, 0), base)
	got := tr.RecordClick(ButtonLeft, geom.Pt(0, 0), base.Add(-time.Second))
	if got != 1 {
		t.Errorf("count after backwards clock = %d, want 1", got)
	}
}
