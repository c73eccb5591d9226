package sim

import (
	"testing"
)

func TestTimeline_CoalescesAdjacentSameLabel(t *testing.T) {
	tl := NewTimeline()
	tl.Record("P1", 0, 2)
	tl.Record("P1", 2, 5)
	tl.Record("P2", 5, 6)
	tl.Record("P2", 6, 9)

	want := []Segment{
		{Label: "P1", Start: 0, End: 5},
		{Label: "P2", Start: 5, End: 9},
	}
	if !segmentsEqual(tl.Segments(), want) {
		t.Errorf("segments: got %v, want %v", tl.Segments(), want)
	}
}

func TestTimeline_BusyTimeExcludesIdle(t *testing.T) {
	tl := NewTimeline()
	tl.Record(IdleLabel, 0, 3)
	tl.Record("P1", 3, 8)
	tl.Record(IdleLabel, 8, 10)
	tl.Record("P2", 10, 11)

	if got := tl.BusyTime(); got != 6 {
		t.Errorf("busy time: got %d, want 6", got)
	}
	if got := tl.Makespan(); got != 11 {
		t.Errorf("makespan: got %d, want 11", got)
	}
}

func TestTimeline_EmptyMakespanIsZero(t *testing.T) {
	if got := NewTimeline().Makespan(); got != 0 {
		t.Errorf("empty makespan: got %d, want 0", got)
	}
}

func TestTimeline_CompletionTime(t *testing.T) {
	tl := NewTimeline()
	tl.Record("P1", 0, 4)
	tl.Record("P2", 4, 7)
	tl.Record("P1", 7, 10)

	if end, ok := tl.CompletionTime("P1"); !ok || end != 10 {
		t.Errorf("P1 completion: got (%d, %v), want (10, true)", end, ok)
	}
	if end, ok := tl.CompletionTime("P2"); !ok || end != 7 {
		t.Errorf("P2 completion: got (%d, %v), want (7, true)", end, ok)
	}
	if _, ok := tl.CompletionTime("P3"); ok {
		t.Error("CompletionTime reported a label that never ran")
	}
}

func TestTimeline_RecordPanicsOnGap(t *testing.T) {
	tl := NewTimeline()
	tl.Record("P1", 0, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-contiguous segment")
		}
	}()
	tl.Record("P2", 6, 8)
}

func TestTimeline_RecordPanicsOnEmptySegment(t *testing.T) {
	tl := NewTimeline()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty segment")
		}
	}()
	tl.Record("P1", 3, 3)
}
