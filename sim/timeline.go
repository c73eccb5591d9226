// Implements the Timeline, the append-only record of who held the CPU when.
// The finished sequence renders directly as a Gantt chart.

package sim

import (
	"fmt"
)

// IdleLabel is the segment label used when no process holds the CPU.
const IdleLabel = "IDLE"

// Segment is one contiguous stretch of CPU time attributed to a single
// process (or to idleness). End is exclusive: the segment covers [Start, End).
type Segment struct {
	Label string `json:"label"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

func (s Segment) String() string {
	return fmt.Sprintf("%s[%d..%d)", s.Label, s.Start, s.End)
}

// Timeline accumulates the execution segments of one run. Segments must be
// appended in order and contiguously; the engine fills gaps with explicit
// IDLE segments, so a gap or overlap here is a defect in the caller, not bad
// input, and Record panics on it.
type Timeline struct {
	segments []Segment
	busy     int64 // total non-idle ticks
}

// NewTimeline creates an empty Timeline starting at tick 0.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Record appends the segment [start, end) for label. Adjacent segments with
// the same label coalesce into one. start must equal the current makespan.
func (tl *Timeline) Record(label string, start, end int64) {
	if end <= start {
		panic(fmt.Sprintf("Timeline.Record: empty or inverted segment %s[%d..%d)", label, start, end))
	}
	if start != tl.Makespan() {
		panic(fmt.Sprintf("Timeline.Record: segment %s[%d..%d) not contiguous with makespan %d", label, start, end, tl.Makespan()))
	}
	if label != IdleLabel {
		tl.busy += end - start
	}
	if n := len(tl.segments); n > 0 && tl.segments[n-1].Label == label {
		tl.segments[n-1].End = end
		return
	}
	tl.segments = append(tl.segments, Segment{Label: label, Start: start, End: end})
}

// Segments returns the recorded sequence. The returned slice is the
// timeline's internal storage; callers must not modify it.
func (tl *Timeline) Segments() []Segment {
	return tl.segments
}

// Makespan returns the end of the last segment, or 0 for an empty timeline.
func (tl *Timeline) Makespan() int64 {
	if len(tl.segments) == 0 {
		return 0
	}
	return tl.segments[len(tl.segments)-1].End
}

// BusyTime returns the total non-idle ticks recorded so far.
func (tl *Timeline) BusyTime() int64 {
	return tl.busy
}

// CompletionTime returns the end of the last segment bearing the given label,
// and whether any such segment exists.
func (tl *Timeline) CompletionTime(label string) (int64, bool) {
	for i := len(tl.segments) - 1; i >= 0; i-- {
		if tl.segments[i].Label == label {
			return tl.segments[i].End, true
		}
	}
	return 0, false
}
