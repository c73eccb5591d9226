// The scheduling engine: owns the simulated clock, feeds arrivals to the
// active policy, dispatches its decisions, and records the timeline.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Result bundles everything one simulation run produces.
type Result struct {
	Policy   string    `json:"policy"`
	Segments []Segment `json:"segments"`
	Report   Report    `json:"report"`
}

type engine struct {
	clock      int64
	policy     Policy
	pending    []*Process // arrival-ordered processes not yet handed to the policy
	timeline   *Timeline
	dispatches int
	bound      int64
	incomplete int
}

// Run drives policy over procs until every process completes and returns the
// timeline and metrics. procs must be a fresh instantiation owned by this run
// (workload.Spec.Instantiate provides one); Run mutates them.
//
// Total elapsed time is bounded by sum(burst) + max(arrival). Crossing that
// bound, like any timeline inconsistency, is a defect in the policy
// implementation and panics rather than looping forever.
func Run(policy Policy, procs []*Process) *Result {
	e := &engine{
		policy:     policy,
		pending:    make([]*Process, len(procs)),
		timeline:   NewTimeline(),
		incomplete: len(procs),
	}
	copy(e.pending, procs)
	sort.SliceStable(e.pending, func(i, j int) bool {
		if e.pending[i].ArrivalTime != e.pending[j].ArrivalTime {
			return e.pending[i].ArrivalTime < e.pending[j].ArrivalTime
		}
		return e.pending[i].Seq < e.pending[j].Seq
	})
	for _, p := range procs {
		e.bound += p.BurstTime
	}
	if n := len(e.pending); n > 0 {
		e.bound += e.pending[n-1].ArrivalTime
	}

	e.loop()

	logrus.Debugf("[tick %07d] %s run ended after %d dispatches", e.clock, policy.Name(), e.dispatches)
	return &Result{
		Policy:   policy.Name(),
		Segments: e.timeline.Segments(),
		Report:   Summarize(procs, e.timeline, e.dispatches),
	}
}

func (e *engine) loop() {
	for e.incomplete > 0 {
		e.admitUpTo(e.clock, true)

		d := e.policy.Select(e.clock)
		if d.Process == nil {
			// Nothing ready: advance to the next arrival, covering the gap
			// with an explicit IDLE segment.
			if len(e.pending) == 0 {
				panic(fmt.Sprintf("engine: policy %s idled with no pending arrivals and %d processes incomplete",
					e.policy.Name(), e.incomplete))
			}
			next := e.pending[0].ArrivalTime
			e.timeline.Record(IdleLabel, e.clock, next)
			e.clock = next
			continue
		}
		e.dispatch(d)

		if e.clock > e.bound {
			panic(fmt.Sprintf("engine: clock %d exceeded termination bound %d under policy %s",
				e.clock, e.bound, e.policy.Name()))
		}
	}
}

// dispatch runs one decision: clamps the slice, moves the clock, records the
// segment, and retires or requeues the process.
func (e *engine) dispatch(d Decision) {
	p := d.Process
	if d.Duration <= 0 || d.Duration > p.Remaining {
		panic(fmt.Sprintf("engine: policy %s granted %d ticks to %s with %d remaining",
			e.policy.Name(), d.Duration, p.ID, p.Remaining))
	}

	run := d.Duration
	if d.Preemptible && len(e.pending) > 0 {
		// Preemptive policies re-evaluate at every arrival event.
		if next := e.pending[0].ArrivalTime; e.clock+run > next {
			run = next - e.clock
		}
	}
	if p.YieldInterval > 0 && run > p.YieldInterval {
		run = p.YieldInterval
	}

	if !p.Started() {
		p.FirstRunTime = e.clock
	}
	p.State = StateRunning
	start := e.clock
	e.clock += run
	e.timeline.Record(p.ID, start, e.clock)
	p.Remaining -= run
	e.dispatches++
	logrus.Debugf("[tick %07d] %s ran %s for %d ticks (%d remaining)",
		e.clock, e.policy.Name(), p.ID, run, p.Remaining)

	if p.Remaining < 0 {
		panic(fmt.Sprintf("engine: process %s has negative remaining time %d", p.ID, p.Remaining))
	}
	if p.Remaining == 0 {
		p.CompletionTime = e.clock
		p.State = StateCompleted
		e.incomplete--
		return
	}

	// Requeue-before-new-arrival tie-break: processes that arrived strictly
	// during the slice go ahead of the preempted process, same-instant
	// arrivals behind it (they are admitted at the top of the next loop turn).
	p.State = StateQueued
	e.admitUpTo(e.clock, false)
	e.policy.Requeue(p, run, e.clock)
}

// admitUpTo hands pending processes whose arrival is before limit (or at it,
// when inclusive) to the policy, in arrival order.
func (e *engine) admitUpTo(limit int64, inclusive bool) {
	for len(e.pending) > 0 {
		arrival := e.pending[0].ArrivalTime
		if arrival > limit || (arrival == limit && !inclusive) {
			return
		}
		p := e.pending[0]
		e.pending = e.pending[1:]
		e.policy.Admit(p, e.clock)
	}
}
