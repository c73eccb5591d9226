package sim

import (
	"sort"
)

// PriorityAging picks the arrived process with the lowest effective priority
// number (lower = more urgent); ties break by arrival time, then declaration
// order. Non-preemptive by default; with preemptive set, a more urgent
// arrival takes the CPU at its arrival instant.
//
// Aging: while a process waits, its effective priority is
//
//	base - floor(waited / agingInterval)
//
// clamped at minPriority. The improvement is strictly monotone in waiting
// time, so every process is eventually scheduled ahead of a stream of
// better-priority arrivals: waiting time stays bounded and nothing starves.
// agingInterval 0 disables aging (plain priority scheduling).
type PriorityAging struct {
	agingInterval int64
	minPriority   int
	preemptive    bool
	ready         []*Process
}

func (pa *PriorityAging) Name() string { return PolicyPriority }

func (pa *PriorityAging) Admit(p *Process, _ int64) {
	pa.ready = append(pa.ready, p)
}

// Effective returns the aged priority of p at tick now.
func (pa *PriorityAging) Effective(p *Process, now int64) int {
	if pa.agingInterval <= 0 {
		return p.BasePriority
	}
	waited := now - p.ArrivalTime
	aged := p.BasePriority - int(waited/pa.agingInterval)
	if aged < pa.minPriority {
		aged = pa.minPriority
	}
	return aged
}

func (pa *PriorityAging) Select(now int64) Decision {
	if len(pa.ready) == 0 {
		return Decision{}
	}
	sort.SliceStable(pa.ready, func(i, j int) bool {
		pi, pj := pa.Effective(pa.ready[i], now), pa.Effective(pa.ready[j], now)
		if pi != pj {
			return pi < pj
		}
		if pa.ready[i].ArrivalTime != pa.ready[j].ArrivalTime {
			return pa.ready[i].ArrivalTime < pa.ready[j].ArrivalTime
		}
		return pa.ready[i].Seq < pa.ready[j].Seq
	})
	urgent := pa.ready[0]
	pa.ready = pa.ready[1:]
	urgent.Priority = pa.Effective(urgent, now)
	return Decision{Process: urgent, Duration: urgent.Remaining, Preemptible: pa.preemptive}
}

func (pa *PriorityAging) Requeue(p *Process, _ int64, _ int64) {
	pa.ready = append(pa.ready, p)
}
