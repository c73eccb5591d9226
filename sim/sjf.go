package sim

import (
	"sort"
)

// SJF picks the arrived process with the shortest burst and runs it to
// completion. With preemptive set it becomes SRTF: the comparison key is the
// remaining time and the dispatch is preemptible, so a newly arrived process
// with less remaining work takes the CPU at its arrival instant.
//
// Both variants minimize average waiting time only when burst times are known
// exactly; see predict.go for the exponential-averaging estimator layered on
// top when they are not.
type SJF struct {
	preemptive bool
	ready      []*Process
}

func (s *SJF) Name() string {
	if s.preemptive {
		return PolicySRTF
	}
	return PolicySJF
}

func (s *SJF) Admit(p *Process, _ int64) {
	s.ready = append(s.ready, p)
}

// key is the comparison value: total burst for SJF, remaining time for SRTF.
func (s *SJF) key(p *Process) int64 {
	if s.preemptive {
		return p.Remaining
	}
	return p.BurstTime
}

func (s *SJF) Select(_ int64) Decision {
	if len(s.ready) == 0 {
		return Decision{}
	}
	sort.SliceStable(s.ready, func(i, j int) bool {
		if s.key(s.ready[i]) != s.key(s.ready[j]) {
			return s.key(s.ready[i]) < s.key(s.ready[j])
		}
		if s.ready[i].ArrivalTime != s.ready[j].ArrivalTime {
			return s.ready[i].ArrivalTime < s.ready[j].ArrivalTime
		}
		return s.ready[i].Seq < s.ready[j].Seq
	})
	shortest := s.ready[0]
	s.ready = s.ready[1:]
	return Decision{Process: shortest, Duration: shortest.Remaining, Preemptible: s.preemptive}
}

func (s *SJF) Requeue(p *Process, _ int64, _ int64) {
	s.ready = append(s.ready, p)
}
