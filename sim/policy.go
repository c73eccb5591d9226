package sim

import (
	"errors"
	"fmt"
)

// Recognized policy names.
const (
	PolicyFCFS     = "fcfs"
	PolicySJF      = "sjf"
	PolicySRTF     = "srtf"
	PolicyRR       = "rr"
	PolicyPriority = "priority"
	PolicyMLFQ     = "mlfq"
)

// ValidPolicies is the set of recognized policy names.
// Shared by NewPolicy and bundle validation to avoid duplication.
var ValidPolicies = map[string]bool{
	PolicyFCFS:     true,
	PolicySJF:      true,
	PolicySRTF:     true,
	PolicyRR:       true,
	PolicyPriority: true,
	PolicyMLFQ:     true,
}

// ErrConfig marks configuration errors (unknown policy names, bad parameters).
// They are reported to the caller before any simulation starts, exactly like
// workload validation errors.
var ErrConfig = errors.New("invalid policy configuration")

// Decision is a policy's answer at one decision point.
type Decision struct {
	// Process is the process to dispatch, or nil to idle until the next
	// arrival. A policy holding ready processes must never return nil.
	Process *Process

	// Duration is the granted CPU time in ticks (> 0 when Process != nil).
	// The engine may still end the slice earlier: preemptible dispatches are
	// cut at the next arrival, and a process's YieldInterval caps any slice.
	Duration int64

	// Preemptible marks dispatches that must be re-evaluated when a new
	// process arrives (SRTF, preemptive priority).
	Preemptible bool
}

// Policy is the decision contract consumed by the engine. The engine owns the
// clock and all process bookkeeping; a policy only orders and picks.
//
// Admit is called once per process, in arrival order with declaration-order
// tie-break, when the process's arrival tick is reached. Select removes the
// chosen process from the policy's internal structures; the engine hands an
// unfinished process back via Requeue with the ticks it actually ran.
type Policy interface {
	Name() string
	Admit(p *Process, now int64)
	Select(now int64) Decision
	Requeue(p *Process, ran int64, now int64)
}

// Config carries the parameters of all parameterized policies. Zero values
// are acceptable wherever the corresponding policy is not selected.
type Config struct {
	// Quantum is the Round Robin time slice (must be > 0 for PolicyRR).
	Quantum int64

	// AgingInterval enables priority aging when > 0: every AgingInterval
	// ticks of waiting improves a process's effective priority by one.
	// Negative values are a configuration error. 0 disables aging.
	AgingInterval int64

	// MinPriority clamps how far aging can improve a priority.
	MinPriority int

	// Preemptive switches priority scheduling to its preemptive variant:
	// re-pick whenever a more urgent process arrives.
	Preemptive bool

	// MLFQ configures the multilevel feedback queue.
	MLFQ MLFQConfig
}

// MLFQLevelPolicy names the intra-level policy of one MLFQ level.
const (
	MLFQLevelRR   = "rr"
	MLFQLevelFCFS = "fcfs"
)

// MLFQLevel configures a single MLFQ priority level.
type MLFQLevel struct {
	// Policy is MLFQLevelRR or MLFQLevelFCFS. FCFS is only permitted at the
	// lowest level (a process there runs to completion or yield).
	Policy string

	// Quantum is the RR time slice for this level (ignored for FCFS levels).
	Quantum int64

	// PromoteOnYield moves a process that yields before its quantum expires
	// up one level instead of keeping it in place. This implementation keeps
	// the process at its current level by default.
	PromoteOnYield bool
}

// MLFQConfig configures the multilevel feedback queue policy.
// Level 0 is the highest priority; new processes always enter there.
type MLFQConfig struct {
	Levels []MLFQLevel

	// BoostInterval, when > 0, moves every waiting process back to level 0
	// each time this many ticks elapse, preventing starvation at the bottom.
	BoostInterval int64
}

// DefaultMLFQConfig is the textbook three-level setup: two RR levels with
// growing quanta over an FCFS floor.
func DefaultMLFQConfig() MLFQConfig {
	return MLFQConfig{
		Levels: []MLFQLevel{
			{Policy: MLFQLevelRR, Quantum: 4},
			{Policy: MLFQLevelRR, Quantum: 8},
			{Policy: MLFQLevelFCFS},
		},
	}
}

// NewPolicy creates a Policy by name, validating the parameters the named
// policy consumes. Unknown names and bad parameters return ErrConfig.
func NewPolicy(name string, cfg Config) (Policy, error) {
	if !ValidPolicies[name] {
		return nil, fmt.Errorf("%w: unknown policy %q", ErrConfig, name)
	}
	switch name {
	case PolicyFCFS:
		return &FCFS{}, nil
	case PolicySJF:
		return &SJF{}, nil
	case PolicySRTF:
		return &SJF{preemptive: true}, nil
	case PolicyRR:
		if cfg.Quantum <= 0 {
			return nil, fmt.Errorf("%w: round robin quantum must be > 0, got %d", ErrConfig, cfg.Quantum)
		}
		return &RoundRobin{quantum: cfg.Quantum}, nil
	case PolicyPriority:
		if cfg.AgingInterval < 0 {
			return nil, fmt.Errorf("%w: aging interval must be > 0 when aging is enabled, got %d", ErrConfig, cfg.AgingInterval)
		}
		return &PriorityAging{
			agingInterval: cfg.AgingInterval,
			minPriority:   cfg.MinPriority,
			preemptive:    cfg.Preemptive,
		}, nil
	case PolicyMLFQ:
		return NewMLFQ(cfg.MLFQ)
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
