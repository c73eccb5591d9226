package sim

import (
	"fmt"
)

// MLFQ is a multilevel feedback queue over k priority levels, level 0 being
// the highest. Each level runs RR with its own quantum, except an optional
// FCFS floor at the lowest level. Transitions:
//
//  1. A process not yet seen enters at level 0.
//  2. Consuming an entire RR quantum without completing demotes it one level
//     (saturating at the floor).
//  3. Yielding before the quantum expires keeps it at its level, or promotes
//     it one level when the level sets PromoteOnYield.
//  4. Every BoostInterval ticks all waiting processes move back to level 0.
//
// Selection scans levels from 0 and dispatches from the first non-empty one;
// within a level, FIFO order applies.
type MLFQ struct {
	cfg       MLFQConfig
	levels    []*ReadyQueue
	level     map[string]int   // process ID -> current level
	granted   map[string]int64 // process ID -> last granted slice length
	lastBoost int64
}

// NewMLFQ validates the level configuration and builds the policy.
func NewMLFQ(cfg MLFQConfig) (*MLFQ, error) {
	if len(cfg.Levels) < 1 {
		return nil, fmt.Errorf("%w: mlfq needs at least one level, got %d", ErrConfig, len(cfg.Levels))
	}
	if cfg.BoostInterval < 0 {
		return nil, fmt.Errorf("%w: mlfq boost interval must be >= 0, got %d", ErrConfig, cfg.BoostInterval)
	}
	for i, lvl := range cfg.Levels {
		switch lvl.Policy {
		case MLFQLevelRR:
			if lvl.Quantum <= 0 {
				return nil, fmt.Errorf("%w: mlfq level %d quantum must be > 0, got %d", ErrConfig, i, lvl.Quantum)
			}
		case MLFQLevelFCFS:
			if i != len(cfg.Levels)-1 {
				return nil, fmt.Errorf("%w: mlfq fcfs level must be the lowest level, found at %d", ErrConfig, i)
			}
		default:
			return nil, fmt.Errorf("%w: unknown mlfq level policy %q", ErrConfig, lvl.Policy)
		}
	}
	levels := make([]*ReadyQueue, len(cfg.Levels))
	for i := range levels {
		levels[i] = &ReadyQueue{}
	}
	return &MLFQ{
		cfg:     cfg,
		levels:  levels,
		level:   make(map[string]int),
		granted: make(map[string]int64),
	}, nil
}

// MLFQFromQuantums builds an MLFQConfig with one RR level per quantum and an
// FCFS floor beneath, the shape the CLI and API expose. With no quantums it
// falls back to the default three-level setup. boostInterval applies either way.
func MLFQFromQuantums(quantums []int64, boostInterval int64) MLFQConfig {
	if len(quantums) == 0 {
		cfg := DefaultMLFQConfig()
		cfg.BoostInterval = boostInterval
		return cfg
	}
	cfg := MLFQConfig{BoostInterval: boostInterval}
	for _, q := range quantums {
		cfg.Levels = append(cfg.Levels, MLFQLevel{Policy: MLFQLevelRR, Quantum: q})
	}
	cfg.Levels = append(cfg.Levels, MLFQLevel{Policy: MLFQLevelFCFS})
	return cfg
}

func (m *MLFQ) Name() string { return PolicyMLFQ }

// Admit enters a not-yet-seen process at level 0.
func (m *MLFQ) Admit(p *Process, _ int64) {
	m.level[p.ID] = 0
	m.levels[0].Enqueue(p)
}

func (m *MLFQ) Select(now int64) Decision {
	m.maybeBoost(now)
	for i, q := range m.levels {
		head := q.Dequeue()
		if head == nil {
			continue
		}
		slice := head.Remaining
		if m.cfg.Levels[i].Policy == MLFQLevelRR && m.cfg.Levels[i].Quantum < slice {
			slice = m.cfg.Levels[i].Quantum
		}
		m.granted[head.ID] = slice
		return Decision{Process: head, Duration: slice}
	}
	return Decision{}
}

// Requeue applies the demotion/retention rule. ran < granted means the
// process yielded early (MLFQ dispatches are never cut by the engine for any
// other reason).
func (m *MLFQ) Requeue(p *Process, ran int64, _ int64) {
	lvl := m.level[p.ID]
	levelCfg := m.cfg.Levels[lvl]
	switch {
	case levelCfg.Policy == MLFQLevelRR && ran >= levelCfg.Quantum:
		// Full quantum consumed without finishing: demote, saturating at the floor.
		if lvl < len(m.levels)-1 {
			lvl++
		}
	case levelCfg.PromoteOnYield && lvl > 0:
		lvl--
	}
	m.level[p.ID] = lvl
	m.levels[lvl].Enqueue(p)
}

// maybeBoost moves every waiting process back to level 0 once per elapsed
// BoostInterval. Boosts take effect at decision points; lastBoost snaps to
// the interval grid so long slices cannot skew the cadence. Level-0 residents
// keep their position; drained levels append in level order, FIFO within.
func (m *MLFQ) maybeBoost(now int64) {
	if m.cfg.BoostInterval <= 0 {
		return
	}
	elapsed := now - m.lastBoost
	if elapsed < m.cfg.BoostInterval {
		return
	}
	for i := 1; i < len(m.levels); i++ {
		for _, p := range m.levels[i].Drain() {
			m.level[p.ID] = 0
			m.levels[0].Enqueue(p)
		}
	}
	m.lastBoost += (elapsed / m.cfg.BoostInterval) * m.cfg.BoostInterval
}
