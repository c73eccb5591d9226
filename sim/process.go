// Defines the Process struct that models one process in a simulation run.
// Tracks arrival, CPU demand, remaining work, and completion/response timestamps.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateQueued    ProcessState = "queued"
	StateRunning   ProcessState = "running"
	StateCompleted ProcessState = "completed"
)

// TimeUnset marks a timestamp that has not been assigned yet
// (FirstRunTime before the first dispatch, CompletionTime before the last).
const TimeUnset int64 = -1

// Process models a single process's lifecycle in one simulation run.
// The declaration fields (ID, ArrivalTime, BurstTime, BasePriority, Seq,
// YieldInterval) are fixed at instantiation; the rest is per-run state owned
// exclusively by the engine driving that run. Runs never share Process values.
type Process struct {
	ID          string // Unique identifier for the process
	ArrivalTime int64  // Tick at which the process becomes ready (>= 0)
	BurstTime   int64  // Total CPU demand in ticks (> 0)

	// Priority is the current effective priority; lower number = more urgent.
	// Only priority-aware policies read it. BasePriority is the immutable
	// declared baseline that aging improves on.
	Priority     int
	BasePriority int

	// YieldInterval, when > 0, makes the process give up the CPU after that
	// many ticks of any single slice (unless the slice completes it first).
	// This is the minimal I/O-bound behavior needed by the MLFQ stay/promote
	// rule; 0 means fully CPU-bound.
	YieldInterval int64

	// Seq is the declaration index within the workload. It is the final
	// tie-break everywhere ordering matters, so results never depend on
	// map iteration order.
	Seq int

	State          ProcessState
	Remaining      int64 // CPU demand not yet served; never negative
	FirstRunTime   int64 // Tick of first dispatch, TimeUnset until then
	CompletionTime int64 // Tick Remaining reached 0, TimeUnset until then
}

// NewProcess builds a fresh Process in the queued state with all run state reset.
func NewProcess(id string, arrival, burst int64, priority int, yieldInterval int64, seq int) *Process {
	return &Process{
		ID:             id,
		ArrivalTime:    arrival,
		BurstTime:      burst,
		Priority:       priority,
		BasePriority:   priority,
		YieldInterval:  yieldInterval,
		Seq:            seq,
		State:          StateQueued,
		Remaining:      burst,
		FirstRunTime:   TimeUnset,
		CompletionTime: TimeUnset,
	}
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool {
	return p.FirstRunTime != TimeUnset
}

// Completed reports whether the process has finished its full burst.
func (p *Process) Completed() bool {
	return p.CompletionTime != TimeUnset
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, Arrival: %d, Remaining: %d/%d)",
		p.ID, p.State, p.ArrivalTime, p.Remaining, p.BurstTime)
}
