// Package sim provides the core discrete-event engine for a single-CPU
// scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (queued → running → completed) and per-run state
//   - policy.go: The Decision contract every scheduling policy implements
//   - engine.go: The clock loop that dispatches processes and records the timeline
//
// # Architecture
//
// The sim package owns the engine, the scheduling policies, the timeline
// recorder, and the metrics calculator. Workload declaration, validation, and
// generation live in the sim/workload sub-package.
//
// # Key Interfaces
//
// Policy is the single extension point: Admit feeds ready processes in arrival
// order, Select answers "who runs next and for how long", and Requeue returns
// an unfinished process after a slice. The engine owns all clock movement and
// bookkeeping; policies only order and pick.
//
// A single run is synchronous and deterministic. Independent runs over private
// process copies may execute concurrently (see RunAll in compare.go).
package sim
