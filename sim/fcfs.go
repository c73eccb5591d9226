package sim

// FCFS dispatches processes in arrival order (declaration-order tie-break)
// and runs each to completion in a single slice. The convoy effect, short
// processes stuck behind one long early arrival, is preserved, not corrected.
type FCFS struct {
	ready []*Process
}

func (f *FCFS) Name() string { return PolicyFCFS }

// Admit appends to the ready list. The engine admits in arrival order with
// declaration-order ties, so FIFO order here is dispatch order.
func (f *FCFS) Admit(p *Process, _ int64) {
	f.ready = append(f.ready, p)
}

func (f *FCFS) Select(_ int64) Decision {
	if len(f.ready) == 0 {
		return Decision{}
	}
	head := f.ready[0]
	f.ready = f.ready[1:]
	return Decision{Process: head, Duration: head.Remaining}
}

// Requeue is only reachable for processes with a YieldInterval; a yielding
// process rejoins at the tail, behind everything that arrived meanwhile.
func (f *FCFS) Requeue(p *Process, _ int64, _ int64) {
	f.ready = append(f.ready, p)
}
