package sim

// RoundRobin cycles one FIFO queue with a fixed quantum. A process whose
// slice expires rejoins at the tail; the engine admits processes that arrived
// strictly during the slice before the requeue and same-instant arrivals
// after it (requeue-before-new-arrival, the textbook tie-break).
//
// Quantum trade-off: a large quantum degenerates toward FCFS, a small one
// inflates the dispatch count without bound; the Report's Dispatches field
// is the context-switch overhead proxy.
type RoundRobin struct {
	quantum int64
	queue   ReadyQueue
}

func (r *RoundRobin) Name() string { return PolicyRR }

func (r *RoundRobin) Admit(p *Process, _ int64) {
	r.queue.Enqueue(p)
}

func (r *RoundRobin) Select(_ int64) Decision {
	head := r.queue.Dequeue()
	if head == nil {
		return Decision{}
	}
	slice := r.quantum
	if head.Remaining < slice {
		slice = head.Remaining
	}
	return Decision{Process: head, Duration: slice}
}

func (r *RoundRobin) Requeue(p *Process, _ int64, _ int64) {
	r.queue.Enqueue(p)
}
