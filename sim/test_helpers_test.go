package sim

import (
	"testing"
)

// procDecl is a compact process declaration for tests; seq is the index.
type procDecl struct {
	id       string
	arrival  int64
	burst    int64
	priority int
	yield    int64
}

func declare(decls ...procDecl) []*Process {
	procs := make([]*Process, len(decls))
	for i, d := range decls {
		procs[i] = NewProcess(d.id, d.arrival, d.burst, d.priority, d.yield, i)
	}
	return procs
}

func mustPolicy(t *testing.T, name string, cfg Config) Policy {
	t.Helper()
	policy, err := NewPolicy(name, cfg)
	if err != nil {
		t.Fatalf("NewPolicy(%q): %v", name, err)
	}
	return policy
}

func segmentsEqual(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func completionOf(t *testing.T, r Report, id string) int64 {
	t.Helper()
	for _, row := range r.Rows {
		if row.ID == id {
			return row.Completion
		}
	}
	t.Fatalf("no metrics row for %q", id)
	return 0
}

func waitingOf(t *testing.T, r Report, id string) int64 {
	t.Helper()
	for _, row := range r.Rows {
		if row.ID == id {
			return row.Waiting
		}
	}
	t.Fatalf("no metrics row for %q", id)
	return 0
}
