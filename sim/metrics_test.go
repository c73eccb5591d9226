package sim

import (
	"math"
	"testing"
)

func TestSummarize_ComputesPerProcessMetrics(t *testing.T) {
	p1 := NewProcess("P1", 0, 24, 0, 0, 0)
	p1.FirstRunTime, p1.CompletionTime, p1.State = 0, 24, StateCompleted
	p2 := NewProcess("P2", 1, 3, 0, 0, 1)
	p2.FirstRunTime, p2.CompletionTime, p2.State = 24, 27, StateCompleted

	tl := NewTimeline()
	tl.Record("P1", 0, 24)
	tl.Record("P2", 24, 27)

	report := Summarize([]*Process{p1, p2}, tl, 2)
	if !report.HasData {
		t.Fatal("report should carry data")
	}
	if len(report.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(report.Rows))
	}
	want := []Row{
		{ID: "P1", Arrival: 0, Burst: 24, Completion: 24, Turnaround: 24, Waiting: 0, Response: 0},
		{ID: "P2", Arrival: 1, Burst: 3, Completion: 27, Turnaround: 26, Waiting: 23, Response: 23},
	}
	for i, row := range report.Rows {
		if row != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, row, want[i])
		}
	}
	if math.Abs(report.AvgWaiting-11.5) > 1e-9 {
		t.Errorf("average waiting: got %v, want 11.5", report.AvgWaiting)
	}
	if math.Abs(report.AvgTurnaround-25.0) > 1e-9 {
		t.Errorf("average turnaround: got %v, want 25.0", report.AvgTurnaround)
	}
	if report.Makespan != 27 || report.BusyTime != 27 {
		t.Errorf("makespan/busy: got %d/%d, want 27/27", report.Makespan, report.BusyTime)
	}
	if math.Abs(report.CPUUtilization-1.0) > 1e-9 {
		t.Errorf("cpu utilization: got %v, want 1.0", report.CPUUtilization)
	}
	if math.Abs(report.Throughput-2.0/27.0) > 1e-9 {
		t.Errorf("throughput: got %v, want %v", report.Throughput, 2.0/27.0)
	}
	if report.Dispatches != 2 {
		t.Errorf("dispatches: got %d, want 2", report.Dispatches)
	}
}

func TestSummarize_IdleLowersUtilization(t *testing.T) {
	p := NewProcess("P1", 5, 5, 0, 0, 0)
	p.FirstRunTime, p.CompletionTime, p.State = 5, 10, StateCompleted

	tl := NewTimeline()
	tl.Record(IdleLabel, 0, 5)
	tl.Record("P1", 5, 10)

	report := Summarize([]*Process{p}, tl, 1)
	if math.Abs(report.CPUUtilization-0.5) > 1e-9 {
		t.Errorf("cpu utilization: got %v, want 0.5", report.CPUUtilization)
	}
	if report.Rows[0].Waiting != 0 || report.Rows[0].Response != 0 {
		t.Errorf("a process running immediately on arrival waits 0, got %+v", report.Rows[0])
	}
}

func TestSummarize_EmptyWorkload(t *testing.T) {
	report := Summarize(nil, NewTimeline(), 0)
	if report.HasData {
		t.Error("empty workload must report HasData == false")
	}
	if report.AvgWaiting != 0 || report.AvgTurnaround != 0 || report.AvgResponse != 0 {
		t.Errorf("empty workload averages must be zero, got %+v", report)
	}
}

func TestSummarize_PanicsOnUncompletedProcess(t *testing.T) {
	p := NewProcess("P1", 0, 5, 0, 0, 0)
	tl := NewTimeline()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an uncompleted process")
		}
	}()
	Summarize([]*Process{p}, tl, 0)
}
