// Derives per-process and workload-wide performance metrics from a finished run.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Row is the per-process metrics line of a finished run.
// Invariants for any correct schedule: Waiting + Burst == Turnaround and all
// three of Waiting, Turnaround, Response are >= 0.
type Row struct {
	ID         string `json:"id"`
	Arrival    int64  `json:"arrival_time"`
	Burst      int64  `json:"burst_time"`
	Priority   int    `json:"priority"`
	Completion int64  `json:"completion_time"`
	Turnaround int64  `json:"turnaround_time"`
	Waiting    int64  `json:"waiting_time"`
	Response   int64  `json:"response_time"`
}

// Report aggregates one run's metrics for final reporting.
// An empty workload yields HasData == false with zero averages; consumers
// should render "no data" rather than the zeros.
type Report struct {
	Rows           []Row   `json:"rows"`
	AvgWaiting     float64 `json:"average_waiting_time"`
	AvgTurnaround  float64 `json:"average_turnaround_time"`
	AvgResponse    float64 `json:"average_response_time"`
	Makespan       int64   `json:"makespan"`
	BusyTime       int64   `json:"busy_time"`
	Dispatches     int     `json:"dispatches"`
	CPUUtilization float64 `json:"cpu_utilization"`
	Throughput     float64 `json:"throughput"`
	HasData        bool    `json:"has_data"`
}

// Summarize computes the report for a completed process set. It is a pure
// function: no I/O, no state across calls. Rows come out in declaration
// order. Calling it with an uncompleted process is an engine bug and panics.
func Summarize(procs []*Process, tl *Timeline, dispatches int) Report {
	report := Report{
		Makespan:   tl.Makespan(),
		BusyTime:   tl.BusyTime(),
		Dispatches: dispatches,
	}
	if len(procs) == 0 {
		return report
	}

	waits := make([]float64, len(procs))
	turnarounds := make([]float64, len(procs))
	responses := make([]float64, len(procs))
	report.Rows = make([]Row, len(procs))
	for i, p := range procs {
		if !p.Completed() || !p.Started() {
			panic(fmt.Sprintf("Summarize: process %s has not completed", p.ID))
		}
		turnaround := p.CompletionTime - p.ArrivalTime
		waiting := turnaround - p.BurstTime
		response := p.FirstRunTime - p.ArrivalTime
		report.Rows[i] = Row{
			ID:         p.ID,
			Arrival:    p.ArrivalTime,
			Burst:      p.BurstTime,
			Priority:   p.BasePriority,
			Completion: p.CompletionTime,
			Turnaround: turnaround,
			Waiting:    waiting,
			Response:   response,
		}
		waits[i] = float64(waiting)
		turnarounds[i] = float64(turnaround)
		responses[i] = float64(response)
	}

	report.AvgWaiting = stat.Mean(waits, nil)
	report.AvgTurnaround = stat.Mean(turnarounds, nil)
	report.AvgResponse = stat.Mean(responses, nil)
	if report.Makespan > 0 {
		report.CPUUtilization = float64(report.BusyTime) / float64(report.Makespan)
		report.Throughput = float64(len(procs)) / float64(report.Makespan)
	}
	report.HasData = true
	return report
}
