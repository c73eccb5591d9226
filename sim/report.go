// Renders run results for the CLI: a Gantt line per timeline plus a
// tablewriter metrics table. The core stays I/O-free; only these writers print.

package sim

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteResult renders one run: title, Gantt chart, and the metrics table.
func WriteResult(w io.Writer, res *Result) {
	fmt.Fprintf(w, "=== %s ===\n", res.Policy)
	WriteGantt(w, res.Segments)
	WriteReport(w, res.Report)
}

// WriteGantt renders the timeline as a single-line Gantt chart.
func WriteGantt(w io.Writer, segments []Segment) {
	if len(segments) == 0 {
		fmt.Fprintln(w, "Gantt: (empty)")
		return
	}
	fmt.Fprint(w, "Gantt: |")
	for _, s := range segments {
		fmt.Fprintf(w, " %s %d..%d |", s.Label, s.Start, s.End)
	}
	fmt.Fprintln(w)
}

// WriteReport renders the per-process table with workload averages in the
// footer, followed by the run-wide summary lines.
func WriteReport(w io.Writer, r Report) {
	if !r.HasData {
		fmt.Fprintln(w, "no data")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	for _, row := range r.Rows {
		table.Append([]string{
			row.ID,
			fmt.Sprint(row.Arrival),
			fmt.Sprint(row.Burst),
			fmt.Sprint(row.Priority),
			fmt.Sprint(row.Completion),
			fmt.Sprint(row.Turnaround),
			fmt.Sprint(row.Waiting),
			fmt.Sprint(row.Response),
		})
	}
	table.SetFooter([]string{"", "", "", "", "AVG",
		fmt.Sprintf("%.2f", r.AvgTurnaround),
		fmt.Sprintf("%.2f", r.AvgWaiting),
		fmt.Sprintf("%.2f", r.AvgResponse),
	})
	table.Render()

	fmt.Fprintf(w, "Makespan        : %d ticks\n", r.Makespan)
	fmt.Fprintf(w, "CPU utilization : %.2f%%\n", r.CPUUtilization*100)
	fmt.Fprintf(w, "Throughput      : %.4f processes/tick\n", r.Throughput)
	fmt.Fprintf(w, "Dispatches      : %d\n", r.Dispatches)
}

// WriteSummary renders one averages line per result, for policy comparison.
func WriteSummary(w io.Writer, results []*Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround", "Avg Response", "Makespan", "Dispatches"})
	for _, res := range results {
		if !res.Report.HasData {
			table.Append([]string{res.Policy, "no data", "no data", "no data", "0", "0"})
			continue
		}
		table.Append([]string{
			res.Policy,
			fmt.Sprintf("%.2f", res.Report.AvgWaiting),
			fmt.Sprintf("%.2f", res.Report.AvgTurnaround),
			fmt.Sprintf("%.2f", res.Report.AvgResponse),
			fmt.Sprint(res.Report.Makespan),
			fmt.Sprint(res.Report.Dispatches),
		})
	}
	table.Render()
}
