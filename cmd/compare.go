package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	compareWorkloadPath  string
	compareQuantum       int64
	compareAgingInterval int64
	compareMLFQQuantums  []int64
	compareBoostInterval int64
	compareDetails       bool
)

// compareCmd runs every policy over one workload, each on a private copy,
// and prints a side-by-side averages table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scheduling policies over one workload",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.Load(compareWorkloadPath)
		if err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}

		cfg := sim.Config{
			Quantum:       compareQuantum,
			AgingInterval: compareAgingInterval,
			MLFQ:          sim.MLFQFromQuantums(compareMLFQQuantums, compareBoostInterval),
		}
		results, err := sim.RunAll(spec.Instantiate, sim.DefaultComparison(cfg))
		if err != nil {
			logrus.Fatalf("Invalid policy configuration: %v", err)
		}

		if compareDetails {
			for _, result := range results {
				sim.WriteResult(os.Stdout, result)
			}
		}
		sim.WriteSummary(os.Stdout, results)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareWorkloadPath, "workload", "", "Workload file (.yaml spec or .csv rows)")
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", 4, "Round Robin time quantum in ticks")
	compareCmd.Flags().Int64Var(&compareAgingInterval, "aging-interval", 0, "Priority aging interval in ticks (0 disables aging)")
	compareCmd.Flags().Int64SliceVar(&compareMLFQQuantums, "mlfq-quantums", nil, "Comma-separated RR quanta for MLFQ levels (FCFS floor appended)")
	compareCmd.Flags().Int64Var(&compareBoostInterval, "boost-interval", 0, "MLFQ priority boost interval in ticks (0 disables)")
	compareCmd.Flags().BoolVar(&compareDetails, "details", false, "Print the full timeline and table per policy")
	_ = compareCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(compareCmd)
}
