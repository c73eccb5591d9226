package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	runWorkloadPath  string
	runBundlePath    string
	runPolicy        string
	runQuantum       int64
	runAgingInterval int64
	runMinPriority   int
	runPreemptive    bool
	runMLFQQuantums  []int64
	runBoostInterval int64
)

// runCmd simulates one policy over one workload and prints the Gantt chart
// and metrics table.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.Load(runWorkloadPath)
		if err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}

		name, cfg := runPolicy, flagConfig()
		if runBundlePath != "" {
			bundle, err := sim.LoadBundle(runBundlePath)
			if err != nil {
				logrus.Fatalf("Invalid run config: %v", err)
			}
			name, cfg = bundle.Policy, bundle.ToConfig()
		}

		policy, err := sim.NewPolicy(name, cfg)
		if err != nil {
			logrus.Fatalf("Invalid policy: %v", err)
		}

		result := sim.Run(policy, spec.Instantiate())
		sim.WriteResult(os.Stdout, result)
	},
}

// flagConfig assembles a sim.Config from the run command's flags.
func flagConfig() sim.Config {
	return sim.Config{
		Quantum:       runQuantum,
		AgingInterval: runAgingInterval,
		MinPriority:   runMinPriority,
		Preemptive:    runPreemptive,
		MLFQ:          sim.MLFQFromQuantums(runMLFQQuantums, runBoostInterval),
	}
}

func init() {
	runCmd.Flags().StringVar(&runWorkloadPath, "workload", "", "Workload file (.yaml spec or .csv rows id,arrival,burst[,priority[,yield]])")
	runCmd.Flags().StringVar(&runBundlePath, "config", "", "YAML run config (overrides the policy flags)")
	runCmd.Flags().StringVar(&runPolicy, "policy", sim.PolicyFCFS, "Scheduling policy (fcfs, sjf, srtf, rr, priority, mlfq)")
	runCmd.Flags().Int64Var(&runQuantum, "quantum", 4, "Round Robin time quantum in ticks")
	runCmd.Flags().Int64Var(&runAgingInterval, "aging-interval", 0, "Priority aging interval in ticks (0 disables aging)")
	runCmd.Flags().IntVar(&runMinPriority, "min-priority", 0, "Clamp for aged priorities")
	runCmd.Flags().BoolVar(&runPreemptive, "preemptive", false, "Use the preemptive priority variant")
	runCmd.Flags().Int64SliceVar(&runMLFQQuantums, "mlfq-quantums", nil, "Comma-separated RR quanta for MLFQ levels (FCFS floor appended)")
	runCmd.Flags().Int64Var(&runBoostInterval, "boost-interval", 0, "MLFQ priority boost interval in ticks (0 disables)")
	_ = runCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(runCmd)
}
