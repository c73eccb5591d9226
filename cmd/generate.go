package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim/workload"
)

var generateCfg workload.GeneratorConfig

// generateCmd synthesizes a random workload spec and writes it to stdout,
// ready to feed back into run or compare.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random workload spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.Generate(generateCfg)
		if err != nil {
			logrus.Fatalf("Invalid generator configuration: %v", err)
		}
		data, err := yaml.Marshal(spec)
		if err != nil {
			logrus.Fatalf("Marshaling workload spec: %v", err)
		}
		fmt.Fprint(os.Stdout, string(data))
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateCfg.Count, "count", 10, "Number of processes")
	generateCmd.Flags().Int64Var(&generateCfg.Seed, "seed", 42, "Seed for random workload generation")
	generateCmd.Flags().Int64Var(&generateCfg.MaxArrival, "max-arrival", 20, "Arrivals drawn uniformly from [0, max-arrival]")
	generateCmd.Flags().Float64Var(&generateCfg.BurstMean, "burst-mean", 8, "Gaussian burst time mean")
	generateCmd.Flags().Float64Var(&generateCfg.BurstStdev, "burst-stdev", 4, "Gaussian burst time stddev")
	generateCmd.Flags().Int64Var(&generateCfg.BurstMin, "burst-min", 1, "Burst time clamp floor")
	generateCmd.Flags().Int64Var(&generateCfg.BurstMax, "burst-max", 30, "Burst time clamp ceiling")
	generateCmd.Flags().IntVar(&generateCfg.PriorityLevels, "priority-levels", 5, "Priorities drawn uniformly from [0, priority-levels)")

	rootCmd.AddCommand(generateCmd)
}
