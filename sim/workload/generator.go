package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// GeneratorConfig parameterizes random workload synthesis. The same config
// (seed included) always generates the identical Spec.
type GeneratorConfig struct {
	Count          int     // number of processes
	Seed           int64   // RNG seed
	MaxArrival     int64   // arrivals drawn uniformly from [0, MaxArrival]
	BurstMean      float64 // gaussian burst mean
	BurstStdev     float64 // gaussian burst stddev
	BurstMin       int64   // burst clamp floor (>= 1)
	BurstMax       int64   // burst clamp ceiling (>= BurstMin)
	PriorityLevels int     // priorities drawn uniformly from [0, PriorityLevels); 0 = all priority 0
}

// Generate synthesizes a random workload for batch comparison and property
// runs. Declarations come out sorted by arrival time (stable), so declaration
// order matches arrival order.
func Generate(cfg GeneratorConfig) (*Spec, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("generate: count must be >= 0, got %d", cfg.Count)
	}
	if cfg.BurstMin < 1 {
		return nil, fmt.Errorf("generate: burst min must be >= 1, got %d", cfg.BurstMin)
	}
	if cfg.BurstMax < cfg.BurstMin {
		return nil, fmt.Errorf("generate: burst max %d below burst min %d", cfg.BurstMax, cfg.BurstMin)
	}
	if cfg.MaxArrival < 0 {
		return nil, fmt.Errorf("generate: max arrival must be >= 0, got %d", cfg.MaxArrival)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	spec := &Spec{Name: fmt.Sprintf("generated-seed-%d", cfg.Seed)}
	for i := 0; i < cfg.Count; i++ {
		ps := ProcessSpec{
			ID:        fmt.Sprintf("P%d", i+1),
			BurstTime: clampedGauss(rng, cfg.BurstMean, cfg.BurstStdev, cfg.BurstMin, cfg.BurstMax),
		}
		if cfg.MaxArrival > 0 {
			ps.ArrivalTime = rng.Int63n(cfg.MaxArrival + 1)
		}
		if cfg.PriorityLevels > 0 {
			ps.Priority = rng.Intn(cfg.PriorityLevels)
		}
		spec.Processes = append(spec.Processes, ps)
	}
	sort.SliceStable(spec.Processes, func(i, j int) bool {
		return spec.Processes[i].ArrivalTime < spec.Processes[j].ArrivalTime
	})
	return spec, nil
}

// clampedGauss samples a gaussian with the given mean and stddev, clamped to
// [min, max] and rounded to a whole tick.
func clampedGauss(rng *rand.Rand, mean, stdev float64, min, max int64) int64 {
	if min == max {
		return min
	}
	val := rng.NormFloat64()*stdev + mean
	val = math.Min(float64(max), val)
	val = math.Max(float64(min), val)
	return int64(math.Round(val))
}
