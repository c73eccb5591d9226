// Runs several policies over the same workload for side-by-side comparison.
// Each run owns a private process copy, so runs execute concurrently.

package sim

import (
	"sync"
)

// NamedConfig pairs a policy name with the parameters it should run with.
type NamedConfig struct {
	Name   string
	Config Config
}

// DefaultComparison returns one NamedConfig per policy, all sharing cfg's
// parameters: the standard all-policies-over-one-workload comparison.
func DefaultComparison(cfg Config) []NamedConfig {
	return []NamedConfig{
		{Name: PolicyFCFS, Config: cfg},
		{Name: PolicySJF, Config: cfg},
		{Name: PolicySRTF, Config: cfg},
		{Name: PolicyRR, Config: cfg},
		{Name: PolicyPriority, Config: cfg},
		{Name: PolicyMLFQ, Config: cfg},
	}
}

// RunAll executes one run per config, each over its own copy of the workload,
// concurrently. fresh must return a brand-new private process set on every
// call and be safe to call from multiple goroutines
// (workload.Spec.Instantiate qualifies: it only reads the spec).
//
// All configuration errors surface before any run starts; no partial results
// are returned. Results come back in config order and are identical to what
// sequential Run calls would produce.
func RunAll(fresh func() []*Process, configs []NamedConfig) ([]*Result, error) {
	policies := make([]Policy, len(configs))
	for i, c := range configs {
		policy, err := NewPolicy(c.Name, c.Config)
		if err != nil {
			return nil, err
		}
		policies[i] = policy
	}

	results := make([]*Result, len(configs))
	var wg sync.WaitGroup
	for i := range configs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Run(policies[i], fresh())
		}(i)
	}
	wg.Wait()
	return results, nil
}
