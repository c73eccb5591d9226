package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is a run configuration loadable from a YAML file: policy selection
// plus every policy parameter. Omitted fields keep their zero value; MLFQ nil
// means the default three-level setup.
type Bundle struct {
	Policy        string      `yaml:"policy"`
	Quantum       int64       `yaml:"quantum"`
	AgingInterval int64       `yaml:"aging_interval"`
	MinPriority   int         `yaml:"min_priority"`
	Preemptive    bool        `yaml:"preemptive"`
	MLFQ          *MLFQBundle `yaml:"mlfq"`
}

// MLFQBundle is the YAML shape of MLFQConfig.
type MLFQBundle struct {
	Levels        []MLFQLevelBundle `yaml:"levels"`
	BoostInterval int64             `yaml:"boost_interval"`
}

// MLFQLevelBundle is the YAML shape of one MLFQ level.
type MLFQLevelBundle struct {
	Policy         string `yaml:"policy"`
	Quantum        int64  `yaml:"quantum"`
	PromoteOnYield bool   `yaml:"promote_on_yield"`
}

// LoadBundle reads and parses a YAML run configuration file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle Bundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// ToConfig converts the bundle to the engine's Config.
func (b *Bundle) ToConfig() Config {
	cfg := Config{
		Quantum:       b.Quantum,
		AgingInterval: b.AgingInterval,
		MinPriority:   b.MinPriority,
		Preemptive:    b.Preemptive,
		MLFQ:          DefaultMLFQConfig(),
	}
	if b.MLFQ != nil {
		cfg.MLFQ = MLFQConfig{BoostInterval: b.MLFQ.BoostInterval}
		for _, lvl := range b.MLFQ.Levels {
			cfg.MLFQ.Levels = append(cfg.MLFQ.Levels, MLFQLevel{
				Policy:         lvl.Policy,
				Quantum:        lvl.Quantum,
				PromoteOnYield: lvl.PromoteOnYield,
			})
		}
	}
	return cfg
}

// Validate checks the policy name and the parameters it consumes.
func (b *Bundle) Validate() error {
	_, err := NewPolicy(b.Policy, b.ToConfig())
	return err
}
