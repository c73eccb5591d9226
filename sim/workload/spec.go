// Package workload declares, validates, and instantiates process workloads.
// A Spec is the immutable input of any number of simulation runs; every run
// gets its own fresh process copies via Instantiate.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// Validation sentinels. Each field failure has its own error so callers can
// tell exactly what was wrong with the declaration.
var (
	ErrEmptyID          = errors.New("process id must not be empty")
	ErrDuplicateID      = errors.New("duplicate process id")
	ErrNegativeArrival  = errors.New("arrival time must be >= 0")
	ErrNonPositiveBurst = errors.New("burst time must be > 0")
	ErrNegativeYield    = errors.New("yield interval must be >= 0")
)

// ProcessSpec declares one process. Declaration order within the Spec is
// significant: it is the stable tie-break for every scheduling decision.
type ProcessSpec struct {
	ID            string `yaml:"id" json:"id"`
	ArrivalTime   int64  `yaml:"arrival_time" json:"arrival_time"`
	BurstTime     int64  `yaml:"burst_time" json:"burst_time"`
	Priority      int    `yaml:"priority" json:"priority"`
	YieldInterval int64  `yaml:"yield_interval,omitempty" json:"yield_interval,omitempty"`
}

// Spec is an ordered workload declaration, loadable from YAML or CSV.
type Spec struct {
	Name      string        `yaml:"name,omitempty" json:"name,omitempty"`
	Processes []ProcessSpec `yaml:"processes" json:"processes"`
}

// Load reads a workload file, dispatching on extension: .csv rows, otherwise
// YAML. The returned spec is already validated.
func Load(path string) (*Spec, error) {
	if strings.HasSuffix(path, ".csv") {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening workload file: %w", err)
		}
		defer file.Close()
		return LoadCSV(file)
	}
	return LoadSpec(path)
}

// LoadSpec reads, parses, and validates a YAML workload file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	return ParseSpec(data)
}

// ParseSpec parses and validates a YAML workload document.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload file: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadCSV parses and validates workload rows of the form
//
//	id,arrival_time,burst_time[,priority[,yield_interval]]
//
// with no header line.
func LoadCSV(r io.Reader) (*Spec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // priority and yield columns are optional

	spec := &Spec{}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv at row %d: %w", row, err)
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("csv row %d: need at least id,arrival,burst, got %d fields", row, len(record))
		}
		ps := ProcessSpec{ID: strings.TrimSpace(record[0])}
		if ps.ArrivalTime, err = strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64); err != nil {
			return nil, fmt.Errorf("csv row %d: invalid arrival time: %w", row, err)
		}
		if ps.BurstTime, err = strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64); err != nil {
			return nil, fmt.Errorf("csv row %d: invalid burst time: %w", row, err)
		}
		if len(record) > 3 {
			if ps.Priority, err = strconv.Atoi(strings.TrimSpace(record[3])); err != nil {
				return nil, fmt.Errorf("csv row %d: invalid priority: %w", row, err)
			}
		}
		if len(record) > 4 {
			if ps.YieldInterval, err = strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64); err != nil {
				return nil, fmt.Errorf("csv row %d: invalid yield interval: %w", row, err)
			}
		}
		spec.Processes = append(spec.Processes, ps)
		row++
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate rejects malformed declarations before any simulation starts.
// An empty workload is valid: it produces an empty timeline and a no-data report.
func (s *Spec) Validate() error {
	seen := make(map[string]bool, len(s.Processes))
	for i, p := range s.Processes {
		if p.ID == "" {
			return fmt.Errorf("process %d: %w", i, ErrEmptyID)
		}
		if seen[p.ID] {
			return fmt.Errorf("process %d (%s): %w", i, p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("process %d (%s): %w, got %d", i, p.ID, ErrNegativeArrival, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("process %d (%s): %w, got %d", i, p.ID, ErrNonPositiveBurst, p.BurstTime)
		}
		if p.YieldInterval < 0 {
			return fmt.Errorf("process %d (%s): %w, got %d", i, p.ID, ErrNegativeYield, p.YieldInterval)
		}
	}
	return nil
}

// Instantiate produces fresh working copies for one run, in declaration
// order. Repeated calls share no mutable state, so runs over the same spec
// can proceed concurrently; Instantiate itself only reads the spec.
func (s *Spec) Instantiate() []*sim.Process {
	procs := make([]*sim.Process, len(s.Processes))
	for i, p := range s.Processes {
		procs[i] = sim.NewProcess(p.ID, p.ArrivalTime, p.BurstTime, p.Priority, p.YieldInterval, i)
	}
	return procs
}
