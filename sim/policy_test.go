package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_KnownNames(t *testing.T) {
	cfg := Config{Quantum: 4, MLFQ: DefaultMLFQConfig()}
	for name := range ValidPolicies {
		policy, err := NewPolicy(name, cfg)
		require.NoError(t, err, "NewPolicy(%q)", name)
		assert.Equal(t, name, policy.Name())
	}
}

func TestNewPolicy_SRTFIsPreemptiveSJF(t *testing.T) {
	policy, err := NewPolicy(PolicySRTF, Config{})
	require.NoError(t, err)
	sjf, ok := policy.(*SJF)
	require.True(t, ok, "srtf should share the SJF implementation")
	assert.True(t, sjf.preemptive)
}

func TestNewPolicy_ConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		policy string
		cfg    Config
	}{
		{"unknown name", "lottery", Config{}},
		{"rr zero quantum", PolicyRR, Config{}},
		{"rr negative quantum", PolicyRR, Config{Quantum: -3}},
		{"negative aging interval", PolicyPriority, Config{AgingInterval: -1}},
		{"mlfq without levels", PolicyMLFQ, Config{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPolicy(tc.policy, tc.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig), "want ErrConfig, got %v", err)
		})
	}
}

func TestNewPolicy_ZeroAgingIntervalDisablesAging(t *testing.T) {
	policy, err := NewPolicy(PolicyPriority, Config{})
	require.NoError(t, err)
	pa, ok := policy.(*PriorityAging)
	require.True(t, ok)

	p := NewProcess("P", 0, 10, 3, 0, 0)
	assert.Equal(t, 3, pa.Effective(p, 1000), "without aging the effective priority never moves")
}
