package mcts

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	// Number of selection-expansion-simulation-backpropagation cycles
	Cycles uint32
	// Number of rollouts run in parallel from every selected leaf
	NThreads int
	// Rollouts longer than this are scored as a draw
	RolloutPlies int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultCyclesLimit       uint32 = 100
	DefaultRolloutPliesLimit int    = 500
)

func DefaultLimits() *Limits {
	return &Limits{
		Cycles:       DefaultCyclesLimit,
		NThreads:     1,
		RolloutPlies: DefaultRolloutPliesLimit,
	}
}

// Set the number of backpropagation cycles in monte-carlo tree search
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = max(cycles, 1)
	return l
}

// Set the number of parallel rollouts per cycle
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}

// Set the maximum length of a single rollout
func (l *Limits) SetRolloutPlies(plies int) *Limits {
	l.RolloutPlies = max(plies, 1)
	return l
}
