package mcts

import (
	"math"
	"math/rand"
	"time"
)

// Exploration constants of DepthExploration: more exploration near the root,
// more exploitation deeper in the tree
var (
	ExplorationShallow float64 = math.Sqrt2 + 0.75
	ExplorationDeep    float64 = 1.0
	ExplorationDepth   int     = 10
)

// Default exploration policy, ExplorationShallow for depth < ExplorationDepth,
// ExplorationDeep otherwise
func DepthExploration(depth int) float64 {
	if depth < ExplorationDepth {
		return ExplorationShallow
	}
	return ExplorationDeep
}

// Same exploration constant at every depth
func ConstantExploration(c float64) ExplorationPolicy {
	c = max(0, c)
	return func(int) float64 { return c }
}

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators created by NewRand,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// New random source, seeded with SeedGeneratorFn
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(SeedGeneratorFn()))
}
