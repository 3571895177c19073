package mcts

import (
	"fmt"
	"sync/atomic"
)

// visits/wins count of the node, always meets the condition visits >= wins >= 0.
// Fields must be accessed only with atomic operations, since rollouts
// may backpropagate concurrently (leaf parallelism)
type NodeStats struct {
	n int32
	w int32
}

// Get number of visits to this node
func (stats *NodeStats) Visits() int32 {
	return atomic.LoadInt32(&stats.n)
}

// Get number of wins credited to this node
func (stats *NodeStats) Wins() int32 {
	return atomic.LoadInt32(&stats.w)
}

// wins/visits, 0 for an unvisited node
func (stats *NodeStats) WinRate() float64 {
	// Read wins first, so a concurrent update can only lower the ratio
	wins := atomic.LoadInt32(&stats.w)
	visits := atomic.LoadInt32(&stats.n)
	if visits == 0 {
		return 0
	}
	return float64(wins) / float64(visits)
}

// Add one visit, and a win if 'win' is set
func (stats *NodeStats) AddVisit(win bool) {
	atomic.AddInt32(&stats.n, 1)
	if win {
		atomic.AddInt32(&stats.w, 1)
	}
}

// Sets visits and wins of this stats to specified value
func (stats *NodeStats) SetVw(visits, wins int32) {
	if wins > visits || wins < 0 {
		panic(fmt.Sprintf("Wins (%d) must be in range [0, visits=%d]", wins, visits))
	}
	atomic.StoreInt32(&stats.n, visits)
	atomic.StoreInt32(&stats.w, wins)
}

func (stats *NodeStats) String() string {
	return fmt.Sprintf("{v=%d w=%d}", stats.Visits(), stats.Wins())
}
