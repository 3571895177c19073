package mcts

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrNoLegalMoves     = errors.New("mcts: no legal moves in the root position")
	ErrTerminalPosition = errors.New("mcts: root position is terminal")
)

// Upper bound on the initial arena capacity
const maxPreallocatedNodes = 1 << 16

type TreeStats struct {
	maxdepth atomic.Int32
	cycles   atomic.Uint32
}

// Monte-Carlo search tree, built for a single decision. Nodes live in one arena
// slice, the root has index 0, every other node is reachable only through
// its parent's Children.
type MCTS[T MoveLike, P any] struct {
	TreeStats
	Limiter     LimiterLike
	listener    *StatsListener[T]
	ops         GameOperations[T, P]
	exploration ExplorationPolicy
	strategy    StrategyLike[T, P]
	nodes       []NodeBase[T, P]
	rootSide    Side
}

// Create new tree, rooted at 'position' with 'turn' to act.
// The tree assumes a two-player game: the root position was reached by ops.Next(turn).
func NewMTCS[T MoveLike, P any](ops GameOperations[T, P], position P, turn Side, limits *Limits) *MCTS[T, P] {
	limiter := NewLimiter()
	limiter.SetLimits(limits)

	mcts := &MCTS[T, P]{
		Limiter:     LimiterLike(limiter),
		listener:    &StatsListener[T]{nCycles: 1},
		ops:         ops,
		exploration: DepthExploration,
		strategy:    RootSideBackprop[T, P]{},
		nodes:       make([]NodeBase[T, P], 0, min(int(limiter.Limits().Cycles)+1, maxPreallocatedNodes)),
		rootSide:    turn,
	}

	terminal, winner := ops.Terminal(position, ops.Next(turn))
	root := NodeBase[T, P]{
		Position: position,
		Mover:    NoSide,
		Turn:     turn,
		Winner:   winner,
		Parent:   NoParent,
		Flags:    TerminalFlag(terminal),
	}
	if !terminal {
		root.untried = ops.GenerateMoves(position, turn)
	}
	mcts.nodes = append(mcts.nodes, root)
	return mcts
}

// Side to act in the root position, wins are counted for this side by default
func (mcts *MCTS[T, P]) RootSide() Side {
	return mcts.rootSide
}

func (mcts *MCTS[T, P]) Root() *NodeBase[T, P] {
	return &mcts.nodes[0]
}

// Node with given index, the pointer is valid until the next expansion
func (mcts *MCTS[T, P]) Node(id int) *NodeBase[T, P] {
	return &mcts.nodes[id]
}

// Number of nodes in the tree
func (mcts *MCTS[T, P]) Size() int {
	return len(mcts.nodes)
}

// Number of parent links between the node and the root
func (mcts *MCTS[T, P]) Depth(id int) int {
	depth := 0
	for mcts.nodes[id].Parent != NoParent {
		id = mcts.nodes[id].Parent
		depth++
	}
	return depth
}

// Maximum depth reached during the search
func (mcts *MCTS[T, P]) MaxDepth() int {
	return int(mcts.maxdepth.Load())
}

// Total number of 'iterations', 'cycles', 'simulations' ran during the search
func (mcts *MCTS[T, P]) Cycles() int {
	return int(mcts.cycles.Load())
}

// Get the reason why the search was stopped, valid after search ends
func (mcts *MCTS[T, P]) StopReason() StopReason {
	return mcts.Limiter.StopReason()
}

func (mcts *MCTS[T, P]) SetLimits(limits *Limits) {
	mcts.Limiter.SetLimits(limits)
}

func (mcts *MCTS[T, P]) Limits() *Limits {
	return mcts.Limiter.Limits()
}

// Adds custom context to the limiter, enabling cancellation between cycles
func (mcts *MCTS[T, P]) SetContext(ctx context.Context) {
	mcts.Limiter.SetContext(ctx)
}

// Stop the search, after the current cycle
func (mcts *MCTS[T, P]) Stop() {
	mcts.Limiter.SetStop(true)
}

func (mcts *MCTS[T, P]) SetExplorationPolicy(policy ExplorationPolicy) {
	if policy != nil {
		mcts.exploration = policy
	}
}

func (mcts *MCTS[T, P]) SetStrategy(strategy StrategyLike[T, P]) {
	if strategy != nil {
		mcts.strategy = strategy
	}
}

func (mcts *MCTS[T, P]) Strategy() StrategyLike[T, P] {
	return mcts.strategy
}

func (mcts *MCTS[T, P]) StatsListener() *StatsListener[T] {
	return mcts.listener
}

func (mcts *MCTS[T, P]) SetListener(listener StatsListener[T]) {
	*mcts.listener = listener
}

func (mcts *MCTS[T, P]) ResetListener() {
	mcts.listener.OnCycle(nil).OnDepth(nil).OnStop(nil)
}

func (mcts *MCTS[T, P]) invokeListener(f ListenerFunc[T]) {
	if f != nil {
		f(toListenerStats(mcts))
	}
}

// Child of 'id' with the highest wins/visits ratio, first one wins the ties,
// unvisited children are never chosen. Returns NoParent if there is none.
func (mcts *MCTS[T, P]) BestChild(id int) int {
	best := NoParent
	bestWinRate := -1.0

	for _, childId := range mcts.nodes[id].Children {
		child := &mcts.nodes[childId]
		if child.Stats.Visits() == 0 {
			continue
		}
		if wr := child.Stats.WinRate(); wr > bestWinRate {
			bestWinRate = wr
			best = childId
		}
	}
	return best
}

// 'the best move' in the root position, based on the win rate. Before any
// cycle was run, falls back to the first legal move.
func (mcts *MCTS[T, P]) BestMove() (T, error) {
	var signature T
	best := mcts.BestChild(0)
	if best != NoParent {
		return mcts.nodes[best].Move, nil
	}

	// Nothing visited yet (no cycles were run), any legal move will do
	root := mcts.Root()
	switch {
	case root.Terminal():
		return signature, ErrTerminalPosition
	case len(root.Children) > 0:
		return mcts.nodes[root.Children[0]].Move, nil
	case len(root.untried) > 0:
		return root.untried[0], nil
	}
	return signature, ErrNoLegalMoves
}

// Sequence of best children, starting at the root
func (mcts *MCTS[T, P]) Pv() []T {
	pv := make([]T, 0, mcts.MaxDepth())
	for id := mcts.BestChild(0); id != NoParent; id = mcts.BestChild(id) {
		pv = append(pv, mcts.nodes[id].Move)
	}
	return pv
}

func (mcts *MCTS[T, P]) String() string {
	return fmt.Sprintf("MCTS={Size=%d, Stats:{maxdepth=%d, cycles=%d}, Root=%v}",
		mcts.Size(), mcts.MaxDepth(), mcts.Cycles(), mcts.Root())
}
