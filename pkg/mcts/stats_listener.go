package mcts

type ListenerTreeStats[T MoveLike] struct {
	Maxdepth   int
	Cycles     int
	Size       int
	BestMove   T
	WinRate    float64
	StopReason StopReason
}

// Convert tree statistics to 'ListenerTreeStats' struct
func toListenerStats[T MoveLike, P any](tree *MCTS[T, P]) ListenerTreeStats[T] {
	stats := ListenerTreeStats[T]{
		Maxdepth:   tree.MaxDepth(),
		Cycles:     tree.Cycles(),
		Size:       tree.Size(),
		StopReason: tree.Limiter.StopReason(),
	}
	if best := tree.BestChild(0); best != NoParent {
		node := tree.Node(best)
		stats.BestMove = node.Move
		stats.WinRate = node.Stats.WinRate()
	}
	return stats
}

// Listener function callback, will receive current tree statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc[T MoveLike] func(ListenerTreeStats[T])

type StatsListener[T MoveLike] struct {
	// called when 'max depth' increases
	onDepth ListenerFunc[T]

	// called every N full iterations
	onCycle ListenerFunc[T]
	nCycles int // call 'onCycle' every N cycles

	// called when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{nCycles: 1}
}

// Attach new on max depth change callback
func (listener *StatsListener[T]) OnDepth(onDepth ListenerFunc[T]) *StatsListener[T] {
	listener.onDepth = onDepth
	return listener
}

// Attach new on iteration increase callback, see SetCycleInterval
func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}
