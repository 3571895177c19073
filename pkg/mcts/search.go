package mcts

import (
	"math/rand"
	"sync"
)

// This function only resets the counters and the stop flag,
// doesn't actually start the search
func (mcts *MCTS[T, P]) setupSearch() {
	mcts.Limiter.Reset()
	mcts.cycles.Store(0)
	mcts.maxdepth.Store(0)
}

// Actual search function implementation, runs cycles of:
//
// 1. selection - to choose the most promising node
//
// 2. expansion - to add one untried move of that node as a new child
//
// 3. rollout - to simulate the game with random moves, and get the winner
//
// 4. backpropagate - to increment counters up to the root
//
// Until the cycle limit is reached, or the search is stopped. All randomness
// comes from 'rng'. Returns the root child with the best win rate.
func (mcts *MCTS[T, P]) Search(rng *rand.Rand) (T, error) {
	var signature T
	root := mcts.Root()
	if root.Terminal() {
		return signature, ErrTerminalPosition
	}
	if root.FullyExpanded() && len(root.Children) == 0 {
		return signature, ErrNoLegalMoves
	}

	mcts.setupSearch()
	for mcts.Limiter.Ok(uint32(mcts.Cycles())) {
		mcts.Cycle(rng)

		cycles := mcts.cycles.Add(1)
		if mcts.listener.onCycle != nil && int(cycles)%max(1, mcts.listener.nCycles) == 0 {
			mcts.listener.onCycle(toListenerStats(mcts))
		}
	}

	mcts.Limiter.EvaluateStopReason(uint32(mcts.Cycles()))
	mcts.invokeListener(mcts.listener.onStop)
	return mcts.BestMove()
}

// Single search iteration
func (mcts *MCTS[T, P]) Cycle(rng *rand.Rand) {
	node := mcts.Expand(mcts.Selection(), rng)

	threads := mcts.Limiter.Limits().NThreads
	if threads <= 1 {
		mcts.strategy.Backpropagate(mcts, node, mcts.Rollout(node, rng))
		return
	}

	// Leaf parallelism: every rollout gets its own random source,
	// seeded from 'rng' up front so the search stays reproducible
	seeds := make([]int64, threads)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	var wg sync.WaitGroup
	for _, seed := range seeds {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			mcts.strategy.Backpropagate(mcts, node, mcts.Rollout(node, r))
		}(seed)
	}
	wg.Wait()
}

// Selects the node to expand: descends by UCB1 while the node is fully expanded
// and has children
func (mcts *MCTS[T, P]) Selection() int {
	id := 0
	depth := 0
	for {
		node := &mcts.nodes[id]
		if !node.FullyExpanded() || len(node.Children) == 0 {
			break
		}
		id = mcts.SelectChild(id, mcts.exploration(depth))
		depth++
	}

	// Set the 'max depth'
	if int32(depth) > mcts.maxdepth.Load() {
		mcts.maxdepth.Store(int32(depth))
		mcts.invokeListener(mcts.listener.onDepth)
	}
	return id
}

// Expands one untried move of the node, chosen uniformly at random,
// returns the new child, or the node itself if it has nothing to expand
func (mcts *MCTS[T, P]) Expand(id int, rng *rand.Rand) int {
	node := &mcts.nodes[id]
	if node.FullyExpanded() {
		return id
	}

	move := node.takeUntried(rng.Intn(len(node.untried)))
	position, err := mcts.ops.MakeMove(node.Position, move, node.Turn)
	if err != nil {
		// Generator and rules disagree, the move is dropped
		return id
	}
	return mcts.addChild(id, move, position)
}

func (mcts *MCTS[T, P]) addChild(parent int, move T, position P) int {
	mover := mcts.nodes[parent].Turn
	turn := mcts.ops.Next(mover)
	terminal, winner := mcts.ops.Terminal(position, mover)

	child := NodeBase[T, P]{
		Position: position,
		Move:     move,
		Mover:    mover,
		Turn:     turn,
		Winner:   winner,
		Parent:   parent,
		Flags:    TerminalFlag(terminal),
	}
	if !terminal {
		child.untried = mcts.ops.GenerateMoves(position, turn)
	}

	mcts.nodes = append(mcts.nodes, child)
	id := len(mcts.nodes) - 1
	mcts.nodes[parent].Children = append(mcts.nodes[parent].Children, id)
	return id
}

// Play random moves from the node's position until the game ends,
// returns the winner, NoSide for a draw (also when a side has no moves,
// or the rollout exceeds the ply limit)
func (mcts *MCTS[T, P]) Rollout(id int, rng *rand.Rand) Side {
	node := &mcts.nodes[id]
	if node.Terminal() {
		return node.Winner
	}

	position, turn := node.Position, node.Turn
	limit := mcts.Limiter.Limits().RolloutPlies
	if limit <= 0 {
		limit = DefaultRolloutPliesLimit
	}

	for range limit {
		moves := mcts.ops.GenerateMoves(position, turn)
		if len(moves) == 0 {
			return NoSide
		}

		next, err := mcts.ops.MakeMove(position, moves[rng.Intn(len(moves))], turn)
		if err != nil {
			return NoSide
		}
		position = next

		if terminal, winner := mcts.ops.Terminal(position, turn); terminal {
			return winner
		}
		turn = mcts.ops.Next(turn)
	}
	return NoSide
}
