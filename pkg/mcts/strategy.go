package mcts

// Decides which nodes get credited with a win on the way back to the root
type StrategyLike[T MoveLike, P any] interface {
	Backpropagate(tree *MCTS[T, P], node int, winner Side)
}

// Credits a win on every node of the path, whenever the decision root's
// side to act won the rollout. Every win rate in the tree is then measured
// from the root side's perspective, also at the nodes where the opponent acts.
type RootSideBackprop[T MoveLike, P any] struct{}

func (RootSideBackprop[T, P]) Backpropagate(tree *MCTS[T, P], node int, winner Side) {
	win := winner != NoSide && winner == tree.RootSide()
	for node != NoParent {
		n := tree.Node(node)
		n.Stats.AddVisit(win)
		node = n.Parent
	}
}

// Credits a win on the nodes whose Mover won the rollout, so every side picks
// the children most promising for itself during selection (classic zero-sum UCT)
type MoverBackprop[T MoveLike, P any] struct{}

func (MoverBackprop[T, P]) Backpropagate(tree *MCTS[T, P], node int, winner Side) {
	for node != NoParent {
		n := tree.Node(node)
		n.Stats.AddVisit(winner != NoSide && winner == n.Mover)
		node = n.Parent
	}
}
