package mcts

// Game rules, as seen by the tree. Positions are treated as values:
// MakeMove must return a new position and never modify 'pos',
// since sibling branches and rollouts share their parent's position.
type GameOperations[T MoveLike, P any] interface {
	// Legal moves for 'turn' in given position, must always return
	// them in the same order for the same input
	GenerateMoves(pos P, turn Side) []T
	// Position after 'turn' plays 'move'
	MakeMove(pos P, move T, turn Side) (P, error)
	// Whether the game ended, after 'mover' made the last move into 'pos',
	// and who won (NoSide for a draw)
	Terminal(pos P, mover Side) (bool, Side)
	// Side to act after 'turn'
	Next(turn Side) Side
}
