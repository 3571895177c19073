package mcts

// Other types, which didn't fit to MCTS or Node files

type MoveLike comparable

// Identifier of a side (player), game-specific values must be non-negative
type Side int8

// Draw, or 'no winner yet'
const NoSide Side = -1

// Exploration constant 'C' used by UCB1 at given tree depth
// (depth = number of parent links from the node being selected from, to the root)
type ExplorationPolicy func(depth int) float64

type SeedGeneratorFnType func() int64
