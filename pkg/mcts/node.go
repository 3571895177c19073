package mcts

import (
	"fmt"
	"sync/atomic"
)

const (
	CanExpand    uint32 = 0
	TerminalMask uint32 = 4
)

// Parent index of the root node
const NoParent = -1

// Tree node, stored in the tree's node arena and addressed by index.
// The arena owns every node, Parent is a plain index, never used to free.
type NodeBase[T MoveLike, P any] struct {
	Stats    NodeStats
	Position P
	// Move that led to this position, zero value for the root
	Move T
	// Side that played Move, NoSide for the root
	Mover Side
	// Side to act in this position
	Turn Side
	// Winner of a terminal position, NoSide otherwise (or a draw)
	Winner   Side
	Parent   int
	Children []int
	Flags    uint32 // must be read/written atomically

	// Moves of 'Turn' not yet expanded into children
	untried []T
}

// Reads the game Flags, and return whether the node is terminal
func (node *NodeBase[T, P]) Terminal() bool {
	return atomic.LoadUint32(&node.Flags)&TerminalMask == TerminalMask
}

func TerminalFlag(terminal bool) uint32 {
	flag := CanExpand
	if terminal {
		flag |= TerminalMask
	}
	return flag
}

// Whether every legal move of this node has a child
func (node *NodeBase[T, P]) FullyExpanded() bool {
	return len(node.untried) == 0
}

// Moves not yet expanded, the slice must not be modified
func (node *NodeBase[T, P]) Untried() []T {
	return node.untried
}

// Moves the untried move at index 'i' to the tried set and returns it.
// Order of the remaining untried moves is not preserved.
func (node *NodeBase[T, P]) takeUntried(i int) T {
	last := len(node.untried) - 1
	move := node.untried[i]
	node.untried[i] = node.untried[last]
	node.untried = node.untried[:last]
	return move
}

func (node *NodeBase[T, P]) String() string {
	return fmt.Sprintf("Node={Move=%v, Turn=%d, Stats=%v, Children=%d, Untried=%d, Terminal=%v}",
		node.Move, node.Turn, &node.Stats, len(node.Children), len(node.untried), node.Terminal())
}
