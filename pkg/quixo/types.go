package quixo

// Board side length
const Size = 5

// Upper bound on the number of legal moves in any position
// (16 border cells, at most 3 directions each)
const MaxMoves = 44

type Player int8
type Cell int8

const (
	PlayerA  Player = 0
	PlayerB  Player = 1
	NoPlayer Player = -1
)

const (
	Empty Cell = 0
	CellA Cell = 1
	CellB Cell = 2
)

// Returns the other player, NoPlayer stays NoPlayer
func (p Player) Opponent() Player {
	if p == NoPlayer {
		return NoPlayer
	}
	return 1 - p
}

// Marker this player puts on the board
func (p Player) Cell() Cell {
	if p == NoPlayer {
		return Empty
	}
	return Cell(p + 1)
}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "none"
}

// Owner of the cell, NoPlayer for Empty
func (c Cell) Player() Player {
	if c == Empty {
		return NoPlayer
	}
	return Player(c - 1)
}
