package quixo

import "fmt"

// A cube cannot be pushed back in at the edge it already lies on,
// corners lose both of their edges
func directionAllowed(x, y int, dir Direction) bool {
	switch dir {
	case Left:
		return x != 0
	case Right:
		return x != Size-1
	case Top:
		return y != 0
	case Bottom:
		return y != Size-1
	}
	return false
}

// Whether the player may take the cube at (x, y)
func canTake(b *Board, x, y int, p Player) bool {
	c := b[y][x]
	return IsBorder(x, y) && (c == Empty || c == p.Cell())
}

// Generate all legal moves for the player. The order is fixed:
// columns (x) outer, rows (y) inner, then Top, Bottom, Left, Right
func GenerateMoves(b Board, p Player) []Move {
	moves := make([]Move, 0, MaxMoves)
	for x := range Size {
		for y := range Size {
			if !canTake(&b, x, y, p) {
				continue
			}
			for _, dir := range Directions {
				if directionAllowed(x, y, dir) {
					moves = append(moves, NewMove(x, y, dir))
				}
			}
		}
	}
	return moves
}

// Check the move against the board, returns nil or an error wrapping ErrInvalidMove
func IsLegal(b Board, m Move, p Player) error {
	x, y := int(m.X), int(m.Y)
	switch {
	case !p.Valid():
		return fmt.Errorf("%w: no such player %d", ErrInvalidMove, p)
	case !m.Dir.Valid():
		return fmt.Errorf("%w: %s", ErrInvalidMove, m.Dir)
	case !InBounds(x, y):
		return fmt.Errorf("%w: %v is outside the board", ErrInvalidMove, m)
	case !IsBorder(x, y):
		return fmt.Errorf("%w: %v is not a border cell", ErrInvalidMove, m)
	case !canTake(&b, x, y, p):
		return fmt.Errorf("%w: %v belongs to the opponent", ErrInvalidMove, m)
	case !directionAllowed(x, y, m.Dir):
		return fmt.Errorf("%w: %v pushes through its own edge", ErrInvalidMove, m)
	}
	return nil
}
