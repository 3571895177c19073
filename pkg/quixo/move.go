package quixo

import "fmt"

// Edge at which the taken cube is pushed back into the board
type Direction uint8

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// Generation order of the directions, searches rely on it for tie-breaks
var Directions = [...]Direction{Top, Bottom, Left, Right}

func (d Direction) Valid() bool {
	return d <= Right
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Parse a direction name, accepts the ones produced by Direction.String
// and the 'up'/'down' aliases
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "top", "up", "t":
		return Top, nil
	case "bottom", "down", "b":
		return Bottom, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidMove, s)
}

// Take the cube at (X, Y) and push it back in at the 'Dir' edge
type Move struct {
	X, Y int8
	Dir  Direction
}

func NewMove(x, y int, dir Direction) Move {
	return Move{X: int8(x), Y: int8(y), Dir: dir}
}

// Format: "(x,y) direction"
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d) %s", m.X, m.Y, m.Dir)
}
