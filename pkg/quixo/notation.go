package quixo

import (
	"fmt"
	"strings"
)

// Notation of the empty board
const EmptyNotation = "5/5/5/5/5"

// FEN-like string notation of the board. Rows are written top to bottom,
// separated by '/', 'x' is player A's cube, 'o' player B's,
// a digit is a run of empty cells. For example:
//
//	xxxxx/5/2o2/5/o3x
func (b Board) Notation() string {
	builder := strings.Builder{}
	for y := range Size {
		counter := 0
		for x := range Size {
			c := b[y][x]
			if c == Empty {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteByte('0' + byte(counter))
				counter = 0
			}
			builder.WriteByte(c.Symbol())
		}
		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
		if y != Size-1 {
			builder.WriteByte('/')
		}
	}
	return builder.String()
}

// Parse the board from the notation, see Board.Notation
func FromNotation(notation string) (Board, error) {
	var b Board
	rows := strings.Split(strings.TrimSpace(notation), "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, got %d in %q", ErrMalformedBoard, Size, len(rows), notation)
	}

	for y, row := range rows {
		x := 0
		for _, r := range row {
			if x >= Size {
				return b, fmt.Errorf("%w: row %d is too long in %q", ErrMalformedBoard, y, notation)
			}
			switch {
			case r >= '1' && r <= '5':
				x += int(r - '0')
				if x > Size {
					return b, fmt.Errorf("%w: row %d is too long in %q", ErrMalformedBoard, y, notation)
				}
			case r == 'x' || r == 'X':
				b[y][x] = CellA
				x++
			case r == 'o' || r == 'O':
				b[y][x] = CellB
				x++
			default:
				return b, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedBoard, r, notation)
			}
		}
		if x != Size {
			return b, fmt.Errorf("%w: row %d has %d cells in %q", ErrMalformedBoard, y, x, notation)
		}
	}
	return b, nil
}

// Like FromNotation, but panics on error, meant for tests and constants
func MustNotation(notation string) Board {
	b, err := FromNotation(notation)
	if err != nil {
		panic(err)
	}
	return b
}

// Labeled symbol of the cell
func (c Cell) Symbol() byte {
	switch c {
	case CellA:
		return 'x'
	case CellB:
		return 'o'
	}
	return '.'
}

// Grid representation, one row per line
func (b Board) String() string {
	builder := strings.Builder{}
	for y := range Size {
		for x := range Size {
			if x > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteByte(b[y][x].Symbol())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
