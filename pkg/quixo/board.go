package quixo

// 5x5 grid, indexed [y][x]: x is the column (0 = left edge),
// y is the row (0 = top edge). Board is a value, assigning it copies all cells.
type Board [Size][Size]Cell

// Empty board
func NewBoard() Board {
	return Board{}
}

func (b Board) At(x, y int) Cell {
	return b[y][x]
}

// Returns a copy of the board, with the cell at (x, y) set to 'c'
func (b Board) With(x, y int, c Cell) Board {
	b[y][x] = c
	return b
}

// Number of non-empty cells
func (b Board) Count() int {
	n := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// Number of cells owned by the player
func (b Board) CountOf(p Player) int {
	n := 0
	c := p.Cell()
	for y := range Size {
		for x := range Size {
			if b[y][x] == c {
				n++
			}
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.Count() == Size*Size
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Whether (x, y) lies on the perimeter
func IsBorder(x, y int) bool {
	return InBounds(x, y) && (x == 0 || x == Size-1 || y == 0 || y == Size-1)
}

func IsCorner(x, y int) bool {
	return (x == 0 || x == Size-1) && (y == 0 || y == Size-1)
}
