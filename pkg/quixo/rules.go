package quixo

// Apply the move for the player, returns a new board, 'b' is left untouched.
// The cube at the origin is taken, the cells between the origin and the chosen
// edge shift one step towards the vacated origin, and the player's marker is
// pushed in at the edge. Illegal moves are rejected with ErrInvalidMove.
func Apply(b Board, m Move, p Player) (Board, error) {
	if err := IsLegal(b, m, p); err != nil {
		return b, err
	}

	x, y := int(m.X), int(m.Y)
	c := p.Cell()

	switch m.Dir {
	case Top:
		for i := y; i > 0; i-- {
			b[i][x] = b[i-1][x]
		}
		b[0][x] = c
	case Bottom:
		for i := y; i < Size-1; i++ {
			b[i][x] = b[i+1][x]
		}
		b[Size-1][x] = c
	case Left:
		for i := x; i > 0; i-- {
			b[y][i] = b[y][i-1]
		}
		b[y][0] = c
	case Right:
		for i := x; i < Size-1; i++ {
			b[y][i] = b[y][i+1]
		}
		b[y][Size-1] = c
	}
	return b, nil
}

// Cell the pushed cube ends up on
func (m Move) Destination() (x, y int) {
	x, y = int(m.X), int(m.Y)
	switch m.Dir {
	case Top:
		y = 0
	case Bottom:
		y = Size - 1
	case Left:
		x = 0
	case Right:
		x = Size - 1
	}
	return x, y
}
