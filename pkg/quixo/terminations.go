package quixo

type point struct{ x, y int8 }

const nLines = 2*Size + 2

// Rows top to bottom, columns left to right, main diagonal, anti-diagonal
var _winningLines [nLines][Size]point = func() (lines [nLines][Size]point) {
	for i := range Size {
		for j := range Size {
			lines[i][j] = point{int8(j), int8(i)}
			lines[Size+i][j] = point{int8(i), int8(j)}
		}
		lines[2*Size][i] = point{int8(i), int8(i)}
		lines[2*Size+1][i] = point{int8(Size - 1 - i), int8(i)}
	}
	return lines
}()

// Result of the terminal check
type Status struct {
	Terminal bool
	Winner   Player
	Draw     bool
}

var statusOngoing = Status{Winner: NoPlayer}

func (s Status) String() string {
	switch {
	case !s.Terminal:
		return "ongoing"
	case s.Draw:
		return "draw"
	}
	return "won by " + s.Winner.String()
}

// Owner of the line, if it's uniform, NoPlayer otherwise
func lineOwner(b *Board, line *[Size]point) Player {
	first := b[line[0].y][line[0].x]
	if first == Empty {
		return NoPlayer
	}
	for _, pt := range line[1:] {
		if b[pt.y][pt.x] != first {
			return NoPlayer
		}
	}
	return first.Player()
}

// Returns which players own a full line
func completedLines(b *Board) (first Player, both bool) {
	first = NoPlayer
	for i := range _winningLines {
		owner := lineOwner(b, &_winningLines[i])
		if owner == NoPlayer {
			continue
		}
		if first == NoPlayer {
			first = owner
		} else if owner != first {
			return first, true
		}
	}
	return first, false
}

func drawOrOngoing(b *Board) Status {
	if b.Full() {
		return Status{Terminal: true, Draw: true, Winner: NoPlayer}
	}
	return statusOngoing
}

// Check the board for a finished game. If both players own a full line,
// the first line in canonical order (rows, columns, diagonals) decides,
// use TerminalAfter when the last mover is known.
func TerminalState(b Board) Status {
	if winner, _ := completedLines(&b); winner != NoPlayer {
		return Status{Terminal: true, Winner: winner}
	}
	return drawOrOngoing(&b)
}

// Same as TerminalState, but a move completing lines for both players
// loses for the mover
func TerminalAfter(b Board, mover Player) Status {
	winner, both := completedLines(&b)
	if both {
		return Status{Terminal: true, Winner: mover.Opponent()}
	}
	if winner != NoPlayer {
		return Status{Terminal: true, Winner: winner}
	}
	return drawOrOngoing(&b)
}
