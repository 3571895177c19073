package quixo

// Score of a decided game, larger than any heuristic value (12 lines * 5^2 = 300)
const WinScore = 1 << 20

// Static evaluation of a board, from the player's point of view
type EvalFunc func(b Board, p Player) int

// Sum over all 12 lines of the squared signed line count
// (+1 per player's cell, -1 per opponent's cell). Ignores decided games.
func Heuristic(b Board, p Player) int {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	score := 0
	for i := range _winningLines {
		line := 0
		for _, pt := range _winningLines[i] {
			switch b[pt.y][pt.x] {
			case mine:
				line++
			case theirs:
				line--
			}
		}
		score += line * line
	}
	return score
}

// Heuristic with decided games scored as +WinScore (win), -WinScore (loss), or 0 (draw)
func Evaluate(b Board, p Player) int {
	return evaluateStatus(b, p, TerminalState(b))
}

// Like Evaluate, with the double-line rule applied for the last mover
func EvaluateAfter(b Board, p, mover Player) int {
	return evaluateStatus(b, p, TerminalAfter(b, mover))
}

func evaluateStatus(b Board, p Player, status Status) int {
	if !status.Terminal {
		return Heuristic(b, p)
	}
	switch status.Winner {
	case p:
		return WinScore
	case NoPlayer:
		return 0
	}
	return -WinScore
}
