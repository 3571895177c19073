package agent

import (
	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
)

// Quixo rules for the generic tree search, sides map 1:1 to player ids
type QuixoOperations struct{}

var _ mcts.GameOperations[quixo.Move, quixo.Board] = QuixoOperations{}

func SideOf(p quixo.Player) mcts.Side {
	return mcts.Side(p)
}

func PlayerOf(s mcts.Side) quixo.Player {
	if s == mcts.NoSide {
		return quixo.NoPlayer
	}
	return quixo.Player(s)
}

func (QuixoOperations) GenerateMoves(board quixo.Board, turn mcts.Side) []quixo.Move {
	return quixo.GenerateMoves(board, PlayerOf(turn))
}

func (QuixoOperations) MakeMove(board quixo.Board, move quixo.Move, turn mcts.Side) (quixo.Board, error) {
	return quixo.Apply(board, move, PlayerOf(turn))
}

func (QuixoOperations) Terminal(board quixo.Board, mover mcts.Side) (bool, mcts.Side) {
	status := quixo.TerminalAfter(board, PlayerOf(mover))
	return status.Terminal, SideOf(status.Winner)
}

func (QuixoOperations) Next(turn mcts.Side) mcts.Side {
	return SideOf(PlayerOf(turn).Opponent())
}
