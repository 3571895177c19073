package agent

import (
	"math/rand"

	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"go.uber.org/zap"
)

// Plays a uniformly random legal move
type Random struct {
	rng    *rand.Rand
	logger *zap.Logger
}

func NewRandom(opts ...Option) *Random {
	o := applyOptions(opts)
	return &Random{
		rng:    rand.New(rand.NewSource(o.seed)),
		logger: o.logger.Named("random"),
	}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) ChooseMove(board quixo.Board, player quixo.Player) (quixo.Move, error) {
	moves := quixo.GenerateMoves(board, player)
	if len(moves) == 0 {
		return quixo.Move{}, quixo.ErrNoLegalMoves
	}
	move := moves[r.rng.Intn(len(moves))]
	r.logger.Debug("move chosen",
		zap.Stringer("player", player),
		zap.Stringer("move", move),
		zap.Int("choices", len(moves)),
	)
	return move, nil
}
