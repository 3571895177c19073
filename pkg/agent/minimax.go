package agent

import (
	"github.com/IlikeChooros/go-quixo/pkg/minimax"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"go.uber.org/zap"
)

// Fixed-depth minimax player
type Minimax struct {
	searcher *minimax.Searcher
	logger   *zap.Logger
}

func NewMinimax(config minimax.Config, opts ...Option) *Minimax {
	o := applyOptions(opts)
	return &Minimax{
		searcher: minimax.NewSearcher(config),
		logger:   o.logger.Named("minimax"),
	}
}

func (m *Minimax) Name() string {
	return "minimax"
}

func (m *Minimax) Config() minimax.Config {
	return m.searcher.Config()
}

func (m *Minimax) ChooseMove(board quixo.Board, player quixo.Player) (quixo.Move, error) {
	result, err := m.searcher.Search(board, player)
	if err != nil {
		return quixo.Move{}, err
	}
	m.logger.Debug("move chosen",
		zap.Stringer("player", player),
		zap.Stringer("move", result.Move),
		zap.Int("score", result.Score),
		zap.Int("nodes", result.Nodes),
	)
	return result.Move, nil
}
