// Package agent provides the move-choosing strategies a match driver plays with.
//
// An Agent only sees a copy of the board and the id of the player it moves for,
// so it can never modify the driver's state.
package agent

import (
	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"go.uber.org/zap"
)

type Agent interface {
	Name() string
	ChooseMove(board quixo.Board, player quixo.Player) (quixo.Move, error)
}

// Authoritative game state, owned by the driver
type GameState interface {
	CurrentBoard() quixo.Board
	CurrentPlayer() quixo.Player
}

// Ask the agent for a move in the game's current position
func Decide(a Agent, state GameState) (quixo.Move, error) {
	return a.ChooseMove(state.CurrentBoard(), state.CurrentPlayer())
}

type options struct {
	logger *zap.Logger
	seed   int64
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		seed:   mcts.SeedGeneratorFn(),
	}
}

type Option func(*options)

// Log every decision at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Seed of the agent's random source, by default taken from mcts.SeedGeneratorFn
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
