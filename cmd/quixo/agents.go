package main

import (
	"fmt"

	"github.com/IlikeChooros/go-quixo/internal/config"
	"github.com/IlikeChooros/go-quixo/pkg/agent"
	"github.com/IlikeChooros/go-quixo/pkg/bench"
	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/minimax"
	"go.uber.org/zap"
)

func agentFactory(kind string, cfg *config.Config, logger *zap.Logger) (bench.AgentFactory, error) {
	switch kind {
	case config.AgentMinimax:
		mmConfig := minimax.DefaultConfig().
			SetDepth(cfg.Minimax.Depth).
			SetAlphaBeta(cfg.Minimax.AlphaBeta).
			SetThreads(cfg.Minimax.Threads)
		return func(seed int64) agent.Agent {
			return agent.NewMinimax(mmConfig, agent.WithLogger(logger), agent.WithSeed(seed))
		}, nil

	case config.AgentMCTS:
		return func(seed int64) agent.Agent {
			limits := mcts.DefaultLimits().
				SetCycles(cfg.MCTS.Cycles).
				SetThreads(cfg.MCTS.Threads).
				SetRolloutPlies(cfg.MCTS.RolloutPlies)
			return agent.NewMCTS(limits, agent.WithLogger(logger), agent.WithSeed(seed))
		}, nil

	case config.AgentRandom:
		return func(seed int64) agent.Agent {
			return agent.NewRandom(agent.WithLogger(logger), agent.WithSeed(seed))
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown agent %q", config.ErrInvalidConfig, kind)
}
