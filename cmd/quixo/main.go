package main

/*
Quixo arena

Plays a series of games between two agents (minimax, mcts, random),
and prints the results. With --show, plays a single game and prints
every board.

	quixo --p1 minimax --p2 mcts --games 100 --workers 4 --mcts-cycles 2000
*/

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/IlikeChooros/go-quixo/internal/config"
	"github.com/IlikeChooros/go-quixo/internal/logging"
	"github.com/IlikeChooros/go-quixo/internal/render"
	"github.com/IlikeChooros/go-quixo/pkg/bench"
	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse("quixo", args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Seed == 0 {
		cfg.Seed = mcts.SeedGeneratorFn()
	}
	logger.Debug("configuration", zap.Any("config", cfg))

	p1, err := agentFactory(cfg.P1, cfg, logger)
	if err != nil {
		return err
	}
	p2, err := agentFactory(cfg.P2, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Show {
		return show(ctx, cfg, p1, p2, logger)
	}

	summary := bench.NewVersusArena(p1, p2).
		Setup(cfg.Games, cfg.Workers, cfg.MaxPlies).
		SetSeed(cfg.Seed).
		WithContext(ctx).
		WithLogger(logger).
		Run(bench.NewTermListener(os.Stdout).SetVerbose(cfg.Verbose))

	fmt.Print(summary)
	return ctx.Err()
}

// Single game, player 1 moves first
func show(ctx context.Context, cfg *config.Config, p1, p2 bench.AgentFactory, logger *zap.Logger) error {
	r := render.New(os.Stdout)
	game := bench.NewGame(cfg.MaxPlies)
	game.OnMove = func(g *bench.Game, move quixo.Move) {
		r.Println(r.Move(g.Plies(), g.CurrentPlayer().Opponent(), move))
		r.Println(r.Board(g.CurrentBoard(), &move))
	}

	a, b := p1(cfg.Seed), p2(cfg.Seed+1)
	r.Println(fmt.Sprintf("%s (x) vs %s (o)", a.Name(), b.Name()))
	r.Println(r.Board(game.CurrentBoard(), nil))

	status, err := game.Play(ctx, a, b)
	if err != nil && !errors.Is(err, bench.ErrIllegalAgentMove) {
		return err
	}
	if err != nil {
		logger.Warn("game forfeited", zap.Error(err))
	}

	logger.Info("game finished",
		zap.Stringer("game_id", game.ID),
		zap.Int("plies", game.Plies()),
		zap.Stringer("status", status),
	)
	r.Println(r.Status(status))
	return nil
}
