package agent

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"go.uber.org/zap"
)

type QuixoMCTS = mcts.MCTS[quixo.Move, quixo.Board]

// Monte-Carlo tree search player. Builds a fresh tree for every decision,
// nothing is kept between moves.
type MCTS struct {
	limits      mcts.Limits
	exploration mcts.ExplorationPolicy
	listener    *mcts.StatsListener[quixo.Move]
	ctx         context.Context
	rng         *rand.Rand
	logger      *zap.Logger
}

func NewMCTS(limits *mcts.Limits, opts ...Option) *MCTS {
	o := applyOptions(opts)
	if limits == nil {
		limits = mcts.DefaultLimits()
	}
	return &MCTS{
		limits:      *limits,
		exploration: mcts.DepthExploration,
		ctx:         context.Background(),
		rng:         rand.New(rand.NewSource(o.seed)),
		logger:      o.logger.Named("mcts"),
	}
}

func (m *MCTS) Name() string {
	return "mcts"
}

func (m *MCTS) Limits() mcts.Limits {
	return m.limits
}

func (m *MCTS) SetExplorationPolicy(policy mcts.ExplorationPolicy) *MCTS {
	if policy != nil {
		m.exploration = policy
	}
	return m
}

// Listener attached to every tree this agent builds
func (m *MCTS) SetListener(listener mcts.StatsListener[quixo.Move]) *MCTS {
	m.listener = &listener
	return m
}

// Searches stop early once the context is done
func (m *MCTS) SetContext(ctx context.Context) *MCTS {
	if ctx != nil {
		m.ctx = ctx
	}
	return m
}

// Tree rooted at the board, with 'player' to act
func (m *MCTS) NewTree(board quixo.Board, player quixo.Player) *QuixoMCTS {
	limits := m.limits
	tree := mcts.NewMTCS[quixo.Move, quixo.Board](QuixoOperations{}, board, SideOf(player), &limits)
	tree.SetExplorationPolicy(m.exploration)
	tree.SetContext(m.ctx)
	if m.listener != nil {
		tree.SetListener(*m.listener)
	}
	return tree
}

func (m *MCTS) ChooseMove(board quixo.Board, player quixo.Player) (quixo.Move, error) {
	tree := m.NewTree(board, player)
	move, err := tree.Search(m.rng)
	switch {
	case errors.Is(err, mcts.ErrNoLegalMoves):
		return quixo.Move{}, fmt.Errorf("%w: %w", quixo.ErrNoLegalMoves, err)
	case err != nil:
		return quixo.Move{}, err
	}

	root := tree.Root()
	m.logger.Debug("move chosen",
		zap.Stringer("player", player),
		zap.Stringer("move", move),
		zap.Int("cycles", tree.Cycles()),
		zap.Int("size", tree.Size()),
		zap.Int("maxdepth", tree.MaxDepth()),
		zap.Int32("visits", root.Stats.Visits()),
		zap.Stringer("stop", tree.StopReason()),
	)
	return move, nil
}
