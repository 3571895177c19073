package bench

/*
Arena benchmark subpackage, plays a series of Quixo games between two
agents on a pool of workers, and collects the results.
*/

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IlikeChooros/go-quixo/pkg/agent"
	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Builds a fresh agent, every worker calls it once, so agents are never shared
// between goroutines
type AgentFactory func(seed int64) agent.Agent

type VersusArena struct {
	VersusArenaStats
	ID       uuid.UUID
	Player1  AgentFactory
	Player2  AgentFactory
	NGames   int
	NWorkers int
	MaxPlies int
	Seed     int64
	aborted  atomic.Uint32
	wg       sync.WaitGroup
	done     chan struct{}
	ctx      context.Context
	logger   *zap.Logger
	started  time.Time
	mu       sync.Mutex
	outcomes []GameOutcome
	summary  VersusSummaryInfo
	p1Name   string
	p2Name   string
}

func NewVersusArena(player1, player2 AgentFactory) *VersusArena {
	return &VersusArena{
		ID:       uuid.New(),
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NWorkers: 2,
		MaxPlies: DefaultMaxPlies,
		Seed:     mcts.SeedGeneratorFn(),
		ctx:      context.Background(),
		logger:   zap.NewNop(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	if ctx != nil {
		va.ctx = ctx
	}
	return va
}

func (va *VersusArena) WithLogger(logger *zap.Logger) *VersusArena {
	if logger != nil {
		va.logger = logger
	}
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers, maxPlies int) *VersusArena {
	va.NGames = max(0, nGames)
	va.NWorkers = max(1, nWorkers)
	va.MaxPlies = maxPlies
	return va
}

func (va *VersusArena) SetSeed(seed int64) *VersusArena {
	va.Seed = seed
	return va
}

// Outcomes of the finished games, in the order they finished
func (va *VersusArena) Outcomes() []GameOutcome {
	va.mu.Lock()
	defer va.mu.Unlock()
	return append([]GameOutcome(nil), va.outcomes...)
}

// Games interrupted by the context or an agent failure
func (va *VersusArena) Aborted() int {
	return int(va.aborted.Load())
}

// Start the games in the background, see Wait. Game 'i' is played by the
// worker i % NWorkers, player 1 moves first in even games.
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = &DefaultListener{}
	}

	va.NWorkers = max(1, min(va.NWorkers, va.NGames))
	va.started = time.Now()
	va.done = make(chan struct{})
	va.p1Name = va.Player1(va.Seed).Name()
	va.p2Name = va.Player2(va.Seed).Name()
	va.outcomes = make([]GameOutcome, 0, va.NGames)

	va.logger.Info("arena started",
		zap.Stringer("run_id", va.ID),
		zap.String("player1", va.p1Name),
		zap.String("player2", va.p2Name),
		zap.Int("games", va.NGames),
		zap.Int("workers", va.NWorkers),
		zap.Int64("seed", va.Seed),
	)

	listener.OnStart()
	seeds := rand.New(rand.NewSource(va.Seed))
	for id := range va.NWorkers {
		l := listener.Clone()
		l.SetRow(id)

		// Agents are built here, so the seeds don't depend on the scheduling
		p1 := va.Player1(seeds.Int63())
		p2 := va.Player2(seeds.Int63())

		va.wg.Add(1)
		go va.worker(id, l, p1, p2)
	}

	go func() {
		va.wg.Wait()
		va.summary = va.computeSummary()
		listener.Summary(va.summary)
		listener.OnEnd()
		va.logger.Info("arena finished",
			zap.Stringer("run_id", va.ID),
			zap.Int("games", va.summary.TotalGames),
			zap.Int("player1_wins", va.summary.P1Wins),
			zap.Int("player2_wins", va.summary.P2Wins),
			zap.Int("draws", va.summary.Draws),
			zap.Int("aborted", va.summary.Aborted),
			zap.Duration("duration", va.summary.Duration),
		)
		close(va.done)
	}()
}

// Block until all games are played and the summary is computed
func (va *VersusArena) Wait() VersusSummaryInfo {
	if va.done == nil {
		return va.summary
	}
	<-va.done
	return va.summary
}

// Start and Wait
func (va *VersusArena) Run(listener ListenerLike) VersusSummaryInfo {
	va.Start(listener)
	return va.Wait()
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return va.summary
}

// Number of games played by the worker
func (va *VersusArena) gamesOf(id int) int {
	n := va.NGames / va.NWorkers
	if id < va.NGames%va.NWorkers {
		n++
	}
	return n
}

func (va *VersusArena) worker(id int, listener ListenerLike, p1, p2 agent.Agent) {
	defer va.wg.Done()

	nGames := va.gamesOf(id)
	local := VersusArenaStats{}
	finished := 0

	for gameIdx := id; gameIdx < va.NGames; gameIdx += va.NWorkers {
		if va.ctx.Err() != nil {
			break
		}

		p1First := gameIdx%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		game := NewGame(va.MaxPlies)
		info := VersusWorkerInfo{
			WorkerID:      id,
			GameID:        game.ID.String(),
			NGames:        nGames,
			FinishedGames: finished,
			P1Name:        va.p1Name,
			P2Name:        va.p2Name,
		}
		game.OnMove = func(g *Game, move quixo.Move) {
			info.Moves = g.History()
			info.GameMoveNum = g.Plies()
			info.Board = g.CurrentBoard()
			listener.OnMoveMade(info)
		}

		listener.OnGameStart(info)
		_, err := game.Play(va.ctx, first, second)
		if err != nil && !errors.Is(err, ErrIllegalAgentMove) {
			va.aborted.Add(1)
			va.logger.Warn("game aborted",
				zap.Stringer("run_id", va.ID),
				zap.Stringer("game_id", game.ID),
				zap.Int("worker", id),
				zap.Error(err),
			)
			continue
		}
		if err != nil {
			va.logger.Warn("game forfeited",
				zap.Stringer("run_id", va.ID),
				zap.Stringer("game_id", game.ID),
				zap.Error(err),
			)
		}

		outcome := computeOutcome(game, p1First)
		va.add(outcome)
		local.add(outcome)
		va.mu.Lock()
		va.outcomes = append(va.outcomes, outcome)
		va.mu.Unlock()
		finished++

		va.logger.Debug("game finished",
			zap.Stringer("run_id", va.ID),
			zap.String("game_id", outcome.GameID),
			zap.Int("worker", id),
			zap.Bool("player1_first", p1First),
			zap.Int("plies", outcome.Plies),
			zap.Stringer("result", outcome.Result),
		)

		info.FinishedGames = finished
		info.Result = outcome.Result
		info.P1Wins, info.P2Wins, info.Draws = local.P1Wins(), local.P2Wins(), local.Draws()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: finished,
		P1Wins:        local.P1Wins(),
		P2Wins:        local.P2Wins(),
		Draws:         local.Draws(),
		P1Name:        va.p1Name,
		P2Name:        va.p2Name,
	})
}
