package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/IlikeChooros/go-quixo/pkg/agent"
	"github.com/IlikeChooros/go-quixo/pkg/mcts"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
)

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", mcts.SeedGeneratorFn())

	os.Exit(m.Run())
}

// Always plays an interior cube
type cheater struct{}

func (cheater) Name() string { return "cheater" }
func (cheater) ChooseMove(quixo.Board, quixo.Player) (quixo.Move, error) {
	return quixo.NewMove(2, 2, quixo.Top), nil
}

func randomFactory(seed int64) agent.Agent {
	return agent.NewRandom(agent.WithSeed(seed))
}

func cheaterFactory(int64) agent.Agent {
	return cheater{}
}

// Counts every callback, shared by all clones
type countingListener struct {
	DefaultListener
	starts, gameStarts, moves, games, works, summaries, ends *atomic.Int32
}

func newCountingListener() *countingListener {
	return &countingListener{
		starts: &atomic.Int32{}, gameStarts: &atomic.Int32{}, moves: &atomic.Int32{},
		games: &atomic.Int32{}, works: &atomic.Int32{}, summaries: &atomic.Int32{}, ends: &atomic.Int32{},
	}
}

func (c *countingListener) Clone() ListenerLike {
	clone := *c
	return &clone
}
func (c *countingListener) OnStart()                        { c.starts.Add(1) }
func (c *countingListener) OnGameStart(VersusWorkerInfo)    { c.gameStarts.Add(1) }
func (c *countingListener) OnMoveMade(VersusWorkerInfo)     { c.moves.Add(1) }
func (c *countingListener) OnFinishedGame(VersusWorkerInfo) { c.games.Add(1) }
func (c *countingListener) OnFinishedWork(VersusWorkerInfo) { c.works.Add(1) }
func (c *countingListener) Summary(VersusSummaryInfo)       { c.summaries.Add(1) }
func (c *countingListener) OnEnd()                          { c.ends.Add(1) }

func TestGamePlay(t *testing.T) {
	game := NewGame(DefaultMaxPlies)
	status, err := game.Play(context.Background(), randomFactory(1), randomFactory(2))
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if !status.Terminal || !game.Terminated() {
		t.Fatalf("Game should be terminated, status %v", status)
	}
	if game.Plies() > DefaultMaxPlies || game.Plies() != len(game.History()) {
		t.Errorf("Unexpected plies %d, history %d", game.Plies(), len(game.History()))
	}

	// replaying the history gives the same board
	board, turn := quixo.NewBoard(), quixo.PlayerA
	for i, move := range game.History() {
		board, err = quixo.Apply(board, move, turn)
		if err != nil {
			t.Fatalf("Move %d (%v) is illegal: %v", i, move, err)
		}
		turn = turn.Opponent()
	}
	if board != game.CurrentBoard() {
		t.Errorf("Replayed board %s, expected %s", board.Notation(), game.CurrentBoard().Notation())
	}
	if turn != game.CurrentPlayer() {
		t.Errorf("Expected %v to move, got %v", turn, game.CurrentPlayer())
	}
}

func TestGameMaxPlies(t *testing.T) {
	game := NewGame(1)
	status, err := game.Play(context.Background(), randomFactory(1), randomFactory(2))
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if game.Plies() != 1 || !status.Draw || status.Winner != quixo.NoPlayer {
		t.Errorf("Expected a draw after 1 ply, got %v after %d", status, game.Plies())
	}
	if err := game.MakeMove(quixo.NewMove(0, 0, quixo.Right)); !errors.Is(err, quixo.ErrInvalidMove) {
		t.Errorf("Expected ErrInvalidMove after the end, got %v", err)
	}
}

func TestGameForfeit(t *testing.T) {
	game := NewGame(DefaultMaxPlies)
	status, err := game.Play(context.Background(), randomFactory(1), cheater{})
	if !errors.Is(err, ErrIllegalAgentMove) || !errors.Is(err, quixo.ErrInvalidMove) {
		t.Fatalf("Expected ErrIllegalAgentMove, got %v", err)
	}
	if game.Forfeited() != quixo.PlayerB || status.Winner != quixo.PlayerA || !status.Terminal {
		t.Errorf("PlayerB should forfeit, got %v, forfeited %v", status, game.Forfeited())
	}
	if game.Plies() != 1 {
		t.Errorf("Only the first move should be applied, got %d plies", game.Plies())
	}
}

func TestGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	game := NewGame(DefaultMaxPlies)
	if _, err := game.Play(ctx, randomFactory(1), randomFactory(2)); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if game.Plies() != 0 {
		t.Errorf("No move should be made, got %d", game.Plies())
	}
}

func TestGameOnMove(t *testing.T) {
	game := NewGame(10)
	calls := 0
	game.OnMove = func(g *Game, move quixo.Move) {
		calls++
		if g.History()[g.Plies()-1] != move {
			t.Errorf("Move %v is not the last one in history", move)
		}
	}
	if _, err := game.Play(context.Background(), randomFactory(3), randomFactory(4)); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if calls != game.Plies() {
		t.Errorf("Expected %d calls, got %d", game.Plies(), calls)
	}
}

func TestVersusArena(t *testing.T) {
	const nGames, nWorkers = 20, 3
	listener := newCountingListener()
	arena := NewVersusArena(randomFactory, randomFactory).Setup(nGames, nWorkers, DefaultMaxPlies)
	summary := arena.Run(listener)

	if summary.TotalGames != nGames || arena.Total() != nGames {
		t.Fatalf("Expected %d games, got %d", nGames, summary.TotalGames)
	}
	if summary.P1Wins+summary.P2Wins+summary.Draws != nGames {
		t.Errorf("Wins and draws don't add up: %v", summary)
	}
	if summary.FirstToMoveWins+summary.SecondToMoveWins != summary.P1Wins+summary.P2Wins {
		t.Errorf("First/second to move wins don't add up: %v", summary)
	}
	if len(arena.Outcomes()) != nGames {
		t.Errorf("Expected %d outcomes, got %d", nGames, len(arena.Outcomes()))
	}
	if summary.MeanPlies <= 0 || summary.StdDevPlies < 0 {
		t.Errorf("Invalid plies statistics: %v", summary)
	}
	if summary.P1Score < 0 || summary.P1Score > 1 {
		t.Errorf("Invalid score %f", summary.P1Score)
	}
	if summary.RunID != arena.ID.String() || summary.Workers != nWorkers {
		t.Errorf("Unexpected run info: %v", summary)
	}

	counts := []struct {
		name     string
		got      int32
		expected int32
	}{
		{"OnStart", listener.starts.Load(), 1},
		{"OnGameStart", listener.gameStarts.Load(), nGames},
		{"OnFinishedGame", listener.games.Load(), nGames},
		{"OnFinishedWork", listener.works.Load(), nWorkers},
		{"Summary", listener.summaries.Load(), 1},
		{"OnEnd", listener.ends.Load(), 1},
	}
	for _, c := range counts {
		if c.got != c.expected {
			t.Errorf("%s called %d times, expected %d", c.name, c.got, c.expected)
		}
	}
	if listener.moves.Load() <= nGames {
		t.Errorf("Too few OnMoveMade calls: %d", listener.moves.Load())
	}
}

func TestVersusArenaDeterministic(t *testing.T) {
	run := func() VersusSummaryInfo {
		return NewVersusArena(randomFactory, randomFactory).Setup(12, 4, DefaultMaxPlies).SetSeed(7).Run(nil)
	}
	first, second := run(), run()
	if first.P1Wins != second.P1Wins || first.P2Wins != second.P2Wins || first.Draws != second.Draws {
		t.Errorf("Results differ between runs: %v vs %v", first, second)
	}
	if first.MeanPlies != second.MeanPlies {
		t.Errorf("Mean plies differ: %f vs %f", first.MeanPlies, second.MeanPlies)
	}
}

func TestVersusArenaForfeits(t *testing.T) {
	const nGames = 6
	summary := NewVersusArena(cheaterFactory, randomFactory).Setup(nGames, 2, DefaultMaxPlies).Run(nil)

	if summary.P2Wins != nGames || summary.Forfeits != nGames {
		t.Errorf("Cheater should lose every game: %v", summary)
	}
	if summary.P1Score != 0 || summary.P1ScoreStdErr != 0 {
		t.Errorf("Expected zero score, got %f ± %f", summary.P1Score, summary.P1ScoreStdErr)
	}
	// cheater moves first in even games, and loses right away
	if summary.SecondToMoveWins != nGames/2 || summary.FirstToMoveWins != nGames/2 {
		t.Errorf("Unexpected first/second to move wins: %v", summary)
	}
}

func TestVersusArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(randomFactory, randomFactory).Setup(10, 2, DefaultMaxPlies).WithContext(ctx)
	if summary := arena.Run(nil); summary.TotalGames != 0 {
		t.Errorf("No game should be played, got %d", summary.TotalGames)
	}
}

func TestTermListener(t *testing.T) {
	var buf bytes.Buffer
	NewVersusArena(randomFactory, randomFactory).Setup(4, 2, DefaultMaxPlies).Run(NewTermListener(&buf))

	out := buf.String()
	if !strings.Contains(out, "random vs random: 4 games") {
		t.Errorf("Missing summary line in:\n%s", out)
	}
	if n := strings.Count(out, "[worker "); n != 4 {
		t.Errorf("Expected 4 game lines, got %d in:\n%s", n, out)
	}
}

func TestTermListenerVerbose(t *testing.T) {
	var buf bytes.Buffer
	arena := NewVersusArena(randomFactory, randomFactory).Setup(2, 1, DefaultMaxPlies)
	arena.Run(NewTermListener(&buf).SetVerbose(true))

	plies := 0
	for _, o := range arena.Outcomes() {
		plies += o.Plies
	}
	if n := strings.Count(buf.String(), "] ply "); n != plies {
		t.Errorf("Expected %d move lines, got %d", plies, n)
	}
}

func TestComputeOutcome(t *testing.T) {
	won := NewGameFrom(quixo.MustNotation("xxxxx/5/5/5/5"), quixo.PlayerB, 0)
	drawn := NewGame(1)
	if err := drawn.MakeMove(quixo.NewMove(0, 0, quixo.Right)); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		game        *Game
		p1WentFirst bool
		expected    VersusMatchResult
	}{
		{won, true, VersusPl1Win},
		{won, false, VersusPl2Win},
		{drawn, true, VersusDraw},
		{drawn, false, VersusDraw},
	}
	for _, c := range cases {
		if got := computeOutcome(c.game, c.p1WentFirst).Result; got != c.expected {
			t.Errorf("Expected %v, got %v (p1 first: %v)", c.expected, got, c.p1WentFirst)
		}
	}
}
