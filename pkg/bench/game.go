package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-quixo/pkg/agent"
	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"github.com/google/uuid"
)

var ErrIllegalAgentMove = errors.New("bench: agent returned an illegal move")

// Games longer than this are scored as a draw
const DefaultMaxPlies = 200

// Match driver, owns the authoritative board and alternates the turns
type Game struct {
	ID uuid.UUID
	// Called after every applied move
	OnMove   func(g *Game, move quixo.Move)
	board    quixo.Board
	turn     quixo.Player
	history  []quixo.Move
	maxPlies int
	status   quixo.Status
	forfeit  quixo.Player
}

var _ agent.GameState = (*Game)(nil)

// New game on the empty board, PlayerA to move. 'maxPlies' <= 0 means no limit.
func NewGame(maxPlies int) *Game {
	return NewGameFrom(quixo.NewBoard(), quixo.PlayerA, maxPlies)
}

func NewGameFrom(board quixo.Board, turn quixo.Player, maxPlies int) *Game {
	return &Game{
		ID:       uuid.New(),
		board:    board,
		turn:     turn,
		history:  make([]quixo.Move, 0, 64),
		maxPlies: maxPlies,
		status:   quixo.TerminalAfter(board, turn.Opponent()),
		forfeit:  quixo.NoPlayer,
	}
}

func (g *Game) CurrentBoard() quixo.Board {
	return g.board
}

func (g *Game) CurrentPlayer() quixo.Player {
	return g.turn
}

func (g *Game) Plies() int {
	return len(g.history)
}

func (g *Game) History() []quixo.Move {
	return g.history
}

func (g *Game) Status() quixo.Status {
	return g.status
}

func (g *Game) Terminated() bool {
	return g.status.Terminal
}

// Player that lost by making an illegal move, NoPlayer otherwise
func (g *Game) Forfeited() quixo.Player {
	return g.forfeit
}

// Apply the move for the current player and pass the turn
func (g *Game) MakeMove(move quixo.Move) error {
	if g.status.Terminal {
		return fmt.Errorf("%w: game is already over", quixo.ErrInvalidMove)
	}

	next, err := quixo.Apply(g.board, move, g.turn)
	if err != nil {
		return err
	}

	mover := g.turn
	g.board = next
	g.turn = mover.Opponent()
	g.history = append(g.history, move)
	g.status = quixo.TerminalAfter(next, mover)
	if !g.status.Terminal && g.maxPlies > 0 && len(g.history) >= g.maxPlies {
		g.status = quixo.Status{Terminal: true, Winner: quixo.NoPlayer, Draw: true}
	}

	if g.OnMove != nil {
		g.OnMove(g, move)
	}
	return nil
}

// Play the game to the end, 'a' moves for PlayerA, 'b' for PlayerB.
// An illegal move loses the game for the agent that made it, Play then
// returns an error wrapping ErrIllegalAgentMove with the final status set.
func (g *Game) Play(ctx context.Context, a, b agent.Agent) (quixo.Status, error) {
	for !g.status.Terminal {
		if err := ctx.Err(); err != nil {
			return g.status, err
		}

		current := a
		if g.turn == quixo.PlayerB {
			current = b
		}

		move, err := agent.Decide(current, g)
		if err != nil {
			return g.status, fmt.Errorf("bench: %s (%s): %w", current.Name(), g.turn, err)
		}

		if err := g.MakeMove(move); err != nil {
			g.forfeit = g.turn
			g.status = quixo.Status{Terminal: true, Winner: g.turn.Opponent()}
			return g.status, fmt.Errorf("%w: %s (%s) played %v: %w", ErrIllegalAgentMove, current.Name(), g.forfeit, move, err)
		}
	}
	return g.status, nil
}
