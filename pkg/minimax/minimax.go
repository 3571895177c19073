// Package minimax implements fixed-depth adversarial search for Quixo.
//
// The search is exhaustive: every move of the side to act is tried at every ply,
// moves are visited in generation order, and at the root the first move whose
// value strictly exceeds the best so far is kept. Alpha-beta pruning and root
// parallelism are optional and never change the chosen move.
package minimax

import (
	"math"
	"sync"

	"github.com/IlikeChooros/go-quixo/pkg/quixo"
)

var ErrNoLegalMoves = quixo.ErrNoLegalMoves

const (
	DefaultDepth = 3

	inf = math.MaxInt
)

type Config struct {
	// Plies searched, the root move included
	Depth int
	// Leaf evaluation, from the maximizing player's point of view
	Evaluator quixo.EvalFunc
	// Prune branches that cannot change the result
	AlphaBeta bool
	// Number of goroutines evaluating the root moves
	Threads int
	// Score decided games with Evaluator like any other leaf, instead of
	// the depth adjusted win/loss scores
	StaticTerminals bool
}

func DefaultConfig() Config {
	return Config{
		Depth:     DefaultDepth,
		Evaluator: quixo.Evaluate,
		Threads:   1,
	}
}

func (c Config) SetDepth(depth int) Config {
	c.Depth = max(1, depth)
	return c
}

func (c Config) SetAlphaBeta(enabled bool) Config {
	c.AlphaBeta = enabled
	return c
}

func (c Config) SetThreads(threads int) Config {
	c.Threads = max(1, threads)
	return c
}

func (c Config) SetStaticTerminals(enabled bool) Config {
	c.StaticTerminals = enabled
	return c
}

func (c Config) SetEvaluator(eval quixo.EvalFunc) Config {
	if eval != nil {
		c.Evaluator = eval
	}
	return c
}

type Result struct {
	Move  quixo.Move
	Score int
	// Number of positions visited
	Nodes int
}

type Searcher struct {
	config Config
}

func NewSearcher(config Config) *Searcher {
	config.Depth = max(1, config.Depth)
	config.Threads = max(1, config.Threads)
	if config.Evaluator == nil {
		config.Evaluator = quixo.Evaluate
	}
	return &Searcher{config: config}
}

func (s *Searcher) Config() Config {
	return s.config
}

// Best move for the player, see Search
func (s *Searcher) Decide(board quixo.Board, player quixo.Player) (quixo.Move, error) {
	result, err := s.Search(board, player)
	return result.Move, err
}

// Search the position to the configured depth, for the player to act
func (s *Searcher) Search(board quixo.Board, player quixo.Player) (Result, error) {
	moves := quixo.GenerateMoves(board, player)
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	if s.config.Threads > 1 {
		return s.searchParallel(board, player, moves), nil
	}

	w := worker{config: &s.config, player: player}
	best := Result{Move: moves[0], Score: -inf}
	for _, move := range moves {
		// alpha = best so far, a move equal to it cannot replace it anyway
		alpha := -inf
		if s.config.AlphaBeta {
			alpha = best.Score
		}
		if score, ok := w.root(board, move, alpha); ok && score > best.Score {
			best.Move, best.Score = move, score
		}
	}
	best.Nodes = w.nodes
	return best, nil
}

// Evaluates the root moves on a pool of goroutines, then picks the best
// one in generation order
func (s *Searcher) searchParallel(board quixo.Board, player quixo.Player, moves []quixo.Move) Result {
	scores := make([]int, len(moves))
	nodes := make([]int, s.config.Threads)
	jobs := make(chan int)
	var wg sync.WaitGroup

	for id := range s.config.Threads {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w := worker{config: &s.config, player: player}
			for i := range jobs {
				scores[i], _ = w.root(board, moves[i], -inf)
			}
			nodes[id] = w.nodes
		}(id)
	}
	for i := range moves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	best := Result{Move: moves[0], Score: -inf}
	for i, score := range scores {
		if score > best.Score {
			best.Move, best.Score = moves[i], score
		}
	}
	for _, n := range nodes {
		best.Nodes += n
	}
	return best
}

// Search state of a single goroutine
type worker struct {
	config *Config
	player quixo.Player
	nodes  int
}

// Value of playing 'move' at the root. With alpha-beta, values not above
// 'alpha' are only bounds, reported with ok == false.
func (w *worker) root(board quixo.Board, move quixo.Move, alpha int) (int, bool) {
	next, err := quixo.Apply(board, move, w.player)
	if err != nil {
		return -inf, false
	}
	score := w.minimax(next, w.config.Depth-1, false, w.player, alpha, inf)
	return score, !w.config.AlphaBeta || score > alpha
}

// Value of the board, 'maximizing' is set when the searching player is to act,
// 'mover' made the move leading to this board
func (w *worker) minimax(board quixo.Board, depth int, maximizing bool, mover quixo.Player, alpha, beta int) int {
	w.nodes++

	if status := quixo.TerminalAfter(board, mover); status.Terminal {
		if w.config.StaticTerminals {
			return w.config.Evaluator(board, w.player)
		}
		return terminalScore(status, w.player, depth)
	}
	if depth <= 0 {
		return w.config.Evaluator(board, w.player)
	}

	turn := w.player
	if !maximizing {
		turn = w.player.Opponent()
	}

	moves := quixo.GenerateMoves(board, turn)
	if len(moves) == 0 {
		return w.config.Evaluator(board, w.player)
	}

	if maximizing {
		best := -inf
		for _, move := range moves {
			next, _ := quixo.Apply(board, move, turn)
			best = max(best, w.minimax(next, depth-1, false, turn, alpha, beta))
			if w.config.AlphaBeta {
				alpha = max(alpha, best)
				if alpha >= beta {
					break
				}
			}
		}
		return best
	}

	best := inf
	for _, move := range moves {
		next, _ := quixo.Apply(board, move, turn)
		best = min(best, w.minimax(next, depth-1, true, turn, alpha, beta))
		if w.config.AlphaBeta {
			beta = min(beta, best)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

// Decided games: a win found with more depth left is a quicker win
func terminalScore(status quixo.Status, player quixo.Player, depth int) int {
	switch status.Winner {
	case player:
		return quixo.WinScore + depth
	case quixo.NoPlayer:
		return 0
	}
	return -quixo.WinScore - depth
}
