package bench

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"github.com/IlikeChooros/go-quixo/pkg/quixo"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	forfeits         uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

// Games decided by an illegal move, already counted as wins
func (vas *VersusArenaStats) Forfeits() int {
	return int(atomic.LoadUint32(&vas.forfeits))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) add(outcome GameOutcome) {
	switch outcome.Result {
	case VersusDraw:
		atomic.AddUint32(&vas.draws, 1)
		return
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	}

	if outcome.Forfeit {
		atomic.AddUint32(&vas.forfeits, 1)
	}
	if outcome.FirstPlayerWon {
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	GameID        string
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []quixo.Move
	Board         quixo.Board
	Result        VersusMatchResult
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	RunID            string        `json:"run_id"`
	TotalGames       int           `json:"total_games"`
	P1Wins           int           `json:"player1_wins"`
	P2Wins           int           `json:"player2_wins"`
	FirstToMoveWins  int           `json:"first_to_move_wins"`
	SecondToMoveWins int           `json:"second_to_move_wins"`
	Draws            int           `json:"draws"`
	Forfeits         int           `json:"forfeits"`
	Aborted          int           `json:"aborted"`
	Workers          int           `json:"workers"`
	P1Name           string        `json:"player1_name"`
	P2Name           string        `json:"player2_name"`
	P1Score          float64       `json:"player1_score"`
	P1ScoreStdErr    float64       `json:"player1_score_stderr"`
	MeanPlies        float64       `json:"mean_plies"`
	StdDevPlies      float64       `json:"stddev_plies"`
	Duration         time.Duration `json:"duration_ns"`
}

func (s VersusSummaryInfo) String() string {
	builder := strings.Builder{}
	encoder := json.NewEncoder(&builder)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(s)
	return builder.String()
}

// Result of a single finished game
type GameOutcome struct {
	GameID         string
	Plies          int
	Result         VersusMatchResult
	FirstPlayerWon bool
	IsDraw         bool
	Forfeit        bool
}

// Maps the game status to which agent won, given the player assignments
func computeOutcome(game *Game, p1WentFirst bool) GameOutcome {
	status := game.Status()
	if !status.Terminal {
		panic("computeOutcome: game not terminated")
	}

	outcome := GameOutcome{
		GameID:  game.ID.String(),
		Plies:   game.Plies(),
		Forfeit: game.Forfeited() != quixo.NoPlayer,
		Result:  VersusDraw,
	}
	if status.Winner == quixo.NoPlayer {
		outcome.IsDraw = true
		return outcome
	}

	outcome.FirstPlayerWon = status.Winner == quixo.PlayerA
	if p1WentFirst == outcome.FirstPlayerWon {
		outcome.Result = VersusPl1Win
	} else {
		outcome.Result = VersusPl2Win
	}
	return outcome
}
