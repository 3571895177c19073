package bench

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

func (va *VersusArena) computeSummary() VersusSummaryInfo {
	outcomes := va.Outcomes()
	summary := VersusSummaryInfo{
		RunID:            va.ID.String(),
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Forfeits:         va.Forfeits(),
		Aborted:          va.Aborted(),
		Workers:          va.NWorkers,
		P1Name:           va.p1Name,
		P2Name:           va.p2Name,
		Duration:         time.Since(va.started),
	}

	plies := make([]float64, len(outcomes))
	scores := make([]float64, len(outcomes))
	for i, o := range outcomes {
		plies[i] = float64(o.Plies)
		scores[i] = o.Result.score()
	}

	summary.MeanPlies, summary.StdDevPlies = meanStdDev(plies)
	var scoreStdDev float64
	summary.P1Score, scoreStdDev = meanStdDev(scores)
	if len(scores) > 0 {
		summary.P1ScoreStdErr = stat.StdErr(scoreStdDev, float64(len(scores)))
	}
	return summary
}

// Player 1's points for the game: 1 win, 0.5 draw, 0 loss
func (r VersusMatchResult) score() float64 {
	return (float64(r) + 1) / 2
}

// Sample mean and standard deviation, zero for undefined values,
// so the summary can always be encoded as JSON
func meanStdDev(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	mean, std = stat.MeanStdDev(x, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}
