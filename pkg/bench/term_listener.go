package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Prints one line per finished game and the summary, colors are used
// only when the writer is a terminal
type TermListener struct {
	DefaultListener
	out  *termenv.Output
	mu   *sync.Mutex
	verb bool
}

func NewTermListener(w io.Writer) *TermListener {
	return &TermListener{
		out: termenv.NewOutput(w),
		mu:  &sync.Mutex{},
	}
}

// Also print every move
func (l *TermListener) SetVerbose(verbose bool) *TermListener {
	l.verb = verbose
	return l
}

func (l *TermListener) Clone() ListenerLike {
	return &TermListener{
		DefaultListener: DefaultListener{row: l.row},
		out:             l.out,
		mu:              l.mu,
		verb:            l.verb,
	}
}

func (l *TermListener) println(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, s)
}

func (l *TermListener) resultStyle(result VersusMatchResult) termenv.Style {
	style := l.out.String(result.String())
	switch result {
	case VersusPl1Win:
		return style.Foreground(l.out.Color("2")).Bold()
	case VersusPl2Win:
		return style.Foreground(l.out.Color("1")).Bold()
	}
	return style.Foreground(l.out.Color("3"))
}

func (l *TermListener) OnMoveMade(info VersusWorkerInfo) {
	if !l.verb || len(info.Moves) == 0 {
		return
	}
	l.println(fmt.Sprintf("[worker %d] ply %d: %v", l.row, info.GameMoveNum, info.Moves[len(info.Moves)-1]))
}

func (l *TermListener) OnFinishedGame(info VersusWorkerInfo) {
	label := l.out.String(fmt.Sprintf("[worker %d]", l.row)).Faint()
	l.println(fmt.Sprintf("%s game %d/%d in %d plies: %s | %s %d, %s %d, draws %d",
		label, info.FinishedGames, info.NGames, info.GameMoveNum,
		l.resultStyle(info.Result),
		info.P1Name, info.P1Wins, info.P2Name, info.P2Wins, info.Draws,
	))
}

func (l *TermListener) Summary(summary VersusSummaryInfo) {
	header := l.out.String(fmt.Sprintf("%s vs %s", summary.P1Name, summary.P2Name)).Bold().Underline()
	l.println(fmt.Sprintf("%s: %d games, %s %s, %s %s, draws %d, score %.3f ± %.3f, plies %.1f ± %.1f",
		header, summary.TotalGames,
		summary.P1Name, l.resultStyle(VersusPl1Win).Styled(fmt.Sprint(summary.P1Wins)),
		summary.P2Name, l.resultStyle(VersusPl2Win).Styled(fmt.Sprint(summary.P2Wins)),
		summary.Draws, summary.P1Score, summary.P1ScoreStdErr,
		summary.MeanPlies, summary.StdDevPlies,
	))
}
