package quixo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeuristic(t *testing.T) {
	require.Equal(t, 0, Heuristic(NewBoard(), PlayerA))

	one := MustNotation("x4/5/5/5/5")
	// row, column and main diagonal
	require.Equal(t, 3, Heuristic(one, PlayerA))
	require.Equal(t, 3, Heuristic(one, PlayerB))

	// row 25, five columns 1 each, both diagonals 1
	row := MustNotation("xxxxx/5/5/5/5")
	require.Equal(t, 32, Heuristic(row, PlayerA))
	require.Equal(t, 32, Heuristic(row, PlayerB))

	// opposite cubes cancel out on the shared row
	mixed := MustNotation("xo3/5/5/5/5")
	require.Equal(t, 0+1+1+1, Heuristic(mixed, PlayerA))
}

func TestEvaluateTerminalOverride(t *testing.T) {
	row := MustNotation("xxxxx/5/5/5/5")
	require.Equal(t, WinScore, Evaluate(row, PlayerA))
	require.Equal(t, -WinScore, Evaluate(row, PlayerB))

	draw := MustNotation("xxoox/ooxxo/xxoox/ooxxo/xxoox")
	require.Equal(t, 0, Evaluate(draw, PlayerA))

	ongoing := MustNotation("xo1ox/o3x/5/x3o/oxxo1")
	require.Equal(t, Heuristic(ongoing, PlayerB), Evaluate(ongoing, PlayerB))

	double := MustNotation("xxxxx/5/5/5/ooooo")
	require.Equal(t, -WinScore, EvaluateAfter(double, PlayerA, PlayerA))
	require.Greater(t, WinScore, 12*Size*Size)
}
