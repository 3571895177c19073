package quixo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalAllLines(t *testing.T) {
	require.Len(t, _winningLines, 12)

	for i := range _winningLines {
		for _, p := range []Player{PlayerA, PlayerB} {
			b := NewBoard()
			for _, pt := range _winningLines[i] {
				b = b.With(int(pt.x), int(pt.y), p.Cell())
			}

			status := TerminalState(b)
			require.True(t, status.Terminal, "line %d %s", i, b.Notation())
			require.False(t, status.Draw)
			require.Equal(t, p, status.Winner)
		}
	}
}

func TestTerminalTopRow(t *testing.T) {
	status := TerminalState(MustNotation("xxxxx/5/5/5/5"))
	require.Equal(t, Status{Terminal: true, Winner: PlayerA}, status)
}

func TestTerminalOngoing(t *testing.T) {
	for _, notation := range []string{EmptyNotation, "xxxxo/5/5/5/5", "x4/x4/x4/x4/o4", "xo1ox/o3x/5/x3o/oxxo1"} {
		status := TerminalState(MustNotation(notation))
		require.False(t, status.Terminal, notation)
		require.Equal(t, NoPlayer, status.Winner)
	}
}

func TestTerminalDraw(t *testing.T) {
	b := MustNotation("xxoox/ooxxo/xxoox/ooxxo/xxoox")
	require.True(t, b.Full())

	status := TerminalState(b)
	require.True(t, status.Terminal)
	require.True(t, status.Draw)
	require.Equal(t, NoPlayer, status.Winner)
	require.Equal(t, "draw", status.String())
}

func TestTerminalDoubleLine(t *testing.T) {
	b := MustNotation("xxxxx/5/5/5/ooooo")

	require.Equal(t, PlayerA, TerminalState(b).Winner)
	require.Equal(t, PlayerB, TerminalAfter(b, PlayerA).Winner)
	require.Equal(t, PlayerA, TerminalAfter(b, PlayerB).Winner)

	// a single line is not affected by the mover
	single := MustNotation("o4/o4/o4/o4/o4")
	require.Equal(t, PlayerB, TerminalAfter(single, PlayerA).Winner)
	require.Equal(t, PlayerB, TerminalAfter(single, PlayerB).Winner)
}
