package quixo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySlides(t *testing.T) {
	cases := []struct {
		board    string
		move     Move
		player   Player
		expected string
	}{
		{"xo1ox/5/5/5/5", NewMove(0, 0, Right), PlayerA, "o1oxx/5/5/5/5"},
		{"5/5/2o2/5/5", NewMove(2, 0, Bottom), PlayerA, "5/2o2/5/5/2x2"},
		{"4o/5/5/5/5", NewMove(4, 4, Top), PlayerA, "4x/4o/5/5/5"},
		{"5/5/o3x/5/5", NewMove(4, 2, Left), PlayerA, "5/5/xo3/5/5"},
		{"5/5/5/5/5", NewMove(0, 2, Right), PlayerB, "5/5/4o/5/5"},
		{"x4/o4/x4/o4/x4", NewMove(0, 4, Top), PlayerA, "x4/x4/o4/x4/o4"},
	}

	for _, c := range cases {
		t.Run(c.board+" "+c.move.String(), func(t *testing.T) {
			before := MustNotation(c.board)
			after, err := Apply(before, c.move, c.player)
			require.NoError(t, err)
			require.Equal(t, c.expected, after.Notation())
			// input board stays untouched
			require.Equal(t, c.board, before.Notation())
		})
	}
}

func TestApplyRejectsIllegal(t *testing.T) {
	b := MustNotation("o4/5/5/5/5")
	for _, m := range []Move{
		NewMove(2, 2, Top),
		NewMove(0, 0, Right),
		NewMove(3, 0, Top),
		NewMove(7, 7, Left),
	} {
		after, err := Apply(b, m, PlayerA)
		require.ErrorIs(t, err, ErrInvalidMove, "%v", m)
		require.Equal(t, b, after)
	}
}

var testBoards = []string{
	EmptyNotation,
	"xo1ox/o3x/5/x3o/oxxo1",
	"xxoox/o3x/1x1o1/x3o/ooxxo",
	"x1o1x/5/2x2/5/o1x1o",
}

func TestApplyDeterministic(t *testing.T) {
	for _, notation := range testBoards {
		b := MustNotation(notation)
		for _, p := range []Player{PlayerA, PlayerB} {
			for _, m := range GenerateMoves(b, p) {
				first, err1 := Apply(b, m, p)
				second, err2 := Apply(b, m, p)
				require.NoError(t, err1)
				require.NoError(t, err2)
				require.Equal(t, first, second)
			}
		}
	}
}

func TestApplyPushesMarkerAndCount(t *testing.T) {
	for _, notation := range testBoards {
		b := MustNotation(notation)
		for _, p := range []Player{PlayerA, PlayerB} {
			for _, m := range GenerateMoves(b, p) {
				after, err := Apply(b, m, p)
				require.NoError(t, err)

				x, y := m.Destination()
				require.Equal(t, p.Cell(), after.At(x, y), "%s %v", notation, m)

				delta := after.Count() - b.Count()
				if b.At(int(m.X), int(m.Y)) == Empty {
					require.Equal(t, 1, delta, "%s %v", notation, m)
				} else {
					require.Equal(t, 0, delta, "%s %v", notation, m)
				}
				// cubes are only moved, the opponent never loses one
				require.Equal(t, b.CountOf(p)+delta, after.CountOf(p), "%s %v", notation, m)
				require.Equal(t, b.CountOf(p.Opponent()), after.CountOf(p.Opponent()), "%s %v", notation, m)

				// only the pushed line may change
				for yy := range Size {
					for xx := range Size {
						if xx != int(m.X) && yy != int(m.Y) {
							require.Equal(t, b.At(xx, yy), after.At(xx, yy))
						}
					}
				}
			}
		}
	}
}
