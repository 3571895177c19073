package quixo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotation(t *testing.T) {
	for _, notation := range append(testBoards, "xxoox/ooxxo/xxoox/ooxxo/xxoox", "4o/5/5/5/x4") {
		b, err := FromNotation(notation)
		require.NoError(t, err)
		require.Equal(t, notation, b.Notation())
	}

	b := MustNotation("x3o/5/5/5/5")
	require.Equal(t, CellA, b.At(0, 0))
	require.Equal(t, CellB, b.At(4, 0))
	require.Equal(t, "x . . . o\n", b.String()[:10])
}

func TestNotationMalformed(t *testing.T) {
	for _, notation := range []string{
		"",
		"5/5/5/5",
		"5/5/5/5/5/5",
		"6/5/5/5/5",
		"4/5/5/5/5",
		"xxxxxx/5/5/5/5",
		"41x/5/5/5/5",
		"z4/5/5/5/5",
	} {
		_, err := FromNotation(notation)
		require.ErrorIs(t, err, ErrMalformedBoard, notation)
	}
}
