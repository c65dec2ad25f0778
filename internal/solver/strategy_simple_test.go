package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimaq12/noguess-mines/internal/board"
)

func TestSimpleDeterminesMineWhenReducedCountMatchesHiddenCount(t *testing.T) {
	b, err := board.NewFixedBoard(3, 3, []board.Coord{{X: 0, Y: 0}}, board.Coord{X: 1, Y: 1})
	require.NoError(t, err)

	revealed := []board.Coord{
		{X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	s := forceState(b, revealed, nil)

	f := Simple(s)
	require.ElementsMatch(t, []board.Coord{{X: 0, Y: 0}}, f.MineFields())
	require.Empty(t, f.SafeFields())
}

func TestSimpleDeterminesSafeWhenReducedCountIsZero(t *testing.T) {
	mines := []board.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}
	b, err := board.NewFixedBoard(3, 3, mines, board.Coord{X: 1, Y: 0})
	require.NoError(t, err)

	s := forceState(b, []board.Coord{{X: 1, Y: 1}}, mines)

	f := Simple(s)
	require.Empty(t, f.MineFields())
	require.ElementsMatch(t, []board.Coord{
		{X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
	}, f.SafeFields())
}

func TestSimpleFindsNothingWhenAmbiguous(t *testing.T) {
	mines := []board.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}}
	b, err := board.NewFixedBoard(3, 3, mines, board.Coord{X: 1, Y: 0})
	require.NoError(t, err)

	s := forceState(b, []board.Coord{{X: 1, Y: 1}}, nil)

	f := Simple(s)
	require.True(t, f.Empty())
}
