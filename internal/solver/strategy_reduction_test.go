package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimaq12/noguess-mines/internal/board"
)

// The classic "1-2-1" corner: a row of three revealed clues reading
// 1, 2, 1 sits above a hidden row of three fields. Subtracting each
// outer clue's two-field constraint from the middle clue's three-field
// constraint pins down both outer hidden fields as mines without ever
// invoking Permutations.
func TestReductionSolvesOneTwoOneCorner(t *testing.T) {
	mines := []board.Coord{{X: 0, Y: 1}, {X: 2, Y: 1}}
	b, err := board.NewFixedBoard(3, 2, mines, board.Coord{X: 1, Y: 0})
	require.NoError(t, err)

	s := forceState(b, []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, nil)

	f := Reduction(s)
	require.ElementsMatch(t, mines, f.MineFields())
	require.Empty(t, f.SafeFields())
}

// Once both outer mines are flagged, the middle clue's reduced count
// drops to zero and Simple alone closes out the remaining hidden field.
func TestSimpleClosesOutAfterReductionFlagsBothMines(t *testing.T) {
	mines := []board.Coord{{X: 0, Y: 1}, {X: 2, Y: 1}}
	b, err := board.NewFixedBoard(3, 2, mines, board.Coord{X: 1, Y: 0})
	require.NoError(t, err)

	s := forceState(b, []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, mines)

	f := Simple(s)
	require.ElementsMatch(t, []board.Coord{{X: 1, Y: 1}}, f.SafeFields())
	require.Empty(t, f.MineFields())
}
