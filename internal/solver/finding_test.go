package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimaq12/noguess-mines/internal/board"
)

func TestFindingDedupesAndPreservesInsertionOrder(t *testing.T) {
	f := NewFinding()
	require.True(t, f.Empty())

	a := board.Coord{X: 0, Y: 0}
	b := board.Coord{X: 1, Y: 0}
	c := board.Coord{X: 2, Y: 0}

	f.AddSafe(a)
	f.AddSafe(b)
	f.AddSafe(a) // duplicate, must not appear twice
	f.AddMine(c)

	require.False(t, f.Empty())
	require.Equal(t, []board.Coord{a, b}, f.SafeFields())
	require.Equal(t, []board.Coord{c}, f.MineFields())
}

func TestFindingMergeCombinesBothSides(t *testing.T) {
	a := board.Coord{X: 0, Y: 0}
	b := board.Coord{X: 1, Y: 0}

	f1 := NewFinding()
	f1.AddSafe(a)
	f2 := NewFinding()
	f2.AddMine(b)

	f1.Merge(f2)
	require.Equal(t, []board.Coord{a}, f1.SafeFields())
	require.Equal(t, []board.Coord{b}, f1.MineFields())
}
