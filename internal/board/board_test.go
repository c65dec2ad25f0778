package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMineSpecResolve(t *testing.T) {
	cases := []struct {
		name    string
		spec    MineSpec
		w, h    int
		want    int
		wantErr bool
	}{
		{"fixed ok", FixedCount(10), 9, 9, 10, false},
		{"fixed too many", FixedCount(81), 9, 9, 0, true},
		{"fixed zero falls back to density path", MineSpec{}, 9, 9, 0, true},
		{"density ok", FractionalDensity(0.2), 10, 10, 20, false},
		{"density at boundary rejected", FractionalDensity(0.9), 10, 10, 0, true},
		{"density non-positive rejected", FractionalDensity(0), 10, 10, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.spec.Resolve(tc.w, tc.h)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNewBoardValidation(t *testing.T) {
	_, err := NewBoard(0, 5, 1)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBoard(5, 5, 25)
	require.ErrorIs(t, err, ErrInvalidMineSpec)

	b, err := NewBoard(5, 5, 5)
	require.NoError(t, err)
	require.Equal(t, 5, b.Mines)
}

func TestAllCellsRowMajorOrder(t *testing.T) {
	b, err := NewBoard(3, 2, 1)
	require.NoError(t, err)

	got := AllCells(b)
	want := []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	require.Equal(t, want, got)
}

func TestNeighborhoodClippedAndOrdered(t *testing.T) {
	b, err := NewBoard(3, 3, 1)
	require.NoError(t, err)

	got := Neighborhood(b, Coord{0, 0}, 1)
	want := []Coord{{1, 0}, {0, 1}, {1, 1}}
	require.Equal(t, want, got)

	center := Neighborhood(b, Coord{1, 1}, 1)
	require.Len(t, center, 8)
}

func TestNewRandomBoardClueCorrectnessAndMineCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		b, err := NewRandomBoard(rng, 10, 10, FixedCount(15))
		require.NoError(t, err)

		mineCount := 0
		for _, c := range AllCells(b) {
			cell := b.Cell(c)
			if cell.Kind == Mine {
				mineCount++
				continue
			}
			want := 0
			for _, n := range Neighborhood(b, c, 1) {
				if b.Cell(n).Kind == Mine {
					want++
				}
			}
			if want == 0 {
				require.Equal(t, Empty, cell.Kind, "cell %v", c)
			} else {
				require.Equal(t, Number, cell.Kind, "cell %v", c)
				require.Equal(t, want, cell.Value, "cell %v", c)
			}
		}
		require.Equal(t, 15, mineCount)
		require.NotEqual(t, Mine, b.Cell(b.Start).Kind)
	}
}

func TestChooseStartPrefersEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b, err := NewRandomBoard(rng, 6, 6, FixedCount(3))
	require.NoError(t, err)
	// 3 mines touch at most 27 of the 36 cells, so Empty cells always exist.
	require.Equal(t, Empty, b.Cell(b.Start).Kind)
}
