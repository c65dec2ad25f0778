package permutation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimaq12/noguess-mines/internal/board"
)

func field(i int) board.Coord { return board.Coord{X: i, Y: 0} }

// buildMixedComponent assembles a 20-field component: field 0 is pinned
// to a mine by a one-field constraint, field 19 is pinned safe by a
// one-field, zero-mine constraint, and fields 1..18 form nine independent "exactly
// one of this pair" constraints that stay genuinely ambiguous. Twenty
// fields clears the parallel-enumeration threshold.
func buildMixedComponent() *Component {
	fields := make([]board.Coord, 20)
	for i := range fields {
		fields[i] = field(i)
	}

	constraints := []Constraint{
		{MineCount: 1, Fields: []board.Coord{field(0)}},
		{MineCount: 0, Fields: []board.Coord{field(19)}},
	}
	for i := 1; i <= 17; i += 2 {
		constraints = append(constraints, Constraint{
			MineCount: 1,
			Fields:    []board.Coord{field(i), field(i + 1)},
		})
	}

	return &Component{Fields: fields, Constraints: constraints}
}

func TestSequentialAndParallelAgree(t *testing.T) {
	comp := buildMixedComponent()
	require.GreaterOrEqual(t, len(comp.Fields), parallelThreshold)

	seq := solveSequential(comp)
	par := solveParallel(comp)

	require.Equal(t, seq.Solutions, par.Solutions)
	require.Equal(t, 512, seq.Solutions) // 1 (f0) * 2^9 (pairs) * 1 (f19)
	require.Equal(t, seq.Certainty, par.Certainty)

	require.Equal(t, AlwaysMine, seq.Certainty[field(0)])
	require.Equal(t, AlwaysSafe, seq.Certainty[field(19)])
	for i := 1; i <= 18; i++ {
		require.Equal(t, Unknown, seq.Certainty[field(i)], "field %d should stay ambiguous", i)
	}
}

func TestSolveDispatchesOnComponentSize(t *testing.T) {
	small := &Component{
		Fields: []board.Coord{field(0), field(1)},
		Constraints: []Constraint{
			{MineCount: 1, Fields: []board.Coord{field(0), field(1)}},
		},
	}
	result := Solve(small)
	require.Equal(t, 2, result.Solutions)
	require.Equal(t, Unknown, result.Certainty[field(0)])
	require.Equal(t, Unknown, result.Certainty[field(1)])
}

func TestSolveInfeasibleComponentReportsZeroSolutions(t *testing.T) {
	c := &Component{
		Fields: []board.Coord{field(0)},
		Constraints: []Constraint{
			{MineCount: 2, Fields: []board.Coord{field(0)}}, // impossible: one field, two mines
		},
	}
	result := Solve(c)
	require.Equal(t, 0, result.Solutions)
}
