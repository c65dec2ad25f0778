package solver

import (
	"github.com/dimaq12/noguess-mines/internal/board"
	"github.com/dimaq12/noguess-mines/internal/solver/permutation"
)

// Permutations is the computational core: it collects the border, splits
// it into independent components, exhaustively enumerates each
// component's consistent mine assignments, and emits the fields whose
// value is identical across every one.
func Permutations(s *State) *Finding {
	f := NewFinding()

	border := borderSet(s)
	if len(border) == 0 {
		return f
	}

	for _, fields := range decomposeComponents(s, border) {
		comp := buildComponent(s, fields)
		if len(comp.Constraints) == 0 {
			continue
		}
		result := permutation.Solve(comp)
		if result.Solutions == 0 {
			continue // infeasible component: absence of information, not a contradiction
		}
		for coord, certainty := range result.Certainty {
			switch certainty {
			case permutation.AlwaysSafe:
				f.AddSafe(coord)
			case permutation.AlwaysMine:
				f.AddMine(coord)
			}
		}
	}

	return f
}

// buildComponent extracts, for every informative clue cell whose hidden
// king-neighbors intersect fields non-trivially, a Constraint listing the
// intersecting coordinates and the clue's reduced count. Clues touching no
// field in the component are ignored for it.
func buildComponent(s *State, fields []board.Coord) *permutation.Component {
	inComponent := make(map[board.Coord]struct{}, len(fields))
	for _, c := range fields {
		inComponent[c] = struct{}{}
	}

	var constraints []permutation.Constraint
	for _, clue := range board.AllCells(s.Board) {
		if !s.Informative(clue) {
			continue
		}
		var touched []board.Coord
		for _, n := range s.HiddenNeighbors(clue) {
			if _, ok := inComponent[n]; ok {
				touched = append(touched, n)
			}
		}
		if len(touched) == 0 {
			continue
		}
		constraints = append(constraints, permutation.Constraint{
			MineCount: s.ReducedCount(clue),
			Fields:    touched,
		})
	}

	return &permutation.Component{Fields: fields, Constraints: constraints}
}
