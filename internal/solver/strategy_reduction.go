package solver

import "github.com/dimaq12/noguess-mines/internal/board"

const reductionRadius = 3

// Reduction performs pairwise subset reasoning between adjacent informative
// clues. For each ordered pair (A, B) where B lies within Chebyshev radius
// 3 of A, partition B's hidden neighbors into the part shared with A and
// the part unique to B, and derive certainties from the difference in
// reduced counts. See spec.md §4.5 for the full case analysis.
func Reduction(s *State) *Finding {
	f := NewFinding()
	all := board.AllCells(s.Board)

	for _, a := range all {
		if !s.Informative(a) {
			continue
		}
		ra := s.ReducedCount(a)
		ha := hiddenSet(s, a)

		for _, b := range board.Neighborhood(s.Board, a, reductionRadius) {
			if !s.Informative(b) {
				continue
			}
			rb := s.ReducedCount(b)
			hb := hiddenSet(s, b)

			shared, bOnly := partition(hb, ha)

			// Subset case: A's hidden set is entirely contained in B's.
			if len(shared) == len(ha) {
				switch {
				case ra == rb:
					for c := range bOnly {
						f.AddSafe(c)
					}
				case rb-ra == len(bOnly):
					for c := range bOnly {
						f.AddMine(c)
					}
				}
				continue
			}

			// Excess case: A's clue requires strictly more mines than B's.
			if ra > rb {
				aOnly := subtract(ha, shared)
				if ra-rb == len(aOnly) {
					for c := range aOnly {
						f.AddMine(c)
					}
				}
			}
		}
	}

	return f
}

func hiddenSet(s *State, c board.Coord) map[board.Coord]struct{} {
	out := make(map[board.Coord]struct{})
	for _, n := range s.HiddenNeighbors(c) {
		out[n] = struct{}{}
	}
	return out
}

// partition splits set against reference, returning (set ∩ reference,
// set \ reference).
func partition(set, reference map[board.Coord]struct{}) (shared, onlySet map[board.Coord]struct{}) {
	shared = make(map[board.Coord]struct{})
	onlySet = make(map[board.Coord]struct{})
	for c := range set {
		if _, ok := reference[c]; ok {
			shared[c] = struct{}{}
		} else {
			onlySet[c] = struct{}{}
		}
	}
	return shared, onlySet
}

func subtract(set, remove map[board.Coord]struct{}) map[board.Coord]struct{} {
	out := make(map[board.Coord]struct{})
	for c := range set {
		if _, ok := remove[c]; !ok {
			out[c] = struct{}{}
		}
	}
	return out
}
