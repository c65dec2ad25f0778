package solver

import "github.com/dimaq12/noguess-mines/internal/board"

// Simple is the single-cell mine-count strategy: for each informative
// cell, the fully-determined cases are when the reduced count is zero
// (every hidden neighbor is safe) or equals the hidden-neighbor count
// (every hidden neighbor is a mine).
func Simple(s *State) *Finding {
	f := NewFinding()

	for _, c := range board.AllCells(s.Board) {
		if !s.Informative(c) {
			continue
		}
		r := s.ReducedCount(c)
		hidden := s.HiddenNeighbors(c)

		switch {
		case r == 0:
			for _, n := range hidden {
				f.AddSafe(n)
			}
		case r == len(hidden):
			for _, n := range hidden {
				f.AddMine(n)
			}
		}
	}

	return f
}
