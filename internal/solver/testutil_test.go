package solver

import "github.com/dimaq12/noguess-mines/internal/board"

// forceState builds a State over b and directly marks the given
// coordinates Revealed/Flagged, bypassing Reveal's flood-fill and chord
// semantics so tests can assemble an exact, otherwise-hard-to-reach
// mid-game configuration.
func forceState(b *board.Board, revealed, flagged []board.Coord) *State {
	s := New(b)
	for _, c := range revealed {
		s.setState(c, Revealed)
		s.hiddenCount--
	}
	for _, c := range flagged {
		s.setState(c, Flagged)
		s.hiddenCount--
		s.flagCount++
		if s.remainingMine > 0 {
			s.remainingMine--
		}
	}
	return s
}
