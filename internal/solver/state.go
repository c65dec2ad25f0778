// Package solver implements the layered deductive solver: a mutable view
// over a board.Board that strategies read and the driver mutates, plus the
// three escalating strategies (Simple, Reduction, Permutations) themselves.
package solver

import (
	"errors"
	"fmt"

	"github.com/dimaq12/noguess-mines/internal/board"
)

// CellState is the solver's per-cell view, independent of the underlying
// board.Cell kind.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Sentinel solver-defect errors. Per spec these must never occur against a
// well-formed random board; Reveal, ReducedCount and Run raise them as
// panics carrying a *DefectError.
var (
	ErrRevealedMine    = errors.New("solver: reveal called on a mine cell")
	ErrFlagExceedsClue = errors.New("solver: flagged neighbor count exceeds clue value")
	ErrNonEmptyStart   = errors.New("solver: start cell is not Empty")
)

// DefectError is the value panicked for solver defects. It
// carries the sentinel error and the coordinate where the defect occurred.
type DefectError struct {
	Err   error
	Coord board.Coord
}

func (d *DefectError) Error() string {
	return fmt.Sprintf("%v at %v", d.Err, d.Coord)
}

func (d *DefectError) Unwrap() error { return d.Err }

func panicDefect(err error, c board.Coord) {
	panic(&DefectError{Err: err, Coord: c})
}

// StepCounts tallies how many steps each strategy contributed during a
// solver run, plus a derived complexity score (see SPEC_FULL.md: Simple
// weighs x1, Reduction x3, Permutations x9 — escalating strategies cost
// strictly more).
type StepCounts struct {
	Simple       int
	Reduction    int
	Permutations int
}

// Total returns the sum of all per-strategy step counts.
func (s StepCounts) Total() int {
	return s.Simple + s.Reduction + s.Permutations
}

// ComplexityScore weights escalating strategies more heavily: a board that
// needed Permutations to certify is strictly "harder" than one Simple
// alone could finish.
func (s StepCounts) ComplexityScore() int {
	return s.Simple*1 + s.Reduction*3 + s.Permutations*9
}

// State is the mutable solver view over a board.Board: per-cell state,
// and three redundant counters maintained as derived invariants.
type State struct {
	Board *board.Board

	states        []CellState // row-major, len == Width*Height
	flagCount     int
	hiddenCount   int
	remainingMine int

	Steps StepCounts
}

// New builds a fresh State over b with every cell Hidden.
func New(b *board.Board) *State {
	n := b.Width * b.Height
	s := &State{
		Board:         b,
		states:        make([]CellState, n),
		hiddenCount:   n,
		remainingMine: b.Mines,
	}
	for i := range s.states {
		s.states[i] = Hidden
	}
	return s
}

func (s *State) index(c board.Coord) int {
	return c.Y*s.Board.Width + c.X
}

// CellState returns the solver state of the cell at c.
func (s *State) CellState(c board.Coord) CellState {
	return s.states[s.index(c)]
}

func (s *State) setState(c board.Coord, state CellState) {
	s.states[s.index(c)] = state
}

// HiddenCount, FlagCount, RemainingMines return the three redundant
// counters, maintained incrementally but always equal to their
// definitional sums over the state array (see invariant tests).
func (s *State) HiddenCount() int     { return s.hiddenCount }
func (s *State) FlagCount() int       { return s.flagCount }
func (s *State) RemainingMines() int  { return s.remainingMine }

// IsSolved reports whether every hidden cell, if any remain, must be a
// mine: hiddenCount == 0, or flagCount+hiddenCount == Mines.
func (s *State) IsSolved() bool {
	return s.hiddenCount == 0 || s.flagCount+s.hiddenCount == s.Board.Mines
}

// Reveal opens c. A no-op if already Revealed. Panics (DefectError,
// ErrRevealedMine) if c is a Mine. Empty cells flood-fill their Hidden
// king-neighbors; Number cells whose flagged-neighbor count already
// equals their clue auto-chord their Hidden king-neighbors.
func (s *State) Reveal(c board.Coord) {
	if s.CellState(c) == Revealed {
		return
	}

	cell := s.Board.Cell(c)
	if cell.Kind == board.Mine {
		panicDefect(ErrRevealedMine, c)
	}

	s.setState(c, Revealed)
	s.hiddenCount--

	switch cell.Kind {
	case board.Empty:
		for _, n := range board.Neighborhood(s.Board, c, 1) {
			if s.CellState(n) == Hidden {
				s.Reveal(n)
			}
		}
	case board.Number:
		flagged := 0
		for _, n := range board.Neighborhood(s.Board, c, 1) {
			if s.CellState(n) == Flagged {
				flagged++
			}
		}
		if flagged == cell.Value {
			for _, n := range board.Neighborhood(s.Board, c, 1) {
				if s.CellState(n) == Hidden {
					s.Reveal(n)
				}
			}
		}
	}
}

// Flag marks c as Flagged. A no-op unless c is currently Hidden.
func (s *State) Flag(c board.Coord) {
	if s.CellState(c) != Hidden {
		return
	}
	s.setState(c, Flagged)
	s.flagCount++
	s.hiddenCount--
	if s.remainingMine > 0 {
		s.remainingMine--
	}
}

// Informative reports whether c is Revealed, a Number, and has at least
// one Hidden king-neighbor.
func (s *State) Informative(c board.Coord) bool {
	if s.CellState(c) != Revealed {
		return false
	}
	if s.Board.Cell(c).Kind != board.Number {
		return false
	}
	for _, n := range board.Neighborhood(s.Board, c, 1) {
		if s.CellState(n) == Hidden {
			return true
		}
	}
	return false
}

// ReducedCount returns an informative cell's clue minus its flagged
// king-neighbor count: the number of mines still unaccounted for among
// its Hidden neighbors. Panics (DefectError, ErrFlagExceedsClue) if the
// flagged count exceeds the clue, which indicates a misplayed board.
func (s *State) ReducedCount(c board.Coord) int {
	cell := s.Board.Cell(c)
	flagged := 0
	for _, n := range board.Neighborhood(s.Board, c, 1) {
		if s.CellState(n) == Flagged {
			flagged++
		}
	}
	if flagged > cell.Value {
		panicDefect(ErrFlagExceedsClue, c)
	}
	return cell.Value - flagged
}

// HiddenNeighbors returns the ordered list of c's Hidden king-neighbors.
func (s *State) HiddenNeighbors(c board.Coord) []board.Coord {
	var out []board.Coord
	for _, n := range board.Neighborhood(s.Board, c, 1) {
		if s.CellState(n) == Hidden {
			out = append(out, n)
		}
	}
	return out
}
