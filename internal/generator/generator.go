// Package generator implements the no-guess board generator: propose a
// random board, invoke the solver, and on stall perturb the mine layout
// to restore progress, repeating until the solver certifies the board or
// a bounded number of attempts is exhausted.
package generator

import (
	"errors"
	"math/rand"

	"github.com/dimaq12/noguess-mines/internal/board"
	"github.com/dimaq12/noguess-mines/internal/obslog"
	"github.com/dimaq12/noguess-mines/internal/solver"
)

// ErrExhausted is returned when no solver-certified no-guess board was
// produced within the iteration bound (spec: 10*W*H attempts).
var ErrExhausted = errors.New("generator: no solvable board found within the iteration bound")

// relocationRadius bounds how far a mine may be relocated from the
// undecided frontier field it is filling in for.
const relocationRadius = 4

// Result is a generated, solver-certified no-guess board plus the
// terminal report from the run that certified it.
type Result struct {
	Board  *board.Board
	Report *solver.Report
}

// Generate runs the no-guess generation loop for a board of the given
// dimensions and mine spec, logging progress through log.
func Generate(rng *rand.Rand, width, height int, spec board.MineSpec, log obslog.Logger) (*Result, error) {
	limit := 10 * width * height
	if limit < 1 {
		limit = 1
	}

	b, err := board.NewRandomBoard(rng, width, height, spec)
	if err != nil {
		return nil, err
	}

	s := solver.New(b)
	s.Reveal(b.Start)

	for attempt := 0; attempt < limit; attempt++ {
		report := solver.RunFrom(s, log.StepObserver())

		if report.Outcome == solver.FoundSolution {
			log.Solved(report.Steps)
			return &Result{Board: b, Report: report}, nil
		}
		log.Stalled(report)

		frontier := solver.Border(s)
		to, from, ok := findRelocation(b, s, frontier)
		if ok {
			b.SetCell(to, board.Cell{Kind: board.Mine})
			b.SetCell(from, board.Cell{Kind: board.Empty})
			recomputeAround(b, to, from)
			log.Mutated(attempt, len(frontier), to, from)
			continue // resume RunFrom on the same checkpoint, per spec.md §4.8
		}

		log.Regenerated(attempt)
		b, err = board.NewRandomBoard(rng, width, height, spec)
		if err != nil {
			return nil, err
		}
		s = solver.New(b)
		s.Reveal(b.Start)
	}

	log.Exhausted(limit)
	return nil, ErrExhausted
}

// findRelocation picks one undecided frontier field that is not already a
// mine, and one mine within relocationRadius of it that is not already
// one of its king-neighbors (relocating an already-adjacent mine would
// leave the field's local constraints unchanged). Returns the frontier
// field (the relocation target) and the mine's current coordinate (the
// relocation source).
func findRelocation(b *board.Board, s *solver.State, frontier []board.Coord) (to, from board.Coord, ok bool) {
	for _, f := range frontier {
		if b.Cell(f).Kind == board.Mine {
			continue
		}
		if m, found := nearestRelocatableMine(b, s, f); found {
			return f, m, true
		}
	}
	return board.Coord{}, board.Coord{}, false
}

// nearestRelocatableMine only considers mines the solver has not yet
// committed to (CellState == Hidden): a Flagged mine was certified by an
// earlier Simple/Reduction/Permutations step in this same checkpoint, and
// relocating it would leave the resumed State counting a now-Empty cell
// as flagged in every later ReducedCount/Informative computation.
func nearestRelocatableMine(b *board.Board, s *solver.State, f board.Coord) (board.Coord, bool) {
	for r := 2; r <= relocationRadius; r++ {
		for _, c := range board.Neighborhood(b, f, r) {
			if board.ChebyshevDistance(f, c) != r {
				continue // already considered at a smaller radius
			}
			if b.Cell(c).Kind == board.Mine && s.CellState(c) == solver.Hidden {
				return c, true
			}
		}
	}
	return board.Coord{}, false
}

// recomputeAround recalculates clue numbers for every cell within
// Chebyshev radius 1 of either perturbed coordinate: both the newly mined
// field and the vacated one perturb their king-neighborhoods.
func recomputeAround(b *board.Board, coords ...board.Coord) {
	seen := make(map[board.Coord]struct{})
	recompute := func(c board.Coord) {
		if _, done := seen[c]; done {
			return
		}
		seen[c] = struct{}{}
		b.RecomputeClue(c)
	}
	for _, c := range coords {
		recompute(c)
		for _, n := range board.Neighborhood(b, c, 1) {
			recompute(n)
		}
	}
}
