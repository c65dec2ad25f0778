package solver

import (
	"github.com/dimaq12/noguess-mines/internal/board"
)

// Outcome discriminates the two terminal results of a Run.
type Outcome int

const (
	FoundSolution Outcome = iota
	Stalled
)

// Report is the result of a solver run: either FoundSolution (every
// non-mine cell revealed, every mine flagged) or Stalled (no strategy
// produced a Finding), with diagnostic state in both cases.
type Report struct {
	Outcome        Outcome
	Steps          StepCounts
	RemainingMines int
	HiddenCount    int
	State          *State
}

// StrategyFunc is the closed, ordered set of strategies the driver
// escalates through. Each is a pure function over a frozen State.
type StrategyFunc func(*State) *Finding

// EscalationOrder is the fixed order strategies are attempted in:
// Simple, then Reduction, then Permutations. Dynamic dispatch is
// unnecessary since the set is closed and the order is the contract.
var EscalationOrder = []struct {
	Name string
	Fn   StrategyFunc
}{
	{"simple", Simple},
	{"reduction", Reduction},
	{"permutations", Permutations},
}

// StepObserver receives one notification per applied step, for driver
// callers that want structured diagnostics (see internal/obslog).
type StepObserver func(strategyName string, stepIndex int, safe, mine int)

// Run opens start, then applies strategies in escalating order until the
// board is solved or every strategy returns an empty Finding in the same
// pass. observer may be nil.
//
// Per the start-cell contract (spec.md §6), the start cell is guaranteed
// Empty on a board emitted by the random builder; Run panics if asked to
// start anywhere else.
func Run(b *board.Board, start board.Coord, observer StepObserver) *Report {
	if b.Cell(start).Kind != board.Empty {
		panicDefect(ErrNonEmptyStart, start)
	}

	s := New(b)
	s.Reveal(start)

	return RunFrom(s, observer)
}

// RunFrom continues solving an existing State — used by the no-guess
// generator to resume after a mutation without discarding prior progress.
func RunFrom(s *State, observer StepObserver) *Report {
	for {
		if s.IsSolved() {
			for _, c := range board.AllCells(s.Board) {
				if s.CellState(c) == Hidden {
					s.Flag(c)
				}
			}
			return &Report{
				Outcome:        FoundSolution,
				Steps:          s.Steps,
				RemainingMines: s.RemainingMines(),
				HiddenCount:    s.HiddenCount(),
				State:          s,
			}
		}

		applied := false
		for _, strat := range EscalationOrder {
			finding := strat.Fn(s)
			if finding.Empty() {
				continue
			}

			for _, c := range finding.SafeFields() {
				s.Reveal(c)
			}
			for _, c := range finding.MineFields() {
				s.Flag(c)
			}

			switch strat.Name {
			case "simple":
				s.Steps.Simple++
			case "reduction":
				s.Steps.Reduction++
			case "permutations":
				s.Steps.Permutations++
			}

			if observer != nil {
				observer(strat.Name, s.Steps.Total(), len(finding.SafeFields()), len(finding.MineFields()))
			}

			applied = true
			break
		}

		if !applied {
			return &Report{
				Outcome:        Stalled,
				Steps:          s.Steps,
				RemainingMines: s.RemainingMines(),
				HiddenCount:    s.HiddenCount(),
				State:          s,
			}
		}
	}
}
