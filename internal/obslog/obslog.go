// Package obslog wires the solver driver and no-guess generator to
// structured logging: one event per applied strategy step, and one
// terminal event per solver run or generator attempt.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dimaq12/noguess-mines/internal/board"
	"github.com/dimaq12/noguess-mines/internal/solver"
)

// Logger wraps a zerolog.Logger with the handful of events the solver and
// generator emit. The zero value is not usable; build one with New.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w at the given level. The CLI passes
// os.Stderr at zerolog.WarnLevel (zerolog.DebugLevel with --verbose); tests
// can pass io.Discard.
func New(w io.Writer, level zerolog.Level) Logger {
	return Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Default builds a Logger at info level writing to stderr, matching the
// CLI's default diagnostic stream.
func Default() Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}

// StepObserver adapts the Logger to solver.StepObserver, logging one debug
// event per applied strategy step.
func (l Logger) StepObserver() solver.StepObserver {
	return func(strategyName string, stepIndex int, safe, mine int) {
		l.zl.Debug().
			Str("strategy", strategyName).
			Int("step", stepIndex).
			Int("safe", safe).
			Int("mine", mine).
			Msg("solver step")
	}
}

// Solved logs a successful solver run.
func (l Logger) Solved(steps solver.StepCounts) {
	l.zl.Info().
		Int("simple", steps.Simple).
		Int("reduction", steps.Reduction).
		Int("permutations", steps.Permutations).
		Int("complexity", steps.ComplexityScore()).
		Msg("solver found solution")
}

// Stalled logs a stalled solver run.
func (l Logger) Stalled(report *solver.Report) {
	l.zl.Warn().
		Int("hidden", report.HiddenCount).
		Int("remaining_mines", report.RemainingMines).
		Int("steps", report.Steps.Total()).
		Msg("solver stalled")
}

// Mutated logs a no-guess generator mine relocation between stalled
// attempts: the frontier field that became a mine and the mine it
// replaced.
func (l Logger) Mutated(attempt int, frontierSize int, to, from board.Coord) {
	l.zl.Info().
		Int("attempt", attempt).
		Int("frontier_size", frontierSize).
		Str("relocated_to", to.String()).
		Str("relocated_from", from.String()).
		Msg("relocated mine to restore progress")
}

// Regenerated logs a full board regeneration when no mutation candidate
// could be found.
func (l Logger) Regenerated(attempt int) {
	l.zl.Warn().Int("attempt", attempt).Msg("no mutation candidate found, regenerating board")
}

// Exhausted logs the generator giving up after the iteration bound.
func (l Logger) Exhausted(attempts int) {
	l.zl.Error().Int("attempts", attempts).Msg("generator exhausted iteration bound")
}
