// Command noguess-mines generates Minesweeper boards, optionally
// certifying them as solvable without guessing, and writes them to disk
// via the project's binary round-trip format.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dimaq12/noguess-mines/internal/obslog"
)

// errInvalidArgs marks a validation failure in flag combinations, mapped
// to exit code 2. Everything else (I/O, solver, generator errors) maps to
// exit code 1.
var errInvalidArgs = errors.New("invalid arguments")

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "noguess-mines",
		Short:         "Generate Minesweeper boards, with an optional no-guess solvability guarantee",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver/generator step diagnostics")
	root.AddCommand(newGenerateCmd(), newBatchCmd())
	return root
}

func rootLogger() obslog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return obslog.New(os.Stderr, level)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errInvalidArgs) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
