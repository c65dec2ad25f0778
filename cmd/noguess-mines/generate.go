package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimaq12/noguess-mines/internal/board"
	"github.com/dimaq12/noguess-mines/internal/boardfile"
	"github.com/dimaq12/noguess-mines/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	var width, height, mines int
	var percentage float64
	var noGuess bool
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a single board",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resolveMineSpec(mines, percentage)
			if err != nil {
				return fmt.Errorf("%w: %v", errInvalidArgs, err)
			}
			if width < 1 || height < 1 {
				return fmt.Errorf("%w: --width and --height must each be at least 1", errInvalidArgs)
			}
			if output == "" {
				output = defaultOutputPath()
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			log := rootLogger()

			var b *board.Board
			if noGuess {
				result, err := generator.Generate(rng, width, height, spec, log)
				if err != nil {
					return err
				}
				b = result.Board
			} else {
				b, err = board.NewRandomBoard(rng, width, height, spec)
				if err != nil {
					return err
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()
			if err := boardfile.Write(f, b); err != nil {
				return err
			}
			fmt.Println(output)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "board width (required)")
	cmd.Flags().IntVar(&height, "height", 0, "board height (required)")
	cmd.Flags().IntVar(&mines, "mines", 0, "exact mine count")
	cmd.Flags().Float64Var(&percentage, "percentage", 0, "mine density as a fraction of cells in (0, 0.9)")
	cmd.Flags().BoolVar(&noGuess, "no-guess", false, "certify the board solves without guessing before emitting it")
	cmd.Flags().StringVar(&output, "output", "", "output file path (default: stable name under cwd)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")

	return cmd
}

// resolveMineSpec enforces the "exactly one of --mines / --percentage"
// contract.
func resolveMineSpec(mines int, percentage float64) (board.MineSpec, error) {
	haveMines := mines > 0
	havePercentage := percentage > 0
	switch {
	case haveMines == havePercentage:
		return board.MineSpec{}, fmt.Errorf("exactly one of --mines or --percentage must be set")
	case haveMines:
		return board.FixedCount(mines), nil
	default:
		return board.FractionalDensity(percentage), nil
	}
}

func defaultOutputPath() string {
	return fmt.Sprintf("board-%d.ngm", time.Now().UnixNano())
}
