package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimaq12/noguess-mines/internal/batchrun"
	"github.com/dimaq12/noguess-mines/internal/config"
)

func newBatchCmd() *cobra.Command {
	var width, height, mines, count, jobs int
	var percentage float64
	var noGuess bool
	var output, configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Emit many boards into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				defaults, err := config.Load(configPath)
				if err != nil {
					return err
				}
				applyDefaults(&width, &height, &mines, &count, &jobs, &percentage, &output, &noGuess, defaults)
			}

			spec, err := resolveMineSpec(mines, percentage)
			if err != nil {
				return fmt.Errorf("%w: %v", errInvalidArgs, err)
			}
			if width < 1 || height < 1 {
				return fmt.Errorf("%w: --width and --height must each be at least 1", errInvalidArgs)
			}
			if count < 1 {
				return fmt.Errorf("%w: --count must be at least 1", errInvalidArgs)
			}
			if output == "" {
				output = "boards"
			}

			req := batchrun.Request{
				Width: width, Height: height,
				Spec:      spec,
				Count:     count,
				Jobs:      jobs,
				OutputDir: output,
				NoGuess:   noGuess,
				Log:       rootLogger(),
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			outcomes, err := batchrun.Run(context.Background(), req, rng)
			if err != nil {
				return err
			}
			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), "board failed:", o.Err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), o.Path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d boards failed", failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "board width")
	cmd.Flags().IntVar(&height, "height", 0, "board height")
	cmd.Flags().IntVar(&mines, "mines", 0, "exact mine count")
	cmd.Flags().Float64Var(&percentage, "percentage", 0, "mine density as a fraction of cells in (0, 0.9)")
	cmd.Flags().BoolVar(&noGuess, "no-guess", false, "certify every board solves without guessing")
	cmd.Flags().StringVar(&output, "output", "", "output directory (default: ./boards)")
	cmd.Flags().IntVar(&count, "count", 0, "number of boards to emit")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "concurrent generator workers (default: number of CPUs)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a defaults file (width/height/mines/count/jobs/...)")

	return cmd
}

func applyDefaults(width, height, mines, count, jobs *int, percentage *float64, output *string, noGuess *bool, d config.Defaults) {
	if *width == 0 {
		*width = d.Width
	}
	if *height == 0 {
		*height = d.Height
	}
	if *mines == 0 {
		*mines = d.Mines
	}
	if *mines == 0 && *percentage == 0 {
		*percentage = d.Density
	}
	if *count == 0 {
		*count = d.Count
	}
	if *jobs == 0 {
		*jobs = d.Jobs
	}
	if *output == "" {
		*output = d.OutputDir
	}
	if d.NoGuess {
		*noGuess = true
	}
}
