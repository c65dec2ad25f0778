// Package batchrun drives concurrent batch generation: N independent
// generator+solver runs, each owning its own board, fanned out across a
// bounded worker pool and written to per-board files.
package batchrun

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dimaq12/noguess-mines/internal/board"
	"github.com/dimaq12/noguess-mines/internal/boardfile"
	"github.com/dimaq12/noguess-mines/internal/generator"
	"github.com/dimaq12/noguess-mines/internal/obslog"
)

// Request describes one batch of boards to generate and write to disk.
type Request struct {
	Width, Height int
	Spec          board.MineSpec
	Count         int
	Jobs          int // <= 0 means runtime.NumCPU()
	OutputDir     string
	NoGuess       bool
	Log           obslog.Logger
}

// Outcome reports one board's result: its written path, or the error that
// kept it from being generated or written.
type Outcome struct {
	Path string
	Err  error
}

// Run generates req.Count boards across a pool of req.Jobs goroutines, one
// plain random board or no-guess certified board per job depending on
// req.NoGuess, and writes each to its own file under req.OutputDir named
// with a fresh UUID. It returns one Outcome per requested board, in
// request order: outcomes[i] belongs to the i-th board, whatever order the
// workers finish in.
func Run(ctx context.Context, req Request, rng *rand.Rand) ([]Outcome, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("batchrun: count must be at least 1, got %d", req.Count)
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("batchrun: create output dir: %w", err)
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	seeds := make([]int64, req.Count)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	outcomes := make([]Outcome, req.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := 0; i < req.Count; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				outcomes[i] = Outcome{Err: ctx.Err()}
				return nil
			default:
			}
			outcomes[i] = generateOne(req, seeds[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func generateOne(req Request, seed int64) Outcome {
	workerRNG := rand.New(rand.NewSource(seed))

	var b *board.Board
	var err error
	if req.NoGuess {
		var result *generator.Result
		result, err = generator.Generate(workerRNG, req.Width, req.Height, req.Spec, req.Log)
		if result != nil {
			b = result.Board
		}
	} else {
		b, err = board.NewRandomBoard(workerRNG, req.Width, req.Height, req.Spec)
	}
	if err != nil {
		return Outcome{Err: err}
	}

	path := filepath.Join(req.OutputDir, uuid.NewString()+".ngm")
	f, err := os.Create(path)
	if err != nil {
		return Outcome{Err: fmt.Errorf("batchrun: create %s: %w", path, err)}
	}
	defer f.Close()

	if err := boardfile.Write(f, b); err != nil {
		return Outcome{Err: fmt.Errorf("batchrun: write %s: %w", path, err)}
	}
	return Outcome{Path: path}
}
