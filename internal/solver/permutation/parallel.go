package permutation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the component size at and above which enumeration
// is parallelized (spec.md §4.6.5).
const parallelThreshold = 18

// splitFraction determines the split depth d = floor(splitFraction * |C|):
// the first d fields define the branch prefixes distributed to workers.
const splitFraction = 0.3

// workerStackBytes mirrors the 32 MiB stack the original Rust solver
// requests for its enumeration workers (spec.md §9 design notes); Go
// goroutine stacks grow on demand, so this is a documented correspondence
// rather than a parameter passed anywhere.
const workerStackBytes = 32 << 20

// solveParallel distributes the component's search across a bounded pool
// of workers, round-robin over feasible branch prefixes of the first d
// fields, then merges their independent certainty vectors.
func solveParallel(c *Component) Result {
	cp := compile(c)
	d := int(splitFraction * float64(cp.fieldCount))
	if d < 1 {
		d = 1
	}
	if d > cp.fieldCount {
		d = cp.fieldCount
	}

	prefixes := feasiblePrefixes(cp, d)
	if len(prefixes) == 0 {
		return toResult(c, newCertaintyTracker(cp.fieldCount))
	}

	workers := 5 * runtime.NumCPU()
	if workers > len(prefixes) {
		workers = len(prefixes)
	}
	if workers < 1 {
		workers = 1
	}

	buckets := make([][][]bool, workers)
	for i, p := range prefixes {
		w := i % workers
		buckets[w] = append(buckets[w], p)
	}

	trackers := make([]*certaintyTracker, workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			tracker := newCertaintyTracker(cp.fieldCount)
			assignment := make([]bool, cp.fieldCount)
			for _, prefix := range buckets[w] {
				copy(assignment[:d], prefix)
				backtrack(cp, assignment, d, tracker)
			}
			trackers[w] = tracker
			return nil
		})
	}
	_ = g.Wait() // workers never error; see spec.md §5 "no cancellation is exposed"

	return toResult(c, mergeTrackers(trackers))
}

// feasiblePrefixes enumerates every assignment of the first d fields and
// keeps those passing the same partial-feasibility test used inside the
// backtracking search.
func feasiblePrefixes(cp *compiled, d int) [][]bool {
	var out [][]bool
	assignment := make([]bool, cp.fieldCount)

	var walk func(pos int)
	walk = func(pos int) {
		if pos == d {
			if cp.feasible(assignment, d) {
				prefix := make([]bool, d)
				copy(prefix, assignment[:d])
				out = append(out, prefix)
			}
			return
		}
		assignment[pos] = false
		walk(pos + 1)
		assignment[pos] = true
		walk(pos + 1)
		assignment[pos] = false
	}
	walk(0)

	return out
}

// mergeTrackers combines per-worker certainty vectors: a field's global
// certainty is its common value iff every worker that found at least one
// solution agrees and reports a definite value; otherwise Unknown. Workers
// that found zero solutions are excluded entirely; if all workers found
// zero, the merged tracker reports zero solutions (no decisions).
func mergeTrackers(trackers []*certaintyTracker) *certaintyTracker {
	var contributing []*certaintyTracker
	totalSolutions := 0
	for _, t := range trackers {
		if t.solutions > 0 {
			contributing = append(contributing, t)
		}
		totalSolutions += t.solutions
	}

	if len(contributing) == 0 {
		return trackers[0] // all-zero; any tracker reports solutions == 0
	}

	n := len(contributing[0].seen)
	merged := newCertaintyTracker(n)
	merged.solutions = totalSolutions

	for i := 0; i < n; i++ {
		first := contributing[0]
		if !first.seen[i] || !first.agree[i] {
			merged.seen[i] = true
			merged.agree[i] = false
			continue
		}
		value := first.value[i]
		allAgree := true
		for _, t := range contributing[1:] {
			if !t.seen[i] || !t.agree[i] || t.value[i] != value {
				allAgree = false
				break
			}
		}
		merged.seen[i] = true
		merged.value[i] = value
		merged.agree[i] = allAgree
	}

	return merged
}
