package permutation

// Solve enumerates every mine/safe assignment for c consistent with its
// constraints and returns the per-field certainty. Components at or above
// parallelThreshold fields are enumerated with a bounded worker pool;
// smaller components run sequentially on the calling goroutine.
func Solve(c *Component) Result {
	if len(c.Fields) >= parallelThreshold {
		return solveParallel(c)
	}
	return solveSequential(c)
}
