package permutation

import "github.com/dimaq12/noguess-mines/internal/board"

// solveSequential runs the full backtracking search over every field of
// the component, from depth 0, with no prefix constraint.
func solveSequential(c *Component) Result {
	cp := compile(c)
	tracker := newCertaintyTracker(cp.fieldCount)
	assignment := make([]bool, cp.fieldCount)
	backtrack(cp, assignment, 0, tracker)
	return toResult(c, tracker)
}

// toResult converts a certaintyTracker's accumulated state into the
// public Result: fields with no accepted assignment or with disagreeing
// assignments are Unknown; fields that agreed on true/false across every
// accepted assignment are AlwaysMine/AlwaysSafe.
func toResult(c *Component, tracker *certaintyTracker) Result {
	certainty := make(map[board.Coord]Certainty, len(c.Fields))
	for i, f := range c.Fields {
		switch {
		case !tracker.seen[i] || !tracker.agree[i]:
			certainty[f] = Unknown
		case tracker.value[i]:
			certainty[f] = AlwaysMine
		default:
			certainty[f] = AlwaysSafe
		}
	}
	return Result{Certainty: certainty, Solutions: tracker.solutions}
}
