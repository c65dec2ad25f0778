package permutation

import "github.com/dimaq12/noguess-mines/internal/board"

// compiled precomputes, per constraint, the field indices it touches, so
// the backtracking search can test partial feasibility without rescanning
// coordinates.
type compiled struct {
	fieldCount  int
	constraints []compiledConstraint
}

type compiledConstraint struct {
	required int
	indices  []int
}

func compile(c *Component) *compiled {
	fieldPos := make(map[board.Coord]int, len(c.Fields))
	for i, f := range c.Fields {
		fieldPos[f] = i
	}

	cs := make([]compiledConstraint, len(c.Constraints))
	for ci, constraint := range c.Constraints {
		indices := make([]int, 0, len(constraint.Fields))
		for _, f := range constraint.Fields {
			if pos, ok := fieldPos[f]; ok {
				indices = append(indices, pos)
			}
		}
		cs[ci] = compiledConstraint{required: constraint.MineCount, indices: indices}
	}

	return &compiled{fieldCount: len(c.Fields), constraints: cs}
}

// feasible tests the partial-feasibility prune: for each constraint,
// assignedMines counts mines among indices < depth; unknownCount counts
// indices >= depth. Prune when assignedMines exceeds required or the
// remaining unknowns cannot possibly reach required.
func (cp *compiled) feasible(assignment []bool, depth int) bool {
	for _, c := range cp.constraints {
		assignedMines := 0
		unknownCount := 0
		for _, idx := range c.indices {
			if idx < depth {
				if assignment[idx] {
					assignedMines++
				}
			} else {
				unknownCount++
			}
		}
		if assignedMines > c.required {
			return false
		}
		if assignedMines+unknownCount < c.required {
			return false
		}
	}
	return true
}

// satisfied tests the leaf-acceptance condition: every constraint's
// assigned mine count across all its fields equals its requirement.
func (cp *compiled) satisfied(assignment []bool) bool {
	for _, c := range cp.constraints {
		count := 0
		for _, idx := range c.indices {
			if assignment[idx] {
				count++
			}
		}
		if count != c.required {
			return false
		}
	}
	return true
}

// certaintyTracker accumulates per-field certainty across accepted
// assignments: the first accepted assignment seeds each field's value;
// any later disagreement flips that field to Unknown.
type certaintyTracker struct {
	seen      []bool
	value     []bool
	agree     []bool
	solutions int
}

func newCertaintyTracker(n int) *certaintyTracker {
	return &certaintyTracker{
		seen:  make([]bool, n),
		value: make([]bool, n),
		agree: make([]bool, n),
	}
}

func (t *certaintyTracker) observe(assignment []bool) {
	t.solutions++
	for i, v := range assignment {
		if !t.seen[i] {
			t.seen[i] = true
			t.value[i] = v
			t.agree[i] = true
			continue
		}
		if t.agree[i] && t.value[i] != v {
			t.agree[i] = false
		}
	}
}

// backtrack performs depth-first search over assignment[startDepth:],
// trying false (safe) before true (mine) at each position, pruning via
// feasible and accepting at depth == fieldCount via satisfied.
func backtrack(cp *compiled, assignment []bool, depth int, tracker *certaintyTracker) {
	if !cp.feasible(assignment, depth) {
		return
	}
	if depth == cp.fieldCount {
		if cp.satisfied(assignment) {
			tracker.observe(assignment)
		}
		return
	}

	assignment[depth] = false
	backtrack(cp, assignment, depth+1, tracker)

	assignment[depth] = true
	backtrack(cp, assignment, depth+1, tracker)

	assignment[depth] = false // restore for caller's prefix reuse
}
