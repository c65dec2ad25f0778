package solver

import "github.com/dimaq12/noguess-mines/internal/board"

// Border returns every Hidden cell adjacent (king-move) to at least one
// informative cell, in row-major discovery order. Exported for the
// no-guess generator: when a solver run stalls, every border field is by
// definition undetermined (otherwise some strategy would have fired), so
// the border at the point of stall is the generator's mutation frontier.
func Border(s *State) []board.Coord {
	return borderSet(s)
}

// borderSet returns every Hidden cell adjacent (king-move) to at least one
// informative cell, in row-major discovery order.
func borderSet(s *State) []board.Coord {
	seen := make(map[board.Coord]struct{})
	var order []board.Coord

	for _, c := range board.AllCells(s.Board) {
		if !s.Informative(c) {
			continue
		}
		for _, n := range s.HiddenNeighbors(c) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			order = append(order, n)
		}
	}
	return order
}

// decomposeComponents groups border fields into maximal sets linked by
// sharing a common informative clue cell, via depth-first traversal over
// an adjacency multimap keyed by border coordinate.
func decomposeComponents(s *State, border []board.Coord) [][]board.Coord {
	borderIdx := make(map[board.Coord]struct{}, len(border))
	for _, c := range border {
		borderIdx[c] = struct{}{}
	}

	adjacency := make(map[board.Coord][]board.Coord)
	for _, clue := range board.AllCells(s.Board) {
		if !s.Informative(clue) {
			continue
		}
		var linked []board.Coord
		for _, n := range s.HiddenNeighbors(clue) {
			if _, ok := borderIdx[n]; ok {
				linked = append(linked, n)
			}
		}
		for _, a := range linked {
			for _, b := range linked {
				if a == b {
					continue
				}
				adjacency[a] = append(adjacency[a], b)
			}
		}
	}

	visited := make(map[board.Coord]bool, len(border))
	var components [][]board.Coord

	for _, start := range border {
		if visited[start] {
			continue
		}
		var component []board.Coord
		stack := []board.Coord{start}
		visited[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, cur)
			for _, next := range adjacency[cur] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		components = append(components, component)
	}

	return components
}
