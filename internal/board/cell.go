// Package board defines the value model for a filled Minesweeper board:
// cell kind, dimensions, mine layout, and the deterministic iterators the
// solver consumes.
package board

import "fmt"

// Kind discriminates what a cell holds on a filled board. A Kind of Number
// carries its clue value in Value; Mine and Empty ignore Value.
type Kind uint8

const (
	// Empty is a non-mine cell with zero mines in its king-neighborhood.
	Empty Kind = iota
	// Number is a non-mine cell whose Value equals its king-neighborhood
	// mine count, 1 through 8.
	Number
	// Mine is a mined cell. Distinct from Number(9), which cannot occur.
	Mine
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Number:
		return "Number"
	case Mine:
		return "Mine"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Cell is a tagged variant over {Empty, Mine, Number(n)}. The zero value is
// Empty, which matches an unpopulated board.
type Cell struct {
	Kind  Kind
	Value int // clue value when Kind == Number, 1..8
}

// Coord is a zero-based board coordinate, (0,0) at the top-left.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
