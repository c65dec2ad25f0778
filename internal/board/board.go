package board

import "fmt"

// Board is an immutable (post-construction) filled Minesweeper board: its
// dimensions, mine layout, clue numbers, and designated start cell. Only
// the no-guess generator mutates a Board, and only between solver runs.
type Board struct {
	Width, Height int
	Mines         int
	Start         Coord

	cells []Cell // row-major, len == Width*Height
}

// NewBoard allocates an all-Empty board of the given dimensions. Callers
// populate it via SetCell before computing clues, or use NewRandomBoard.
func NewBoard(width, height, mines int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	if mines < 1 || mines >= width*height {
		return nil, fmt.Errorf("%w: mines %d not in [1, %d)", ErrInvalidMineSpec, mines, width*height)
	}
	return &Board{
		Width:  width,
		Height: height,
		Mines:  mines,
		cells:  make([]Cell, width*height),
	}, nil
}

func (b *Board) index(c Coord) int {
	return c.Y*b.Width + c.X
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Cell returns the cell at c. Panics if c is out of bounds; callers must
// check InBounds or only pass coordinates produced by this package's
// iterators.
func (b *Board) Cell(c Coord) Cell {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("board: coordinate %v out of bounds for %dx%d board", c, b.Width, b.Height))
	}
	return b.cells[b.index(c)]
}

// SetCell sets the cell at c. Used by the builder during construction and
// by the no-guess generator when mutating a stalled board.
func (b *Board) SetCell(c Coord, cell Cell) {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("board: coordinate %v out of bounds for %dx%d board", c, b.Width, b.Height))
	}
	b.cells[b.index(c)] = cell
}

// RecomputeClue recalculates the clue (or Empty) at c from its current
// king-neighborhood, leaving c a Mine untouched. Used after the generator
// relocates a mine.
func (b *Board) RecomputeClue(c Coord) {
	cell := b.Cell(c)
	if cell.Kind == Mine {
		return
	}
	count := 0
	for _, n := range Neighborhood(b, c, 1) {
		if b.Cell(n).Kind == Mine {
			count++
		}
	}
	if count == 0 {
		b.SetCell(c, Cell{Kind: Empty})
	} else {
		b.SetCell(c, Cell{Kind: Number, Value: count})
	}
}
