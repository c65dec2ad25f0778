package board

// NewFixedBoard builds a board with mines at exactly the given
// coordinates and a designated start, computing clue numbers from the
// mine layout. Used by tests and by fixtures that need a specific,
// reproducible mine arrangement rather than one from NewRandomBoard.
func NewFixedBoard(width, height int, mines []Coord, start Coord) (*Board, error) {
	b, err := NewBoard(width, height, len(mines))
	if err != nil {
		return nil, err
	}
	for _, m := range mines {
		b.SetCell(m, Cell{Kind: Mine})
	}
	computeClues(b)
	b.Start = start
	return b, nil
}
