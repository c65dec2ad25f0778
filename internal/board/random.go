package board

import "math/rand"

// NewRandomBoard places mines uniformly at random, computes clue numbers,
// and chooses a start cell. Mines are placed by rejection sampling: draw a
// uniform random cell, place a mine if it is still Empty, repeat until the
// resolved count is placed. The start cell is drawn uniformly from Empty
// (zero-clue) cells; if none exist, from any non-Mine cell.
func NewRandomBoard(rng *rand.Rand, width, height int, spec MineSpec) (*Board, error) {
	mines, err := spec.Resolve(width, height)
	if err != nil {
		return nil, err
	}

	b, err := NewBoard(width, height, mines)
	if err != nil {
		return nil, err
	}

	placeMinesRandomly(rng, b, mines)
	computeClues(b)
	b.Start = chooseStart(rng, b)

	return b, nil
}

func placeMinesRandomly(rng *rand.Rand, b *Board, mines int) {
	placed := 0
	for placed < mines {
		c := Coord{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
		if b.Cell(c).Kind == Mine {
			continue
		}
		b.SetCell(c, Cell{Kind: Mine})
		placed++
	}
}

func computeClues(b *Board) {
	for _, c := range AllCells(b) {
		if b.Cell(c).Kind == Mine {
			continue
		}
		count := 0
		for _, n := range Neighborhood(b, c, 1) {
			if b.Cell(n).Kind == Mine {
				count++
			}
		}
		if count > 0 {
			b.SetCell(c, Cell{Kind: Number, Value: count})
		}
	}
}

func chooseStart(rng *rand.Rand, b *Board) Coord {
	var empties, nonMines []Coord
	for _, c := range AllCells(b) {
		switch b.Cell(c).Kind {
		case Empty:
			empties = append(empties, c)
			nonMines = append(nonMines, c)
		case Number:
			nonMines = append(nonMines, c)
		}
	}
	if len(empties) > 0 {
		return empties[rng.Intn(len(empties))]
	}
	return nonMines[rng.Intn(len(nonMines))]
}
