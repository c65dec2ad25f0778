package board

// AllCells returns every coordinate on b in row-major order: (0,0),(1,0),…,
// (W-1,0),(0,1),… This is the canonical stable order used wherever the
// solver needs "for each cell".
func AllCells(b *Board) []Coord {
	out := make([]Coord, 0, b.Width*b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

// Neighborhood returns every coordinate within Chebyshev radius r of c,
// excluding c itself, clipped to the board bounds. Iteration order is dy
// from -r to +r outer, dx from -r to +r inner — r defaults to 1
// (king-moves); Reduction uses r=3.
func Neighborhood(b *Board, c Coord, r int) []Coord {
	out := make([]Coord, 0, (2*r+1)*(2*r+1)-1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if b.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// ChebyshevDistance returns the Chebyshev distance between a and c.
func ChebyshevDistance(a, c Coord) int {
	dx := a.X - c.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - c.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
