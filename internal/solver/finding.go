package solver

import "github.com/dimaq12/noguess-mines/internal/board"

// Finding is the atomic output of a strategy: two deduplicated sets of
// coordinates, safe to reveal and certain to be mines. Strategies are pure
// functions over a frozen State; only the driver applies a Finding.
type Finding struct {
	safe    map[board.Coord]struct{}
	mine    map[board.Coord]struct{}
	safeOrd []board.Coord
	mineOrd []board.Coord
}

// NewFinding returns an empty Finding ready for incremental building.
func NewFinding() *Finding {
	return &Finding{
		safe: make(map[board.Coord]struct{}),
		mine: make(map[board.Coord]struct{}),
	}
}

// AddSafe records c as safe, deduplicating against prior adds.
func (f *Finding) AddSafe(c board.Coord) {
	if _, ok := f.safe[c]; ok {
		return
	}
	f.safe[c] = struct{}{}
	f.safeOrd = append(f.safeOrd, c)
}

// AddMine records c as a mine, deduplicating against prior adds.
func (f *Finding) AddMine(c board.Coord) {
	if _, ok := f.mine[c]; ok {
		return
	}
	f.mine[c] = struct{}{}
	f.mineOrd = append(f.mineOrd, c)
}

// Merge folds other's coordinates into f.
func (f *Finding) Merge(other *Finding) {
	if other == nil {
		return
	}
	for _, c := range other.safeOrd {
		f.AddSafe(c)
	}
	for _, c := range other.mineOrd {
		f.AddMine(c)
	}
}

// SafeFields returns the deduplicated safe coordinates in discovery order.
func (f *Finding) SafeFields() []board.Coord { return f.safeOrd }

// MineFields returns the deduplicated mine coordinates in discovery order.
func (f *Finding) MineFields() []board.Coord { return f.mineOrd }

// Empty reports whether the Finding carries no decisions at all — the
// driver treats an empty Finding from every strategy as a stall.
func (f *Finding) Empty() bool {
	return len(f.safeOrd) == 0 && len(f.mineOrd) == 0
}
