package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase lookups of point-like
// queries against circles. Items are inserted by center and index; a query
// visits the 3x3 cell neighborhood around a point.
//
// Cell size must be >= the largest circle radius so that every circle that
// can contain the query point is found within the neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       [][]int // Item indices per cell, reused between frames
}

// NewSpatialGrid creates a spatial grid covering the given world dimensions.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(worldW/cellSize)), 1)
	rows := max(int(math.Ceil(worldH/cellSize)), 1)

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given world position. Cells outside the grid are skipped;
// distances in the game do not wrap.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c] {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// LowestMatch returns the smallest inserted index near (x,y) for which match
// returns true. Neighborhood order is irrelevant: the result is the same as
// scanning all items in index order and stopping at the first match.
func (g *SpatialGrid) LowestMatch(x, y float64, match func(index int) bool) (int, bool) {
	best := -1
	g.QueryAround(x, y, func(i int) bool {
		if (best < 0 || i < best) && match(i) {
			best = i
		}
		return false
	})
	return best, best >= 0
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = min(max(int(x*g.invCellSize), 0), g.cols-1)
	row = min(max(int(y*g.invCellSize), 0), g.rows-1)
	return col, row
}
