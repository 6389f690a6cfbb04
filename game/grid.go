package game

import (
	"fmt"

	"conquest/utils"
)

// Position identifies a cell on the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Cell is a single square of the grid.
type Cell struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Owner     int  `json:"owner"` // Player ID, or Unowned
	Troops    int  `json:"troops"`
	IsCapital bool `json:"is_capital"`
}

func (c Cell) Position() Position {
	return Position{X: c.X, Y: c.Y}
}

func (c Cell) IsOwned() bool {
	return c.Owner != Unowned
}

// Grid is the fixed-size board, indexed Cells[y][x].
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]Cell `json:"cells"`
}

// NewGrid creates a grid of unowned, empty cells. Dimensions below MinGridSize
// are raised to it.
func NewGrid(width, height int) *Grid {
	width = max(MinGridSize, width)
	height = max(MinGridSize, height)

	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([][]Cell, height),
	}
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, width)
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell{X: x, Y: y, Owner: Unowned}
		}
	}
	return g
}

func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p, or nil if p is outside the grid.
func (g *Grid) At(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.Cells[p.Y][p.X]
}

// Neighbors returns the positions of the up to 8 cells around p, in row-major order.
func (g *Grid) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{X: p.X + dx, Y: p.Y + dy}
			if g.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// Positions returns, in row-major order, the positions of every cell for which
// keep returns true.
func (g *Grid) Positions(keep func(Cell) bool) []Position {
	var positions []Position
	for y := range g.Cells {
		for _, cell := range g.Cells[y] {
			if keep(cell) {
				positions = append(positions, cell.Position())
			}
		}
	}
	return positions
}

// CapitalCount returns the number of capitals owned by owner.
func (g *Grid) CapitalCount(owner int) int {
	count := 0
	for y := range g.Cells {
		for _, cell := range g.Cells[y] {
			if cell.Owner == owner && cell.IsCapital {
				count++
			}
		}
	}
	return count
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	cells := make([][]Cell, len(g.Cells))
	for y, row := range g.Cells {
		cells[y] = make([]Cell, len(row))
		copy(cells[y], row)
	}
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Cells:  cells,
	}
}

// Chebyshev returns the king-move distance between a and b.
func Chebyshev(a, b Position) int {
	return max(utils.Abs(a.X-b.X), utils.Abs(a.Y-b.Y))
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Position) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}

// Adjacent reports whether b is within one king move of a. Both the Chebyshev
// and the Manhattan bound must hold; diagonals pass both.
func Adjacent(a, b Position) bool {
	return Chebyshev(a, b) <= 1 && Manhattan(a, b) <= 2
}
