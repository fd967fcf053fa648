package engine

import (
	"sort"

	"github.com/lixenwraith/gridstrike/component"
)

// Grid is the per-level cell layout. Cells are immutable; the grid is
// rebuilt whenever the level geometry changes
type Grid struct {
	Rows  int
	Cols  int
	Cells []component.Cell

	// centerOrder lists cell indices sorted center-out; level-entry easing
	// unlocks a growing prefix of this ordering
	centerOrder []int
}

// NewGrid lays out rows×cols cells and computes the center-out ordering
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]component.Cell, 0, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Cells = append(g.Cells, component.Cell{
				Index: r*cols + c,
				Row:   r,
				Col:   c,
			})
		}
	}

	cr := float64(rows-1) / 2
	cc := float64(cols-1) / 2
	g.centerOrder = make([]int, len(g.Cells))
	for i := range g.centerOrder {
		g.centerOrder[i] = i
	}
	sort.SliceStable(g.centerOrder, func(a, b int) bool {
		return g.centerDist(g.centerOrder[a], cr, cc) < g.centerDist(g.centerOrder[b], cr, cc)
	})
	return g
}

func (g *Grid) centerDist(idx int, cr, cc float64) float64 {
	cell := g.Cells[idx]
	dr := float64(cell.Row) - cr
	dc := float64(cell.Col) - cc
	return dr*dr + dc*dc
}

// Size returns the total cell count
func (g *Grid) Size() int {
	return len(g.Cells)
}

// CenterOrder returns cell indices sorted by distance from the grid center
func (g *Grid) CenterOrder() []int {
	return g.centerOrder
}
