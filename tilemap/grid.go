// Package tilemap stores a sparse isometric tile grid and renders it back to
// front.
package tilemap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/isowalk/iso"
)

var ErrInvalidArgument = errors.New("tilemap: invalid argument")

// Variant selects which tile image is drawn at a cell.
type Variant int

// Cell is one occupied grid position.
type Cell struct {
	iso.Point
	Variant Variant
}

// Grid maps grid coordinates to tile variants. Absent keys mean "no tile".
//
// Cells are kept in a dense slice indexed by the map so that iteration order
// only changes when the contents change.
type Grid struct {
	index map[iso.Point]int
	cells []Cell
}

func NewGrid() *Grid {
	return &Grid{index: make(map[iso.Point]int)}
}

// Set inserts or overwrites the variant at (x, y).
func (g *Grid) Set(x, y int, v Variant) {
	p := iso.Point{X: x, Y: y}
	if i, ok := g.index[p]; ok {
		g.cells[i].Variant = v
		return
	}
	g.index[p] = len(g.cells)
	g.cells = append(g.cells, Cell{Point: p, Variant: v})
}

// Get returns the variant at (x, y) and whether a tile is present.
func (g *Grid) Get(x, y int) (Variant, bool) {
	i, ok := g.index[iso.Point{X: x, Y: y}]
	if !ok {
		return 0, false
	}
	return g.cells[i].Variant, true
}

// Remove deletes the tile at (x, y). Removing an empty cell is a no-op.
func (g *Grid) Remove(x, y int) {
	p := iso.Point{X: x, Y: y}
	i, ok := g.index[p]
	if !ok {
		return
	}
	last := len(g.cells) - 1
	if i != last {
		g.cells[i] = g.cells[last]
		g.index[g.cells[i].Point] = i
	}
	g.cells = g.cells[:last]
	delete(g.index, p)
}

func (g *Grid) Clear() {
	clear(g.index)
	g.cells = g.cells[:0]
}

func (g *Grid) Len() int {
	return len(g.cells)
}

// All returns a snapshot of every occupied cell.
func (g *Grid) All() map[iso.Point]Variant {
	out := make(map[iso.Point]Variant, len(g.cells))
	for _, c := range g.cells {
		out[c.Point] = c.Variant
	}
	return out
}

// FillArea walks the rectangle row by row (y outer, x inner) and assigns
// pattern[i % len(pattern)], where i counts cells across the whole rectangle.
func (g *Grid) FillArea(startX, startY, width, height int, pattern []Variant) error {
	if len(pattern) == 0 {
		return fmt.Errorf("%w: fill pattern is empty", ErrInvalidArgument)
	}
	i := 0
	for y := startY; y < startY+height; y++ {
		for x := startX; x < startX+width; x++ {
			g.Set(x, y, pattern[i%len(pattern)])
			i++
		}
	}
	return nil
}

// FillCheckerboard assigns variant 0 where x+y is even and 1 where it is odd.
func (g *Grid) FillCheckerboard(startX, startY, width, height int) {
	for y := startY; y < startY+height; y++ {
		for x := startX; x < startX+width; x++ {
			g.Set(x, y, Variant((x+y)&1))
		}
	}
}

// LoadFromArray clears the grid and loads rows centered on the origin. Row 0
// is the top of the array and lands on the largest grid Y.
//
// Ragged input and negative variants are rejected before the grid is
// touched.
func (g *Grid) LoadFromArray(rows [][]int) error {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	for r, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidArgument, r, len(row), width)
		}
		for c, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative variant %d at row %d column %d", ErrInvalidArgument, v, r, c)
			}
		}
	}

	g.Clear()

	startY := height / 2
	startX := -(width / 2)
	for r, row := range rows {
		for c, v := range row {
			g.Set(startX+c, startY-r, Variant(v))
		}
	}
	return nil
}

// DrawOrder returns every occupied cell sorted back to front (descending
// x+y). Cells at equal depth keep their storage order, which is stable while
// the grid is unchanged.
func (g *Grid) DrawOrder() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth() > out[j].Depth()
	})
	return out
}

// CellsIn returns the occupied cells inside b in storage order. No depth sort
// is applied; callers trade exact overlap order for fewer draws.
func (g *Grid) CellsIn(b iso.Bounds) []Cell {
	var out []Cell
	for _, c := range g.cells {
		if b.Contains(c.Point) {
			out = append(out, c)
		}
	}
	return out
}

// ReplaceWith makes g hold exactly the cells of src, in src's order.
func (g *Grid) ReplaceWith(src *Grid) {
	g.Clear()
	if src == nil {
		return
	}
	for _, c := range src.cells {
		g.Set(c.X, c.Y, c.Variant)
	}
}
