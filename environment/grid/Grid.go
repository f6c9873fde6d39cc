// Package grid implements the static obstacle map that pursuit episodes
// are played on
package grid

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gopursuit/environment"
	"github.com/samuelfneumann/gopursuit/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Cell values. Free and Wall are the only values stored in a Grid,
// Hunter and Prey only appear in overlays built on top of a Grid.
const (
	Free   float64 = 0
	Wall   float64 = 1
	Hunter float64 = 2
	Prey   float64 = 3
)

// Position is a (row, col) coordinate on a Grid
type Position struct {
	Row, Col int
}

// Add returns the position displaced by (dRow, dCol)
func (p Position) Add(dRow, dCol int) Position {
	return Position{p.Row + dRow, p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Grid is a square map of free and wall cells. A Grid is sealed once
// constructed, so that a single Grid can be shared by any number of
// episodes.
type Grid struct {
	size  int
	cells *mat.Dense
}

// New constructs a size x size Grid. Each cell is independently a wall
// with probability wallDensity, drawn in row-major order from a source
// seeded with seed. No connectivity guarantee is made.
func New(size int, wallDensity float64, seed uint64) (*Grid, error) {
	if size < 1 {
		return nil, &environment.Error{
			Op:  "new",
			Err: fmt.Errorf("size = %d < 1: %w", size, environment.ErrInvalidParameter),
		}
	}
	if math.IsNaN(wallDensity) || wallDensity < 0 || wallDensity > 1 {
		return nil, &environment.Error{
			Op: "new",
			Err: fmt.Errorf("wall density %v ∉ [0, 1]: %w", wallDensity,
				environment.ErrInvalidParameter),
		}
	}

	walls := distuv.Bernoulli{P: wallDensity, Src: rand.NewSource(seed)}

	cells := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			cells.Set(i, j, walls.Rand())
		}
	}

	return &Grid{size, cells}, nil
}

// FromRows constructs a Grid from an explicit square layout. Each value
// must be either Free or Wall.
func FromRows(rows [][]float64) (*Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, &environment.Error{
			Op:  "fromRows",
			Err: fmt.Errorf("empty layout: %w", environment.ErrInvalidParameter),
		}
	}

	cells := mat.NewDense(size, size, nil)
	for i := range rows {
		if len(rows[i]) != size {
			return nil, &environment.Error{
				Op: "fromRows",
				Err: fmt.Errorf("row %d has %d columns, want %d: %w", i,
					len(rows[i]), size, environment.ErrInvalidParameter),
			}
		}
		for j, v := range rows[i] {
			if v != Free && v != Wall {
				return nil, &environment.Error{
					Op: "fromRows",
					Err: fmt.Errorf("cell (%d, %d) = %v is neither free "+
						"nor wall: %w", i, j, v, environment.ErrInvalidParameter),
				}
			}
			cells.Set(i, j, v)
		}
	}

	return &Grid{size, cells}, nil
}

// Size returns the number of rows (and columns) of the Grid
func (g *Grid) Size() int {
	return g.size
}

// Dims returns the rows and columns of the Grid
func (g *Grid) Dims() (r, c int) {
	return g.size, g.size
}

// At returns the value of the cell at p. At panics if p is out of
// bounds.
func (g *Grid) At(p Position) float64 {
	return g.cells.At(p.Row, p.Col)
}

// InBounds returns whether p lies on the Grid
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// IsFree returns whether p lies on the Grid and is not a wall
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && g.At(p) == Free
}

// Cells returns a copy of the cell matrix
func (g *Grid) Cells() *mat.Dense {
	return mat.DenseCopyOf(g.cells)
}

// FreeCells returns every free position in row-major order
func (g *Grid) FreeCells() []Position {
	var free []Position
	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			if g.cells.At(i, j) == Free {
				free = append(free, Position{i, j})
			}
		}
	}
	return free
}

// Overlay returns a copy of the cell matrix with the prey marked at
// prey and a hunter marked at each of hunters, in order. A hunter
// sharing the prey's cell hides the prey.
func (g *Grid) Overlay(prey Position, hunters ...Position) *mat.Dense {
	overlay := g.Cells()
	overlay.Set(prey.Row, prey.Col, Prey)
	for _, h := range hunters {
		overlay.Set(h.Row, h.Col, Hunter)
	}
	return overlay
}

func (g *Grid) String() string {
	return matutils.Format(g.cells)
}
