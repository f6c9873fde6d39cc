package tracker

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/gopursuit/environment/grid"
	"github.com/samuelfneumann/gopursuit/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Visits counts how often hunters occupy each cell of the grid. The
// observations of a TimeStep are stacked into a tensor of shape
// (hunters, rows, cols) and the position of hunter i is read from
// slice i, in which it is the only cell marked as a hunter.
//
// Visits implements plotter.GridXYZ so that the counts can be drawn
// as a heat map. Row 0 of the grid is drawn at the top.
type Visits struct {
	counts *mat.Dense
}

var _ plotter.GridXYZ = &Visits{}

// NewVisits returns a new Visits Tracker for a size x size grid
func NewVisits(size int) *Visits {
	return &Visits{mat.NewDense(size, size, nil)}
}

// Track counts the cell of every hunter at every step. Track panics if
// the observations do not match the size of the grid.
func (v *Visits) Track(t timestep.TimeStep) {
	if len(t.Observations) == 0 {
		return
	}

	obs, err := t.ObservationTensor()
	if err != nil {
		panic(fmt.Sprintf("track: %v", err))
	}
	rows, cols := v.counts.Dims()
	if shape := obs.Shape(); shape[1] != rows || shape[2] != cols {
		panic(fmt.Sprintf("track: observations of shape %v on a (%d, %d) "+
			"grid", shape, rows, cols))
	}

	data := obs.Data().([]float64)
	cells := rows * cols
	for hunter := 0; hunter < len(t.Observations); hunter++ {
		slice := data[hunter*cells : (hunter+1)*cells]
		for cell, value := range slice {
			if value == grid.Hunter {
				row, col := cell/cols, cell%cols
				v.counts.Set(row, col, v.counts.At(row, col)+1)
				break
			}
		}
	}
}

// Counts returns a copy of the visit count of each cell
func (v *Visits) Counts() *mat.Dense {
	return mat.DenseCopyOf(v.counts)
}

// Total returns the total number of visits counted
func (v *Visits) Total() float64 {
	return mat.Sum(v.counts)
}

// Dims returns the number of columns and rows of the grid
func (v *Visits) Dims() (c, r int) {
	r, c = v.counts.Dims()
	return c, r
}

// Z returns the visit count of the cell drawn at column c and row r
func (v *Visits) Z(c, r int) float64 {
	rows, _ := v.counts.Dims()
	return v.counts.At(rows-1-r, c)
}

// X returns the x coordinate of column c
func (v *Visits) X(c int) float64 {
	return float64(c)
}

// Y returns the y coordinate of row r
func (v *Visits) Y(r int) float64 {
	return float64(r)
}

// WriteHeatMap draws the visit counts as a heat map and writes the
// image to w in the given format, such as "png" or "svg".
func (v *Visits) WriteHeatMap(w io.Writer, format string) error {
	p := plot.New()
	p.Title.Text = "Hunter visits"
	p.HideAxes()

	heatMap := plotter.NewHeatMap(v, palette.Heat(12, 1))
	p.Add(heatMap)

	writer, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("writeHeatMap: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("writeHeatMap: %w", err)
	}
	return nil
}
