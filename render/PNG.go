package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gopursuit/environment/grid"
	"gonum.org/v1/gonum/mat"
)

var (
	freeShade    color.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	wallShade    color.Color = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	hunterColour color.Color = color.RGBA{R: 128, G: 102, B: 230, A: 255}
	preyColour   color.Color = color.RGBA{R: 255, G: 166, B: 0, A: 255}
)

// PNG renders snapshots to PNG images on disk. If the filename pattern
// holds a formatting verb, such as "frame%03d.png", each rendered frame
// is written to its own file, otherwise every frame overwrites the
// same file.
type PNG struct {
	pattern  string
	cellSize int
	frame    int
}

// NewPNG returns a new PNG renderer drawing each cell as a square of
// cellSize pixels
func NewPNG(pattern string, cellSize int) (*PNG, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("newPNG: cell size %d < 1", cellSize)
	}
	return &PNG{pattern: pattern, cellSize: cellSize}, nil
}

// Render draws state and saves it to the next frame's file
func (p *PNG) Render(state mat.Matrix) error {
	filename := p.pattern
	if strings.Contains(p.pattern, "%") {
		filename = fmt.Sprintf(p.pattern, p.frame)
	}
	p.frame++

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer file.Close()

	if err := EncodePNG(file, state, p.cellSize); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return file.Close()
}

// Frames returns the number of frames rendered so far
func (p *PNG) Frames() int {
	return p.frame
}

// EncodePNG draws state and writes it to w in PNG format
func EncodePNG(w io.Writer, state mat.Matrix, cellSize int) error {
	return draw(state, cellSize).EncodePNG(w)
}

// draw paints walls as dark squares, hunters as purple discs and the
// prey as an orange disc
func draw(state mat.Matrix, cellSize int) *gg.Context {
	r, c := state.Dims()
	size := float64(cellSize)

	dc := gg.NewContext(c*cellSize, r*cellSize)
	dc.SetColor(freeShade)
	dc.Clear()

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, y := float64(j)*size, float64(i)*size

			switch state.At(i, j) {
			case grid.Wall:
				dc.DrawRectangle(x, y, size, size)
				dc.SetColor(wallShade)
				dc.Fill()

			case grid.Hunter:
				dc.DrawCircle(x+size/2, y+size/2, size*0.4)
				dc.SetColor(hunterColour)
				dc.Fill()

			case grid.Prey:
				dc.DrawCircle(x+size/2, y+size/2, size*0.4)
				dc.SetColor(preyColour)
				dc.Fill()
			}
		}
	}

	return dc
}
