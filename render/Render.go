// Package render implements read-only views of pursuit snapshots. A
// snapshot is a matrix of cell values, as returned by the State and
// Observation methods of a pursuit environment.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samuelfneumann/gopursuit/environment/grid"
	"github.com/samuelfneumann/gopursuit/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Renderer renders snapshots. Renderers never modify the snapshot.
type Renderer interface {
	Render(state mat.Matrix) error
}

// Text renders snapshots as a numeric matrix dump
type Text struct {
	w io.Writer
}

// NewText returns a new Text renderer which writes to w
func NewText(w io.Writer) *Text {
	return &Text{w}
}

// Render writes the numeric representation of state
func (t *Text) Render(state mat.Matrix) error {
	_, err := fmt.Fprintf(t.w, "%v\n\n", matutils.Format(state))
	return err
}

// Glyphs used by the Glyph renderer
const (
	FreeGlyph    = '.'
	WallGlyph    = '#'
	HunterGlyph  = 'H'
	PreyGlyph    = 'P'
	UnknownGlyph = '?'
)

// Glyph renders snapshots as one character per cell
type Glyph struct {
	w io.Writer
}

// NewGlyph returns a new Glyph renderer which writes to w
func NewGlyph(w io.Writer) *Glyph {
	return &Glyph{w}
}

// Render writes the glyph representation of state followed by a blank
// line
func (g *Glyph) Render(state mat.Matrix) error {
	_, err := io.WriteString(g.w, Glyphs(state)+"\n")
	return err
}

// Glyphs returns the glyph representation of state, one line per row
func Glyphs(state mat.Matrix) string {
	r, c := state.Dims()

	var b strings.Builder
	b.Grow(r * (c + 1))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			b.WriteRune(glyph(state.At(i, j)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(v float64) rune {
	switch v {
	case grid.Free:
		return FreeGlyph
	case grid.Wall:
		return WallGlyph
	case grid.Hunter:
		return HunterGlyph
	case grid.Prey:
		return PreyGlyph
	default:
		return UnknownGlyph
	}
}

// None discards snapshots
type None struct{}

// Render does nothing
func (None) Render(mat.Matrix) error {
	return nil
}

// Multi renders each snapshot with every one of its Renderers, in
// order, stopping at the first error
type Multi []Renderer

// Render renders state with each Renderer
func (m Multi) Render(state mat.Matrix) error {
	for _, r := range m {
		if err := r.Render(state); err != nil {
			return err
		}
	}
	return nil
}
