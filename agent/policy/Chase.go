package policy

import (
	"github.com/samuelfneumann/gopursuit/environment/grid"
	"github.com/samuelfneumann/gopursuit/environment/pursuit"
	"github.com/samuelfneumann/gopursuit/utils/floatutils"
	"github.com/samuelfneumann/gopursuit/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Chase implements a greedy policy which moves its hunter to the
// neighbouring cell closest (Euclidean) to the prey. Ties are broken
// in action order, so that staying in place is preferred over moving
// when nothing is gained. If the prey is not visible, which happens
// when the hunter stands on it, Chase stays in place.
//
// Chase is a one-step lookahead and can get stuck behind walls.
type Chase struct{}

// NewChase returns a new Chase policy
func NewChase() Chase {
	return Chase{}
}

// SelectAction selects the action that brings the hunter closest to
// the prey
func (Chase) SelectAction(obs mat.Matrix) (int, error) {
	hRow, hCol, ok := matutils.Find(obs, grid.Hunter)
	if !ok {
		return int(pursuit.Stay), nil
	}
	pRow, pCol, ok := matutils.Find(obs, grid.Prey)
	if !ok {
		return int(pursuit.Stay), nil
	}

	rows, cols := obs.Dims()
	prey := r2.Vec{X: float64(pRow), Y: float64(pCol)}

	distances := make([]float64, pursuit.NumActions)
	for a := range distances {
		dRow, dCol := pursuit.Action(a).Displacement()
		row, col := hRow+dRow, hCol+dCol

		// Illegal moves leave the hunter in place
		if row < 0 || row >= rows || col < 0 || col >= cols ||
			obs.At(row, col) == grid.Wall {
			row, col = hRow, hCol
		}

		next := r2.Vec{X: float64(row), Y: float64(col)}
		distances[a] = r2.Norm(r2.Sub(next, prey))
	}

	_, actions := floatutils.MinSlice(distances)
	return actions[0], nil
}
