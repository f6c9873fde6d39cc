// Package tensorutils provides utilities for moving gonum matrices into
// gorgonia tensors
package tensorutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// Stack copies a sequence of equally shaped matrices into a single
// tensor of shape (len(m), rows, cols). The i-th slice along the first
// axis holds m[i] in row-major order.
func Stack(m []*mat.Dense) (*tensor.Dense, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("stack: no matrices to stack")
	}

	r, c := m[0].Dims()
	backing := make([]float64, 0, len(m)*r*c)
	for i := range m {
		if rows, cols := m[i].Dims(); rows != r || cols != c {
			return nil, fmt.Errorf("stack: matrix %d has shape (%d, %d), "+
				"want (%d, %d)", i, rows, cols, r, c)
		}

		for row := 0; row < r; row++ {
			for col := 0; col < c; col++ {
				backing = append(backing, m[i].At(row, col))
			}
		}
	}

	return tensor.New(
		tensor.WithShape(len(m), r, c),
		tensor.WithBacking(backing),
	), nil
}
