// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// Find returns the row-major first (row, col) index of value in X. If
// value does not appear in X, ok is false.
func Find(X mat.Matrix, value float64) (row, col int, ok bool) {
	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if X.At(i, j) == value {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
