// Package floatutils provides utilities for working with floats
package floatutils

// MinSlice gets the minimum value and indices of the minimum values in
// a slice of float64.
func MinSlice(values []float64) (min float64, indices []int) {
	min, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		if values[i] < min {
			min = values[i]
			indices = []int{i}
		} else if values[i] == min {
			indices = append(indices, i)
		}
	}
	return
}
