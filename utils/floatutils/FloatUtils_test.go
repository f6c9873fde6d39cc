package floatutils

import "testing"

func TestMinSlice(t *testing.T) {
	min, indices := MinSlice([]float64{3, 1, 4, 1, 5})
	if min != 1 || len(indices) != 2 || indices[0] != 1 || indices[1] != 3 {
		t.Errorf("MinSlice = (%v, %v), want (1, [1 3])", min, indices)
	}

	min, indices = MinSlice([]float64{2})
	if min != 2 || len(indices) != 1 || indices[0] != 0 {
		t.Errorf("MinSlice = (%v, %v), want (2, [0])", min, indices)
	}
}
