package pursuit

import (
	"testing"

	"github.com/samuelfneumann/gopursuit/environment/grid"
	"gonum.org/v1/gonum/floats"
)

func TestGetReward(t *testing.T) {
	prey := grid.Position{Row: 0, Col: 0}

	tests := []struct {
		name           string
		rewardDistance float64
		hunters        []grid.Position
		want           []float64
	}{
		{
			name:           "one in range",
			rewardDistance: 4,
			hunters:        []grid.Position{{Row: 1, Col: 0}, {Row: 5, Col: 0}},
			want:           []float64{1, 0},
		},
		{
			name:           "two in range",
			rewardDistance: 4,
			hunters: []grid.Position{
				{Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 10, Col: 0},
			},
			want: []float64{2, 2, 0},
		},
		{
			name:           "boundary is out of range",
			rewardDistance: 4,
			hunters:        []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 4}},
			want:           []float64{1, 0},
		},
		{
			name:           "diagonal",
			rewardDistance: 1.5,
			hunters:        []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
			want:           []float64{2, 2},
		},
		{
			name:           "zero distance",
			rewardDistance: 0,
			hunters:        []grid.Position{{Row: 0, Col: 0}},
			want:           []float64{0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewCapture(test.rewardDistance, len(test.hunters))
			got := c.GetReward(test.hunters, prey)
			if !floats.Equal(got, test.want) {
				t.Errorf("rewards = %v, want %v", got, test.want)
			}
			for _, r := range got {
				if r < c.Min() || r > c.Max() {
					t.Errorf("reward %v ∉ [%v, %v]", r, c.Min(), c.Max())
				}
			}
		})
	}
}

func TestCaptured(t *testing.T) {
	c := NewCapture(4, 2)
	prey := grid.Position{Row: 2, Col: 2}

	if c.Captured([]grid.Position{{Row: 2, Col: 3}, {Row: 1, Col: 2}}, prey) {
		t.Error("adjacent hunters reported as a capture")
	}
	if !c.Captured([]grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, prey) {
		t.Error("hunter on the prey not reported as a capture")
	}
}

func TestActions(t *testing.T) {
	for a := MinDiscreteAction; a <= MaxDiscreteAction; a++ {
		dRow, dCol := Action(a).Displacement()
		if abs(dRow)+abs(dCol) > 1 {
			t.Errorf("%v moves (%d, %d), want at most one cell", Action(a),
				dRow, dCol)
		}
	}

	if dRow, dCol := Up.Displacement(); dRow != -1 || dCol != 0 {
		t.Errorf("Up moves (%d, %d), want (-1, 0)", dRow, dCol)
	}
	if Action(NumActions).Valid() || Action(-1).Valid() {
		t.Error("action outside the table reported valid")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
