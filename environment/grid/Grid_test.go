package grid

import (
	"math"
	"testing"

	"github.com/samuelfneumann/gopursuit/environment"
	"gonum.org/v1/gonum/mat"
)

func TestNewDensity(t *testing.T) {
	empty, err := New(7, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.FreeCells()) != 49 {
		t.Errorf("density 0: %d free cells, want 49", len(empty.FreeCells()))
	}

	full, err := New(7, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(full.FreeCells()) != 0 {
		t.Errorf("density 1: %d free cells, want 0", len(full.FreeCells()))
	}

	g, err := New(10, 0.3, 5)
	if err != nil {
		t.Fatal(err)
	}
	r, c := g.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := g.At(Position{i, j}); v != Free && v != Wall {
				t.Fatalf("cell (%d, %d) = %v", i, j, v)
			}
		}
	}
}

func TestNewSeeded(t *testing.T) {
	g1, err := New(12, 0.4, 42)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := New(12, 0.4, 42)
	if err != nil {
		t.Fatal(err)
	}

	if !mat.Equal(g1.Cells(), g2.Cells()) {
		t.Error("equally seeded grids differ")
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		density float64
	}{
		{"zero size", 0, 0.2},
		{"negative size", -3, 0.2},
		{"negative density", 5, -0.1},
		{"density above one", 5, 1.1},
		{"NaN density", 5, math.NaN()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.size, test.density, 1)
			if !environment.IsInvalidParameter(err) {
				t.Errorf("err = %v, want invalid parameter", err)
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	if g.Size() != 3 {
		t.Errorf("size = %d, want 3", g.Size())
	}
	if !g.IsFree(Position{0, 0}) || g.IsFree(Position{0, 1}) {
		t.Error("free cells read incorrectly")
	}
	if g.IsFree(Position{-1, 0}) || g.IsFree(Position{0, 3}) {
		t.Error("out of bounds position reported free")
	}

	free := g.FreeCells()
	want := []Position{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}
	if len(free) != len(want) {
		t.Fatalf("free cells = %v, want %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Fatalf("free cells = %v, want %v", free, want)
		}
	}

	bad := [][][]float64{
		{},
		{{0, 0}, {0}},
		{{0, 2}, {0, 0}},
	}
	for _, rows := range bad {
		if _, err := FromRows(rows); !environment.IsInvalidParameter(err) {
			t.Errorf("FromRows(%v): err = %v, want invalid parameter", rows,
				err)
		}
	}
}

func TestOverlay(t *testing.T) {
	g, err := New(4, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	prey := Position{3, 3}
	overlay := g.Overlay(prey, Position{0, 0}, Position{3, 3})

	if overlay.At(0, 0) != Hunter {
		t.Error("hunter not marked")
	}
	if overlay.At(3, 3) != Hunter {
		t.Error("hunter on the prey should hide the prey")
	}
	if g.At(Position{0, 0}) != Free {
		t.Error("overlay modified the grid")
	}

	overlay = g.Overlay(prey)
	if overlay.At(3, 3) != Prey {
		t.Error("prey not marked")
	}
}
