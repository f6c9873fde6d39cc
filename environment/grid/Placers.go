package grid

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gopursuit/environment"
)

// Placer implements a distribution over the starting positions of the
// agents of an episode. Place returns n distinct free positions on g.
type Placer interface {
	Place(g *Grid, n int) ([]Position, error)
}

// UniformPlacer samples starting positions uniformly over the free
// cells of a Grid, without replacement. The i-th position is uniform
// over the free cells not taken by positions 0, ..., i-1, which is the
// distribution obtained by rejection sampling each agent in turn, but
// without the risk of never terminating.
type UniformPlacer struct {
	rng *rand.Rand
}

// NewUniformPlacer returns a new UniformPlacer seeded with seed
func NewUniformPlacer(seed uint64) *UniformPlacer {
	return &UniformPlacer{rand.New(rand.NewSource(seed))}
}

// Place samples n distinct free positions on g. If g has fewer than n
// free cells, Place returns an error reporting an unsatisfiable
// placement.
func (u *UniformPlacer) Place(g *Grid, n int) ([]Position, error) {
	free := g.FreeCells()
	if len(free) < n {
		return nil, &environment.Error{
			Op: "place",
			Err: fmt.Errorf("need %d free cells, grid has %d: %w", n,
				len(free), environment.ErrUnsatisfiablePlacement),
		}
	}

	// Partial Fisher-Yates shuffle: the first n entries of free end up
	// being the sample
	positions := make([]Position, n)
	for i := 0; i < n; i++ {
		j := i + u.rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
		positions[i] = free[i]
	}

	return positions, nil
}

// FixedPlacer always places agents at the same positions
type FixedPlacer struct {
	positions []Position
}

// NewFixedPlacer returns a Placer which places the i-th agent at
// positions[i]
func NewFixedPlacer(positions ...Position) *FixedPlacer {
	p := make([]Position, len(positions))
	copy(p, positions)
	return &FixedPlacer{p}
}

// Place returns the fixed positions after checking that exactly n were
// given and that they are free and distinct on g
func (f *FixedPlacer) Place(g *Grid, n int) ([]Position, error) {
	if len(f.positions) != n {
		return nil, &environment.Error{
			Op: "place",
			Err: fmt.Errorf("have %d fixed positions, want %d: %w",
				len(f.positions), n, environment.ErrUnsatisfiablePlacement),
		}
	}

	seen := make(map[Position]struct{}, n)
	for _, p := range f.positions {
		if !g.IsFree(p) {
			return nil, &environment.Error{
				Op: "place",
				Err: fmt.Errorf("position %v is not free: %w", p,
					environment.ErrUnsatisfiablePlacement),
			}
		}
		if _, ok := seen[p]; ok {
			return nil, &environment.Error{
				Op: "place",
				Err: fmt.Errorf("position %v used twice: %w", p,
					environment.ErrUnsatisfiablePlacement),
			}
		}
		seen[p] = struct{}{}
	}

	positions := make([]Position, n)
	copy(positions, f.positions)
	return positions, nil
}
