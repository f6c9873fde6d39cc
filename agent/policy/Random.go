// Package policy implements decision providers which drive hunters in
// the pursuit environment
package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gopursuit/environment/pursuit"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random implements a policy which selects actions uniformly at random
// and ignores its observations
type Random struct {
	seed uint64
	dist distuv.Categorical
}

// NewRandom creates a new Random policy with a given seed
func NewRandom(seed uint64) *Random {
	source := rand.NewSource(seed)

	// Uniform probability over every legal action
	probs := make([]float64, pursuit.NumActions)
	for i := range probs {
		probs[i] = 1.0 / float64(pursuit.NumActions)
	}

	return &Random{seed, distuv.NewCategorical(probs, source)}
}

// SelectAction selects a random action
func (r *Random) SelectAction(mat.Matrix) (int, error) {
	return int(r.dist.Rand()), nil
}

// Seed returns the seed of the policy
func (r *Random) Seed() uint64 {
	return r.seed
}
