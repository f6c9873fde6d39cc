package pursuit

import (
	"github.com/samuelfneumann/gopursuit/environment"
	"github.com/samuelfneumann/gopursuit/environment/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Capture implements the cooperative capture task. An episode is won
// when some hunter stands on the prey's cell. At that point every
// hunter strictly closer than the reward distance (Euclidean) to the
// prey is rewarded with the number of hunters that are within range,
// and all other hunters receive 0.
type Capture struct {
	rewardDistance float64
	hunters        int
}

// NewCapture creates and returns a new Capture task for a given number
// of hunters
func NewCapture(rewardDistance float64, hunters int) *Capture {
	return &Capture{rewardDistance, hunters}
}

// RewardDistance returns the distance threshold for rewards
func (c *Capture) RewardDistance() float64 {
	return c.rewardDistance
}

// Captured returns whether any hunter stands on the prey
func (c *Capture) Captured(hunters []grid.Position, prey grid.Position) bool {
	for _, h := range hunters {
		if h == prey {
			return true
		}
	}
	return false
}

// InRange returns whether a hunter at h is within reward distance of
// the prey at prey
func (c *Capture) InRange(h, prey grid.Position) bool {
	return distance(h, prey) < c.rewardDistance
}

// GetReward returns the reward of each hunter: the in-range indicator
// of the hunter multiplied by the number of in-range hunters
func (c *Capture) GetReward(hunters []grid.Position,
	prey grid.Position) []float64 {
	rewards := make([]float64, len(hunters))
	for i, h := range hunters {
		if c.InRange(h, prey) {
			rewards[i] = 1.0
		}
	}

	multiplier := floats.Sum(rewards)
	floats.Scale(multiplier, rewards)

	return rewards
}

// Min returns the minimum reward a hunter can receive
func (c *Capture) Min() float64 {
	return 0.0
}

// Max returns the maximum reward a hunter can receive, attained when
// every hunter is in range
func (c *Capture) Max() float64 {
	return float64(c.hunters)
}

// RewardSpec returns the reward specification of the task
func (c *Capture) RewardSpec() environment.Spec {
	return environment.NewUniformSpec(c.hunters, environment.Reward,
		c.Min(), c.Max(), environment.Discrete)
}

// distance returns the Euclidean distance between two positions
func distance(a, b grid.Position) float64 {
	return r2.Norm(r2.Sub(vec(a), vec(b)))
}

func vec(p grid.Position) r2.Vec {
	return r2.Vec{X: float64(p.Row), Y: float64(p.Col)}
}
