// Package timestep implements timesteps of the hunters-environment
// interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/gopursuit/utils/tensorutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. Only a TimeStep of StepType
// Last has an EndType other than Unended.
type EndType int

const (
	Unended EndType = iota
	Timeout
	Capture
)

func (e EndType) String() string {
	switch e {
	case Timeout:
		return "Timeout"
	case Capture:
		return "Capture"
	default:
		return "Unended"
	}
}

// TimeStep packages together a single timestep in a pursuit episode.
// Rewards and Observations hold one entry per hunter, in hunter order.
type TimeStep struct {
	StepType     StepType
	Rewards      []float64
	Observations []*mat.Dense
	Number       int
	endType      EndType
}

// New returns a new TimeStep
func New(t StepType, r []float64, o []*mat.Dense, n int) TimeStep {
	return TimeStep{
		StepType:     t,
		Rewards:      r,
		Observations: o,
		Number:       n,
	}
}

// First returns whether a TimeStep is the first in an episode
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records why the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns why the episode ended, or Unended
func (t *TimeStep) EndType() EndType {
	return t.endType
}

// TotalReward returns the sum of the rewards of all hunters
func (t *TimeStep) TotalReward() float64 {
	if len(t.Rewards) == 0 {
		return 0
	}
	return floats.Sum(t.Rewards)
}

// ObservationTensor stacks the per-hunter observations into a single
// tensor of shape (hunters, rows, cols)
func (t *TimeStep) ObservationTensor() (*tensor.Dense, error) {
	return tensorutils.Stack(t.Observations)
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Rewards:  %v  |  End: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Rewards, t.endType, t.Number)
}
