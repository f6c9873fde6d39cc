// Package environment outlines the interfaces and structs needed to
// implement concrete multi-agent environments
package environment

import (
	"github.com/samuelfneumann/gopursuit/timestep"
	"gonum.org/v1/gonum/mat"
)

// Ender determines when an episode should end. If End returns true, it
// has already adjusted the TimeStep so that its StepType is
// timestep.Last and its EndType records why the episode ended.
type Ender interface {
	End(t *timestep.TimeStep) bool
}

// Environment implements a simulated multi-agent environment in which
// every agent takes one discrete action per step.
type Environment interface {
	// Reset starts a new episode. No TimeStep is returned, the first
	// observations are produced by the first call to Step.
	Reset() error

	// Step applies one action per agent and returns the next TimeStep
	// and whether the episode has ended.
	Step(actions []int) (timestep.TimeStep, bool, error)

	// SelectActions asks each agent's bound decision provider for its
	// next action.
	SelectActions() ([]int, error)

	// State returns a copy of the current global view of the world
	State() *mat.Dense

	// LastTimeStep returns the most recent TimeStep
	LastTimeStep() timestep.TimeStep

	ActionSpec() Spec
	ObservationSpec() Spec
	RewardSpec() Spec
}
