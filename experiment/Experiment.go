// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"

	"github.com/samuelfneumann/gopursuit/experiment/tracker"
	ts "github.com/samuelfneumann/gopursuit/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to their Trackers, which
// determine which data generated during the experiment is kept. The
// Run() method runs episodes until some ending condition is reached,
// and the RunEpisode() method runs a single episode.
//
// Both methods return early with the context's error once the context
// is done.
type Experiment interface {
	Run(ctx context.Context) error

	// RunEpisode returns the last TimeStep of the episode and whether
	// the experiment has reached its limits
	RunEpisode(ctx context.Context) (ts.TimeStep, bool, error)

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}
