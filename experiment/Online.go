package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	env "github.com/samuelfneumann/gopursuit/environment"
	"github.com/samuelfneumann/gopursuit/experiment/tracker"
	"github.com/samuelfneumann/gopursuit/render"
	ts "github.com/samuelfneumann/gopursuit/timestep"
)

// Online is an Experiment that runs hunters online, each hunter acting
// through the policy bound to it by the environment.
//
// An Online experiment runs until it has taken a maximum number of
// environmental steps or finished a maximum number of episodes,
// whichever comes first. A limit of 0 means no limit.
type Online struct {
	env.Environment
	maxSteps        int
	maxEpisodes     int
	currentSteps    int
	currentEpisodes int

	trackers []tracker.Tracker
	renderer render.Renderer
	logger   *slog.Logger
	runID    uuid.UUID
}

var _ Experiment = &Online{}

// NewOnline creates and returns a new online experiment on a given
// environment. The steps and episodes parameters limit how long the
// experiment is run for, at least one of them must be positive. The
// t parameter is a slice of tracker.Tracker which determine what data
// is tracked.
func NewOnline(e env.Environment, steps, episodes int, logger *slog.Logger,
	t ...tracker.Tracker) (*Online, error) {
	if steps < 0 || episodes < 0 || (steps == 0 && episodes == 0) {
		return nil, &env.Error{
			Op: "newOnline",
			Err: fmt.Errorf("steps = %d, episodes = %d: %w", steps, episodes,
				env.ErrInvalidParameter),
		}
	}

	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.New()

	return &Online{
		Environment: e,
		maxSteps:    steps,
		maxEpisodes: episodes,
		trackers:    t,
		renderer:    render.None{},
		logger:      logger.With("run_id", runID.String()),
		runID:       runID,
	}, nil
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetRenderer sets the Renderer which is shown the global state of the
// environment at the start of each episode and after every step
func (o *Online) SetRenderer(r render.Renderer) {
	if r == nil {
		r = render.None{}
	}
	o.renderer = r
}

// RunID returns the unique identifier of the experiment, which tags
// all of its log records
func (o *Online) RunID() uuid.UUID {
	return o.runID
}

// Steps returns the number of environmental steps taken so far
func (o *Online) Steps() int {
	return o.currentSteps
}

// Episodes returns the number of episodes finished so far
func (o *Online) Episodes() int {
	return o.currentEpisodes
}

// RunEpisode resets the environment and runs a single episode of the
// experiment. It returns the last TimeStep taken, which does not end
// the episode if the step limit of the experiment was reached first,
// and whether the experiment has reached its limits.
func (o *Online) RunEpisode(ctx context.Context) (ts.TimeStep, bool, error) {
	if err := o.Environment.Reset(); err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("runEpisode: %w", err)
	}

	step := o.Environment.LastTimeStep()
	if err := o.observe(step); err != nil {
		return step, true, err
	}

	// Run the next timestep
	episodeReturn := 0.0
	for !step.Last() && !o.stepLimitReached() {
		if err := ctx.Err(); err != nil {
			return step, true, err
		}
		o.currentSteps++

		// Select actions, step in environment
		actions, err := o.Environment.SelectActions()
		if err != nil {
			return step, true, fmt.Errorf("runEpisode: %w", err)
		}
		step, _, err = o.Environment.Step(actions)
		if err != nil {
			return step, true, fmt.Errorf("runEpisode: %w", err)
		}

		episodeReturn += step.TotalReward()
		if err := o.observe(step); err != nil {
			return step, true, err
		}
	}

	if step.Last() {
		o.currentEpisodes++
		o.logger.Debug("episode ended",
			"episode", o.currentEpisodes,
			"steps", step.Number,
			"end", step.EndType().String(),
			"return", episodeReturn,
		)
	}

	// Return whether or not the experiment's limits have been reached
	return step, o.stepLimitReached() || o.episodeLimitReached(), nil
}

// Run runs the entire experiment until one of its limits is reached
func (o *Online) Run(ctx context.Context) error {
	o.logger.Info("run started",
		"max_steps", o.maxSteps,
		"max_episodes", o.maxEpisodes,
	)

	ended := false
	for !ended {
		var err error
		if _, ended, err = o.RunEpisode(ctx); err != nil {
			o.logger.Error("run failed", "error", err,
				"steps", o.currentSteps, "episodes", o.currentEpisodes)
			return err
		}
	}

	o.logger.Info("run finished",
		"steps", o.currentSteps,
		"episodes", o.currentEpisodes,
	)
	return nil
}

// observe sends the current timestep to each tracker and renders the
// current state
func (o *Online) observe(t ts.TimeStep) error {
	for _, tr := range o.trackers {
		tr.Track(t)
	}

	if err := o.renderer.Render(o.Environment.State()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (o *Online) stepLimitReached() bool {
	return o.maxSteps > 0 && o.currentSteps >= o.maxSteps
}

func (o *Online) episodeLimitReached() bool {
	return o.maxEpisodes > 0 && o.currentEpisodes >= o.maxEpisodes
}
