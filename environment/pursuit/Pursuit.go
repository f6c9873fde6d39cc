// Package pursuit implements the multi-agent pursuit environment. In
// this environment, one or more hunters move on a Grid with walls and
// try to catch a static prey.
//
// Each hunter takes one discrete action per step:
//
//	Action	Meaning
//	  0		Stay
//	  1		Up    (row - 1)
//	  2		Down  (row + 1)
//	  3		Left  (col - 1)
//	  4		Right (col + 1)
//
// A move into a wall or off the grid leaves the hunter where it is.
// Hunters may share cells. Actions outside the table are rejected with
// an error.
//
// At the start of every step, before hunters move, the environment
// checks whether a hunter stands on the prey. If so, the episode ends
// and the hunters are rewarded according to the Capture task; otherwise
// every hunter receives 0. Episodes also end after a fixed number of
// steps.
//
// Each hunter observes the grid with the prey marked 3 and itself
// marked 2. Other hunters are not visible to it.
package pursuit

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gopursuit/agent"
	env "github.com/samuelfneumann/gopursuit/environment"
	"github.com/samuelfneumann/gopursuit/environment/grid"
	ts "github.com/samuelfneumann/gopursuit/timestep"
	"gonum.org/v1/gonum/mat"
)

// Phase is the lifecycle state of an episode
type Phase int

const (
	Ready Phase = iota
	Running
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	default:
		return "Terminated"
	}
}

// Pursuit implements the pursuit environment. Pursuit is not safe for
// concurrent use, though many Pursuits may share one Grid.
//
// Pursuit implements the environment.Environment interface
type Pursuit struct {
	*Capture
	grid      *grid.Grid
	placer    grid.Placer
	stepLimit env.StepLimit

	hunters   []*hunter
	prey      grid.Position
	stepCount int
	done      bool

	state    *mat.Dense
	lastStep ts.TimeStep
}

var _ env.Environment = &Pursuit{}

// New constructs a new Pursuit environment on grid g with hunterCount
// hunters, the i-th of which is driven by policies[i]. Episodes are
// forcibly ended after duration steps. The prey and then each hunter
// are placed on distinct free cells drawn from placer.
//
// The environment starts ready to use, the first observations are
// returned by the first call to Step.
func New(g *grid.Grid, hunterCount int, policies []agent.Policy,
	duration int, rewardDistance float64, placer grid.Placer) (*Pursuit,
	error) {
	if err := validate(g, hunterCount, policies, duration, rewardDistance,
		placer); err != nil {
		return nil, &env.Error{Op: "new", Err: err}
	}

	hunters := make([]*hunter, hunterCount)
	for i := range hunters {
		hunters[i] = &hunter{policy: policies[i]}
	}

	p := &Pursuit{
		Capture:   NewCapture(rewardDistance, hunterCount),
		grid:      g,
		placer:    placer,
		stepLimit: env.NewStepLimit(duration),
		hunters:   hunters,
	}

	if err := p.reset(); err != nil {
		return nil, &env.Error{Op: "new", Err: err}
	}
	return p, nil
}

// validate checks the arguments to New
func validate(g *grid.Grid, hunterCount int, policies []agent.Policy,
	duration int, rewardDistance float64, placer grid.Placer) error {
	switch {
	case g == nil:
		return fmt.Errorf("nil grid: %w", env.ErrInvalidParameter)

	case placer == nil:
		return fmt.Errorf("nil placer: %w", env.ErrInvalidParameter)

	case hunterCount < 1:
		return fmt.Errorf("hunter count %d < 1: %w", hunterCount,
			env.ErrInvalidParameter)

	case len(policies) != hunterCount:
		return fmt.Errorf("have %d policies for %d hunters: %w",
			len(policies), hunterCount, env.ErrInvalidParameter)

	case duration < 1:
		return fmt.Errorf("duration %d < 1: %w", duration,
			env.ErrInvalidParameter)

	case math.IsNaN(rewardDistance) || rewardDistance < 0:
		return fmt.Errorf("reward distance %v < 0: %w", rewardDistance,
			env.ErrInvalidParameter)
	}

	for i := range policies {
		if policies[i] == nil {
			return fmt.Errorf("nil policy for hunter %d: %w", i,
				env.ErrInvalidParameter)
		}
	}
	return nil
}

// Reset starts a new episode on the same Grid: the prey and hunters are
// placed anew and the step counter is cleared. Reset returns no
// observations, these are returned by the next call to Step.
func (p *Pursuit) Reset() error {
	if err := p.reset(); err != nil {
		return &env.Error{Op: "reset", Err: err}
	}
	return nil
}

func (p *Pursuit) reset() error {
	positions, err := p.placer.Place(p.grid, len(p.hunters)+1)
	if err != nil {
		return err
	}
	if err := p.checkPlacement(positions); err != nil {
		return err
	}

	p.prey = positions[0]
	for i, h := range p.hunters {
		h.position = positions[i+1]
	}

	p.stepCount = 0
	p.done = false
	p.state = p.snapshot()
	p.lastStep = ts.New(ts.First, make([]float64, len(p.hunters)),
		p.observations(), 0)

	return nil
}

// checkPlacement ensures a Placer kept its contract
func (p *Pursuit) checkPlacement(positions []grid.Position) error {
	if len(positions) != len(p.hunters)+1 {
		return fmt.Errorf("placer returned %d positions, want %d: %w",
			len(positions), len(p.hunters)+1, env.ErrUnsatisfiablePlacement)
	}

	seen := make(map[grid.Position]struct{}, len(positions))
	for _, pos := range positions {
		if !p.ValidatePosition(pos) {
			return fmt.Errorf("position %v is not free: %w", pos,
				env.ErrUnsatisfiablePlacement)
		}
		if _, ok := seen[pos]; ok {
			return fmt.Errorf("position %v used twice: %w", pos,
				env.ErrUnsatisfiablePlacement)
		}
		seen[pos] = struct{}{}
	}
	return nil
}

// ValidatePosition returns whether a hunter may stand at pos, that is
// whether pos is on the grid and not a wall
func (p *Pursuit) ValidatePosition(pos grid.Position) bool {
	return p.grid.IsFree(pos)
}

// Step takes one environmental step given one action per hunter and
// returns the next TimeStep and whether the episode has ended.
//
// The capture check and rewards use the hunters' positions before this
// step's actions are applied, the observations use the positions after.
// When no capture occurs, every hunter receives a reward of 0.
//
// Once an episode has ended, Step leaves the environment untouched and
// returns a last TimeStep with zero rewards until Reset is called.
func (p *Pursuit) Step(actions []int) (ts.TimeStep, bool, error) {
	if err := p.checkActions(actions); err != nil {
		return ts.TimeStep{}, p.done, &env.Error{Op: "step", Err: err}
	}

	if p.done {
		return p.terminalStep(), true, nil
	}

	p.stepCount++
	step := ts.New(ts.Mid, make([]float64, len(p.hunters)), nil,
		p.stepCount)
	if p.stepLimit.End(&step) {
		p.done = true
	}

	positions := p.Hunters()
	if p.Captured(positions, p.prey) {
		step.Rewards = p.GetReward(positions, p.prey)
		step.StepType = ts.Last
		step.SetEnd(ts.Capture)
		p.done = true
	}

	p.applyActions(actions)

	step.Observations = p.observations()
	p.state = p.snapshot()
	p.lastStep = step

	return copyStep(step), p.done, nil
}

// checkActions ensures that there is one legal action per hunter
func (p *Pursuit) checkActions(actions []int) error {
	if len(actions) != len(p.hunters) {
		return fmt.Errorf("have %d actions for %d hunters: %w",
			len(actions), len(p.hunters), env.ErrInvalidAction)
	}
	for i, a := range actions {
		if !Action(a).Valid() {
			return fmt.Errorf("hunter %d: illegal action %v ∉ [%d, %d]: %w",
				i, a, MinDiscreteAction, MaxDiscreteAction,
				env.ErrInvalidAction)
		}
	}
	return nil
}

// applyActions moves each hunter, in order, by the displacement of its
// action if the destination is a legal position
func (p *Pursuit) applyActions(actions []int) {
	for i, h := range p.hunters {
		dRow, dCol := Action(actions[i]).Displacement()
		if next := h.position.Add(dRow, dCol); p.ValidatePosition(next) {
			h.position = next
		}
	}
}

// terminalStep returns the TimeStep reported for steps taken after the
// episode has ended
func (p *Pursuit) terminalStep() ts.TimeStep {
	step := ts.New(ts.Last, make([]float64, len(p.hunters)),
		p.observations(), p.stepCount)
	step.SetEnd(p.lastStep.EndType())
	return step
}

// CalculateReward returns the rewards the hunters would receive for a
// capture at their current positions
func (p *Pursuit) CalculateReward() []float64 {
	return p.GetReward(p.Hunters(), p.prey)
}

// SelectActions asks the policy of each hunter, in order, for an action
// given that hunter's current observation
func (p *Pursuit) SelectActions() ([]int, error) {
	actions := make([]int, len(p.hunters))
	for i, h := range p.hunters {
		a, err := h.policy.SelectAction(p.Observation(i))
		if err != nil {
			return nil, &env.Error{
				Op:  "selectActions",
				Err: fmt.Errorf("hunter %d: %w", i, err),
			}
		}
		actions[i] = a
	}
	return actions, nil
}

// Observation returns the current observation of hunter i: the grid
// with the prey marked and hunter i marked. Observation panics if i is
// not a hunter index.
func (p *Pursuit) Observation(i int) *mat.Dense {
	return p.grid.Overlay(p.prey, p.hunters[i].position)
}

// observations returns the observations of all hunters
func (p *Pursuit) observations() []*mat.Dense {
	obs := make([]*mat.Dense, len(p.hunters))
	for i := range p.hunters {
		obs[i] = p.Observation(i)
	}
	return obs
}

// snapshot returns the grid with the prey and then all hunters marked
func (p *Pursuit) snapshot() *mat.Dense {
	return p.grid.Overlay(p.prey, p.Hunters()...)
}

// State returns a copy of the current global view of the episode: the
// grid with the prey marked 3 and every hunter marked 2. A hunter on
// the prey hides it.
func (p *Pursuit) State() *mat.Dense {
	return mat.DenseCopyOf(p.state)
}

// LastTimeStep returns the most recent TimeStep. Directly after
// construction or Reset this is a First TimeStep holding the starting
// observations.
func (p *Pursuit) LastTimeStep() ts.TimeStep {
	return copyStep(p.lastStep)
}

// Hunters returns the current positions of the hunters, in order
func (p *Pursuit) Hunters() []grid.Position {
	positions := make([]grid.Position, len(p.hunters))
	for i, h := range p.hunters {
		positions[i] = h.position
	}
	return positions
}

// NumHunters returns the number of hunters
func (p *Pursuit) NumHunters() int {
	return len(p.hunters)
}

// Prey returns the position of the prey
func (p *Pursuit) Prey() grid.Position {
	return p.prey
}

// StepCount returns the number of steps taken since the last reset
func (p *Pursuit) StepCount() int {
	return p.stepCount
}

// Duration returns the maximum number of steps in an episode
func (p *Pursuit) Duration() int {
	return p.stepLimit.Steps()
}

// Done returns whether the current episode has ended
func (p *Pursuit) Done() bool {
	return p.done
}

// Phase returns the lifecycle state of the current episode
func (p *Pursuit) Phase() Phase {
	switch {
	case p.done:
		return Terminated
	case p.stepCount > 0:
		return Running
	default:
		return Ready
	}
}

// Grid returns the grid the environment is played on
func (p *Pursuit) Grid() *grid.Grid {
	return p.grid
}

// ActionSpec returns the action specification of the environment: one
// discrete action in [0, 4] per hunter
func (p *Pursuit) ActionSpec() env.Spec {
	return env.NewUniformSpec(len(p.hunters), env.Action,
		float64(MinDiscreteAction), float64(MaxDiscreteAction), env.Discrete)
}

// ObservationSpec returns the observation specification of a single
// hunter's flattened observation
func (p *Pursuit) ObservationSpec() env.Spec {
	size := p.grid.Size()
	return env.NewUniformSpec(size*size, env.Observation, grid.Free,
		grid.Prey, env.Discrete)
}

func (p *Pursuit) String() string {
	msg := "Pursuit  |  Step: %d/%d  |  Prey: %v  |  Hunters: %v  |  " +
		"Phase: %v"

	return fmt.Sprintf(msg, p.stepCount, p.Duration(), p.prey, p.Hunters(),
		p.Phase())
}

// copyStep returns a copy of t which shares no memory with t
func copyStep(t ts.TimeStep) ts.TimeStep {
	rewards := make([]float64, len(t.Rewards))
	copy(rewards, t.Rewards)

	obs := make([]*mat.Dense, len(t.Observations))
	for i := range t.Observations {
		obs[i] = mat.DenseCopyOf(t.Observations[i])
	}

	step := ts.New(t.StepType, rewards, obs, t.Number)
	step.SetEnd(t.EndType())
	return step
}
