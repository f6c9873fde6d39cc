// Package envconfig provides configuration structs for configuring
// pursuit environments and the policies of their hunters.
// Configurations in this package are JSON serializable and can be
// loaded from HCL or JSON files.
package envconfig

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/samuelfneumann/gopursuit/agent"
	"github.com/samuelfneumann/gopursuit/agent/policy"
	env "github.com/samuelfneumann/gopursuit/environment"
	"github.com/samuelfneumann/gopursuit/environment/grid"
	"github.com/samuelfneumann/gopursuit/environment/pursuit"
)

// PolicyName stores the name of policies that can be configured with
// this package
type PolicyName string

// Policies available for configuration
const (
	Random   PolicyName = "random"
	Chase    PolicyName = "chase"
	Stay     PolicyName = "stay"
	Keyboard PolicyName = "keyboard"
)

// Default parameters of a pursuit environment
const (
	DefaultSize           = 10
	DefaultWallDensity    = 0.2
	DefaultHunters        = 1
	DefaultDuration       = 1000
	DefaultRewardDistance = 4.0
)

// Config implements a specific configuration of a pursuit environment.
// Every attribute is optional when decoding, missing attributes keep
// their Default values.
//
// Policies names the policy of each hunter. A single name is used for
// every hunter and no names at all means that every hunter is Random.
type Config struct {
	Size           int      `hcl:"size,optional" json:"size"`
	WallDensity    float64  `hcl:"wall_density,optional" json:"wall_density"`
	Hunters        int      `hcl:"hunters,optional" json:"hunters"`
	Duration       int      `hcl:"duration,optional" json:"duration"`
	RewardDistance float64  `hcl:"reward_distance,optional" json:"reward_distance"`
	Seed           uint64   `hcl:"seed,optional" json:"seed"`
	Policies       []string `hcl:"policies,optional" json:"policies"`
}

// Default returns the default Config: a 10 x 10 grid with wall density
// 0.2 and a single randomly acting hunter, rewarded within distance 4,
// for episodes of at most 1000 steps
func Default() Config {
	return Config{
		Size:           DefaultSize,
		WallDensity:    DefaultWallDensity,
		Hunters:        DefaultHunters,
		Duration:       DefaultDuration,
		RewardDistance: DefaultRewardDistance,
	}
}

// Load reads a Config from an HCL or JSON file, depending on the
// extension of filename (.hcl or .json), over the Default Config.
func Load(filename string) (Config, error) {
	c := Default()
	if err := hclsimple.DecodeFile(filename, nil, &c); err != nil {
		return Config{}, &env.Error{Op: "load", Err: err}
	}
	return c, c.Validate()
}

// Decode reads a Config from src over the Default Config. The filename
// is only used to choose between HCL and JSON syntax and to report
// errors.
func Decode(filename string, src []byte) (Config, error) {
	c := Default()
	if err := hclsimple.Decode(filename, src, nil, &c); err != nil {
		return Config{}, &env.Error{Op: "decode", Err: err}
	}
	return c, c.Validate()
}

// Validate checks that the Config describes a constructible
// environment
func (c Config) Validate() error {
	var err error
	switch {
	case c.Size < 1:
		err = fmt.Errorf("size %d < 1", c.Size)

	case math.IsNaN(c.WallDensity) || c.WallDensity < 0 || c.WallDensity > 1:
		err = fmt.Errorf("wall density %v ∉ [0, 1]", c.WallDensity)

	case c.Hunters < 1:
		err = fmt.Errorf("hunters %d < 1", c.Hunters)

	case c.Duration < 1:
		err = fmt.Errorf("duration %d < 1", c.Duration)

	case math.IsNaN(c.RewardDistance) || c.RewardDistance < 0:
		err = fmt.Errorf("reward distance %v < 0", c.RewardDistance)

	case len(c.Policies) > 1 && len(c.Policies) != c.Hunters:
		err = fmt.Errorf("have %d policies for %d hunters", len(c.Policies),
			c.Hunters)
	}
	if err != nil {
		return &env.Error{
			Op:  "validate",
			Err: fmt.Errorf("%v: %w", err, env.ErrInvalidParameter),
		}
	}

	for _, name := range c.Policies {
		if !valid(PolicyName(name)) {
			return &env.Error{
				Op: "validate",
				Err: fmt.Errorf("no such policy %q: %w", name,
					env.ErrInvalidParameter),
			}
		}
	}
	return nil
}

func valid(p PolicyName) bool {
	switch p {
	case Random, Chase, Stay, Keyboard:
		return true
	}
	return false
}

// PolicyNames returns the name of the policy of each hunter
func (c Config) PolicyNames() []PolicyName {
	names := make([]PolicyName, c.Hunters)
	for i := range names {
		switch len(c.Policies) {
		case 0:
			names[i] = Random
		case 1:
			names[i] = PolicyName(c.Policies[0])
		default:
			names[i] = PolicyName(c.Policies[i])
		}
	}
	return names
}

// Create returns the environment described by the Config. Keyboard
// policies read their actions from in and prompt on out, other
// policies ignore in and out.
//
// The grid, the placement of agents and each random policy are seeded
// with distinct seeds derived from the Config's Seed, so that a Config
// always creates the same sequence of episodes.
func (c Config) Create(in io.Reader, out io.Writer) (*pursuit.Pursuit,
	error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(c.Size, c.WallDensity, c.Seed)
	if err != nil {
		return nil, err
	}

	policies, err := c.CreatePolicies(in, out)
	if err != nil {
		return nil, err
	}
	placer := grid.NewUniformPlacer(c.Seed + 1)

	return pursuit.New(g, c.Hunters, policies, c.Duration, c.RewardDistance,
		placer)
}

// CreatePolicies returns the policy of each hunter. Keyboard policies
// share a single buffered reader over in.
func (c Config) CreatePolicies(in io.Reader, out io.Writer) ([]agent.Policy,
	error) {
	var reader *bufio.Reader
	if in != nil {
		reader = bufio.NewReader(in)
	}

	names := c.PolicyNames()
	policies := make([]agent.Policy, len(names))
	for i, name := range names {
		switch name {
		case Random:
			policies[i] = policy.NewRandom(c.Seed + 2 + uint64(i))

		case Chase:
			policies[i] = policy.NewChase()

		case Stay:
			policies[i] = policy.NewSequence()

		case Keyboard:
			if reader == nil {
				return nil, &env.Error{
					Op: "createPolicies",
					Err: fmt.Errorf("keyboard policy without input: %w",
						env.ErrInvalidParameter),
				}
			}
			policies[i] = policy.NewKeyboard(fmt.Sprintf("hunter %d", i),
				reader, out)

		default:
			panic(fmt.Sprintf("createPolicies: no such policy %v", name))
		}
	}
	return policies, nil
}
