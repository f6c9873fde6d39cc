package envconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	env "github.com/samuelfneumann/gopursuit/environment"
	"gonum.org/v1/gonum/mat"
)

func TestDecodeHCL(t *testing.T) {
	src := []byte(`
size            = 6
wall_density    = 0.1
hunters         = 2
reward_distance = 2.5
seed            = 17
policies        = ["chase", "random"]
`)

	c, err := Decode("pursuit.hcl", src)
	if err != nil {
		t.Fatal(err)
	}

	if c.Size != 6 || c.WallDensity != 0.1 || c.Hunters != 2 ||
		c.RewardDistance != 2.5 || c.Seed != 17 {
		t.Errorf("decoded %+v", c)
	}
	if c.Duration != DefaultDuration {
		t.Errorf("duration = %d, want default %d", c.Duration,
			DefaultDuration)
	}

	names := c.PolicyNames()
	if len(names) != 2 || names[0] != Chase || names[1] != Random {
		t.Errorf("policies = %v", names)
	}
}

func TestDecodeJSON(t *testing.T) {
	src := []byte(`{"hunters": 3, "duration": 50, "policies": ["stay"]}`)

	c, err := Decode("pursuit.json", src)
	if err != nil {
		t.Fatal(err)
	}

	if c.Hunters != 3 || c.Duration != 50 || c.Size != DefaultSize {
		t.Errorf("decoded %+v", c)
	}
	for _, name := range c.PolicyNames() {
		if name != Stay {
			t.Errorf("policy %v, want %v", name, Stay)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"size", `size = 0`},
		{"density", `wall_density = 1.5`},
		{"hunters", `hunters = 0`},
		{"duration", `duration = -1`},
		{"distance", `reward_distance = -2`},
		{"policy count", "hunters = 3\npolicies = [\"chase\", \"stay\"]"},
		{"policy name", `policies = ["telepathic"]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode("pursuit.hcl", []byte(test.src))
			if !env.IsInvalidParameter(err) {
				t.Errorf("err = %v, want invalid parameter", err)
			}
		})
	}

	if _, err := Decode("pursuit.hcl", []byte(`size = `)); err == nil {
		t.Error("malformed configuration accepted")
	}
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "pursuit.hcl")
	if err := os.WriteFile(filename, []byte("size = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if c.Size != 5 {
		t.Errorf("size = %d, want 5", c.Size)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.hcl")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestCreate(t *testing.T) {
	c := Default()
	c.Hunters = 2
	c.Seed = 3

	p1, err := c.Create(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := c.Create(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if p1.NumHunters() != 2 || p1.Duration() != DefaultDuration {
		t.Errorf("created %v", p1)
	}
	if !mat.Equal(p1.State(), p2.State()) {
		t.Error("equal configurations created different environments")
	}

	a1, err := p1.SelectActions()
	if err != nil {
		t.Fatal(err)
	}
	a2, err := p2.SelectActions()
	if err != nil {
		t.Fatal(err)
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("equal configurations select actions %v and %v", a1, a2)
		}
	}
}

func TestCreateKeyboard(t *testing.T) {
	c := Default()
	c.Hunters = 2
	c.Policies = []string{string(Keyboard)}

	if _, err := c.Create(nil, nil); !env.IsInvalidParameter(err) {
		t.Errorf("err = %v, want invalid parameter", err)
	}

	p, err := c.Create(strings.NewReader("3\n4\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	actions, err := p.SelectActions()
	if err != nil {
		t.Fatal(err)
	}
	if actions[0] != 3 || actions[1] != 4 {
		t.Errorf("actions = %v, want [3 4]", actions)
	}
}
