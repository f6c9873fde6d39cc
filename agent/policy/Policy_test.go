package policy

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/samuelfneumann/gopursuit/agent"
	"github.com/samuelfneumann/gopursuit/environment/grid"
	"github.com/samuelfneumann/gopursuit/environment/pursuit"
	"gonum.org/v1/gonum/mat"
)

var (
	_ agent.Policy = &Random{}
	_ agent.Policy = Chase{}
	_ agent.Policy = &Keyboard{}
	_ agent.Policy = &Sequence{}
)

func TestRandom(t *testing.T) {
	r1, r2 := NewRandom(5), NewRandom(5)
	counts := make([]int, pursuit.NumActions)

	for i := 0; i < 1000; i++ {
		a1, _ := r1.SelectAction(nil)
		a2, _ := r2.SelectAction(nil)
		if a1 != a2 {
			t.Fatalf("equally seeded policies diverged at step %d", i)
		}
		if !pursuit.Action(a1).Valid() {
			t.Fatalf("illegal action %d", a1)
		}
		counts[a1]++
	}

	for a, c := range counts {
		if c == 0 {
			t.Errorf("action %v never selected", pursuit.Action(a))
		}
	}
}

func TestChase(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want pursuit.Action
	}{
		{
			name: "straight",
			rows: [][]float64{
				{2, 0, 3},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: pursuit.Right,
		},
		{
			name: "tie broken in action order",
			rows: [][]float64{
				{0, 0, 3},
				{0, 2, 0},
				{0, 0, 0},
			},
			want: pursuit.Up,
		},
		{
			name: "around wall",
			rows: [][]float64{
				{0, 1, 3},
				{0, 2, 0},
				{0, 0, 0},
			},
			want: pursuit.Right,
		},
		{
			name: "blocked by wall",
			rows: [][]float64{
				{2, 1, 3},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: pursuit.Stay,
		},
		{
			name: "upwards",
			rows: [][]float64{
				{0, 3, 0},
				{0, 0, 0},
				{0, 2, 0},
			},
			want: pursuit.Up,
		},
		{
			name: "on prey",
			rows: [][]float64{
				{0, 0, 0},
				{0, 2, 0},
				{0, 0, 0},
			},
			want: pursuit.Stay,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			obs := mat.NewDense(3, 3, nil)
			for i := range test.rows {
				obs.SetRow(i, test.rows[i])
			}

			got, err := NewChase().SelectAction(obs)
			if err != nil {
				t.Fatal(err)
			}
			if pursuit.Action(got) != test.want {
				t.Errorf("action = %v, want %v", pursuit.Action(got), test.want)
			}
		})
	}
}

func TestChaseCatchesPrey(t *testing.T) {
	g, err := grid.New(8, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	placer := grid.NewFixedPlacer(grid.Position{Row: 6, Col: 5},
		grid.Position{Row: 0, Col: 0})

	p, err := pursuit.New(g, 1, []agent.Policy{NewChase()}, 100, 4, placer)
	if err != nil {
		t.Fatal(err)
	}

	done := false
	for !done {
		actions, err := p.SelectActions()
		if err != nil {
			t.Fatal(err)
		}

		step, d, err := p.Step(actions)
		if err != nil {
			t.Fatal(err)
		}
		done = d

		if done && step.Rewards[0] != 1 {
			t.Errorf("episode ended without capture: %v", step)
		}
	}

	// 11 moves to reach the prey, the capture is reported on the next
	if p.StepCount() != 12 {
		t.Errorf("capture after %d steps, want 12", p.StepCount())
	}
}

func TestKeyboard(t *testing.T) {
	in := strings.NewReader("1\n\nup\n7\n-1\n 4 \n")
	var prompt bytes.Buffer
	k := NewKeyboard("hunter 0", in, &prompt)

	obs := mat.NewDense(2, 2, []float64{2, 0, 0, 3})
	for _, want := range []int{1, 4} {
		got, err := k.SelectAction(obs)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("action = %d, want %d", got, want)
		}
	}

	if _, err := k.SelectAction(obs); !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want %v", err, ErrNoInput)
	}
	if !strings.Contains(prompt.String(), "hunter 0 action") {
		t.Errorf("prompt not written: %q", prompt.String())
	}
	if !strings.Contains(prompt.String(), `not an action "up"`) {
		t.Errorf("bad input not reported: %q", prompt.String())
	}
	for _, bad := range []string{`"7"`, `"-1"`} {
		if !strings.Contains(prompt.String(), "not an action "+bad) {
			t.Errorf("out of range action %v not reported: %q", bad,
				prompt.String())
		}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(int(pursuit.Up), int(pursuit.Left))

	want := []pursuit.Action{pursuit.Up, pursuit.Left, pursuit.Stay,
		pursuit.Stay}
	for i := range want {
		got, _ := s.SelectAction(nil)
		if pursuit.Action(got) != want[i] {
			t.Errorf("action %d = %v, want %v", i, pursuit.Action(got),
				want[i])
		}
	}

	s.Rewind()
	if got, _ := s.SelectAction(nil); pursuit.Action(got) != pursuit.Up {
		t.Errorf("rewound sequence started with %v", pursuit.Action(got))
	}
}
