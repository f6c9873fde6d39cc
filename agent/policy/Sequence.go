package policy

import (
	"github.com/samuelfneumann/gopursuit/environment/pursuit"
	"gonum.org/v1/gonum/mat"
)

// Sequence replays a fixed list of actions. Once the list is exhausted
// it stays in place.
type Sequence struct {
	actions []int
	next    int
}

// NewSequence returns a new Sequence which will replay actions in order
func NewSequence(actions ...int) *Sequence {
	a := make([]int, len(actions))
	copy(a, actions)
	return &Sequence{actions: a}
}

// SelectAction returns the next action of the sequence
func (s *Sequence) SelectAction(mat.Matrix) (int, error) {
	if s.next >= len(s.actions) {
		return int(pursuit.Stay), nil
	}

	action := s.actions[s.next]
	s.next++
	return action, nil
}

// Rewind restarts the sequence from its first action
func (s *Sequence) Rewind() {
	s.next = 0
}
