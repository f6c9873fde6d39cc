// Package agent defines the decision provider interface that drives
// hunters
package agent

import "gonum.org/v1/gonum/mat"

// Policy represents a decision provider bound to a single hunter.
//
// SelectAction returns a discrete action index given the hunter's
// current observation: the grid overlaid with the prey (3) and the
// hunter itself (2). Policies are free to ignore the observation.
type Policy interface {
	SelectAction(obs mat.Matrix) (int, error)
}

// PolicyFunc adapts an ordinary function to a Policy
type PolicyFunc func(obs mat.Matrix) (int, error)

// SelectAction calls f(obs)
func (f PolicyFunc) SelectAction(obs mat.Matrix) (int, error) {
	return f(obs)
}

// Blind adapts a zero-argument action source, which never looks at the
// observation, to a Policy
func Blind(f func() int) Policy {
	return PolicyFunc(func(mat.Matrix) (int, error) {
		return f(), nil
	})
}
