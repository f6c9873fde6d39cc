package pursuit

import (
	"github.com/samuelfneumann/gopursuit/agent"
	"github.com/samuelfneumann/gopursuit/environment/grid"
)

// hunter is a pursuing agent. Its position is owned and moved by the
// Pursuit environment, its policy is only ever queried.
type hunter struct {
	position grid.Position
	policy   agent.Policy
}
