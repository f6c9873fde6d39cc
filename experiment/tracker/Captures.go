package tracker

import "github.com/samuelfneumann/gopursuit/timestep"

// Captures tracks how episodes end
type Captures struct {
	episodes int
	captures int
}

// NewCaptures returns a new Captures Tracker
func NewCaptures() *Captures {
	return &Captures{}
}

// Track records the end of an episode if t is its last step
func (c *Captures) Track(t timestep.TimeStep) {
	if !t.Last() {
		return
	}

	c.episodes++
	if t.EndType() == timestep.Capture {
		c.captures++
	}
}

// Episodes returns the number of finished episodes
func (c *Captures) Episodes() int {
	return c.episodes
}

// Captures returns the number of episodes which ended with a capture
func (c *Captures) Captures() int {
	return c.captures
}

// Rate returns the fraction of finished episodes which ended with a
// capture, or 0 if no episode has finished
func (c *Captures) Rate() float64 {
	if c.episodes == 0 {
		return 0
	}
	return float64(c.captures) / float64(c.episodes)
}
