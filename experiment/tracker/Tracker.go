// Package tracker implements Trackers, which track data from the
// TimeSteps of an experiment
package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/gopursuit/timestep"
	"gonum.org/v1/gonum/stat"
)

// Interface Tracker keeps track of experiment data. Each TimeStep of an
// experiment, including the first of each episode, is sent to Track in
// order.
type Tracker interface {
	Track(t ts.TimeStep)
}

// episodeEnd adapts a function to a Tracker which is only notified of
// the last TimeStep of each episode
type episodeEnd func(ts.TimeStep)

// OnEpisodeEnd returns a Tracker which calls f with the last TimeStep
// of each episode
func OnEpisodeEnd(f func(ts.TimeStep)) Tracker {
	return episodeEnd(f)
}

// Track calls the underlying function if t is the last step of an
// episode
func (e episodeEnd) Track(t ts.TimeStep) {
	if t.Last() {
		e(t)
	}
}

// Summary summarizes per-episode data
type Summary struct {
	Episodes int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

// Summarize returns the summary statistics of data. The standard
// deviation of fewer than two values is 0.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	s := Summary{Episodes: len(data), Min: data[0], Max: data[0]}
	if len(data) == 1 {
		s.Mean = data[0]
	} else {
		s.Mean, s.StdDev = stat.MeanStdDev(data, nil)
	}

	for _, v := range data[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes: %d  |  mean: %.3f ± %.3f  |  "+
		"min: %.3f  |  max: %.3f", s.Episodes, s.Mean, s.StdDev, s.Min, s.Max)
}
