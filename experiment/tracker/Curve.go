package tracker

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveCurve plots per-episode data, such as the data of a Return or
// EpisodeLength Tracker, against the episode number and saves the plot
// to filename. The image format is taken from the file extension.
func SaveCurve(filename, title, label string, data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("saveCurve: no episodes to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = label

	points := make(plotter.XYs, len(data))
	for i := range data {
		points[i] = plotter.XY{
			X: float64(i + 1),
			Y: data[i],
		}
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("saveCurve: %w", err)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("saveCurve: %w", err)
	}
	return nil
}
