package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samuelfneumann/gopursuit/experiment"
	"github.com/samuelfneumann/gopursuit/experiment/tracker"
	ts "github.com/samuelfneumann/gopursuit/timestep"
	"github.com/samuelfneumann/gopursuit/utils/progressbar"
	"github.com/spf13/cobra"
)

func newBenchCommand(opts *options) *cobra.Command {
	var episodes int
	var heatMap string
	var curve string
	var progress bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run many episodes and summarize how the hunters perform",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.config.Create(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			returns := tracker.NewReturn()
			lengths := tracker.NewEpisodeLength()
			captures := tracker.NewCaptures()
			visits := tracker.NewVisits(p.Grid().Size())

			o, err := experiment.NewOnline(p, 0, episodes, opts.logger,
				returns, lengths, captures, visits)
			if err != nil {
				return err
			}

			var bar *progressbar.ManualProgressBar
			if progress {
				bar = progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 40,
					episodes)
				o.Register(tracker.OnEpisodeEnd(func(ts.TimeStep) {
					bar.Increment()
					bar.Display()
				}))
			}

			err = o.Run(cmd.Context())
			if bar != nil {
				bar.Close()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "return        %v\n", tracker.Summarize(returns.Data()))
			fmt.Fprintf(out, "length        %v\n", tracker.Summarize(lengths.Data()))
			fmt.Fprintf(out, "capture rate  %.3f (%d/%d)\n", captures.Rate(),
				captures.Captures(), captures.Episodes())

			opts.logger.Info("benchmark finished",
				"run_id", o.RunID().String(),
				"episodes", captures.Episodes(),
				"capture_rate", captures.Rate(),
			)

			if heatMap != "" {
				if err := writeHeatMap(heatMap, visits); err != nil {
					return err
				}
			}
			if curve != "" {
				err := tracker.SaveCurve(curve, "Episodic return", "Return",
					returns.Data())
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&episodes, "episodes", 100, "number of episodes to run")
	flags.StringVar(&heatMap, "heatmap", "", "write a heat map of hunter "+
		"visits to this image file (.png, .svg, .pdf, ...)")
	flags.StringVar(&curve, "curve", "", "plot the return of each episode "+
		"to this image file")
	flags.BoolVar(&progress, "progress", true, "show a progress bar")

	return cmd
}

func writeHeatMap(filename string, visits *tracker.Visits) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	defer file.Close()

	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	if err := visits.WriteHeatMap(file, format); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return file.Close()
}
