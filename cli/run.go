package cli

import (
	"fmt"

	"github.com/samuelfneumann/gopursuit/experiment"
	"github.com/samuelfneumann/gopursuit/experiment/tracker"
	"github.com/samuelfneumann/gopursuit/render"
	ts "github.com/samuelfneumann/gopursuit/timestep"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	var ticks int
	var renderMode string
	var pngPattern string
	var cellSize int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured environment, rendering every tick",
		Long: "Run the configured environment, rendering the global state " +
			"at every tick. Episodes are restarted until the tick limit is " +
			"reached, a tick limit of 0 runs a single episode. Keyboard " +
			"policies read their actions from standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.config.Create(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			renderer, err := newRenderer(renderMode, pngPattern, cellSize, cmd)
			if err != nil {
				return err
			}

			episodes := 0
			if ticks == 0 {
				episodes = 1
			}
			ended := tracker.OnEpisodeEnd(func(step ts.TimeStep) {
				fmt.Fprintf(cmd.OutOrStdout(), "%v\n", step)
			})

			o, err := experiment.NewOnline(p, ticks, episodes, opts.logger,
				ended)
			if err != nil {
				return err
			}
			o.SetRenderer(renderer)

			if err := o.Run(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", p)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&ticks, "ticks", 10, "number of ticks to run, 0 for one "+
		"full episode")
	flags.StringVar(&renderMode, "render", "glyph",
		"terminal rendering: glyph, text or none")
	flags.StringVar(&pngPattern, "png", "", "also render each tick to a "+
		"PNG file, e.g. frame%03d.png")
	flags.IntVar(&cellSize, "cell-size", 32, "pixels per cell of PNG frames")

	return cmd
}

// newRenderer returns the renderer selected by the run flags
func newRenderer(mode, pngPattern string, cellSize int,
	cmd *cobra.Command) (render.Renderer, error) {
	var renderers render.Multi

	switch mode {
	case "glyph":
		renderers = append(renderers, render.NewGlyph(cmd.OutOrStdout()))
	case "text":
		renderers = append(renderers, render.NewText(cmd.OutOrStdout()))
	case "none":
	default:
		return nil, fmt.Errorf("run: no such rendering %q", mode)
	}

	if pngPattern != "" {
		png, err := render.NewPNG(pngPattern, cellSize)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, png)
	}

	return renderers, nil
}
