package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/internal/config"
	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
	"github.com/alexisbeaulieu97/tweenkit/pkg/transform"
)

type rampOptions struct {
	Steps      int
	Limit      bool
	ConfigPath string
	Width      int
}

func newRampCmd(app *appContext) *cobra.Command {
	opts := rampOptions{}

	cmd := &cobra.Command{
		Use:   "ramp [<from> <to>]",
		Short: "Render evenly spaced colors between two endpoints",
		Long: `Render --steps colors blended from one color to another. With --config every
ramp of a palette document is rendered instead, each in its own model.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigPath != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			width := opts.Width
			if width <= 0 {
				width = render.Width(cmd.OutOrStdout(), render.DefaultWidth)
			}

			if opts.ConfigPath != "" {
				return runConfigRamps(cmd, app, opts.ConfigPath, width)
			}

			if opts.Steps < 2 {
				return fmt.Errorf("--steps must be at least 2, got %d", opts.Steps)
			}
			from, err := parseColorArg("from", args[0])
			if err != nil {
				return err
			}
			to, err := parseColorArg("to", args[1])
			if err != nil {
				return err
			}

			colors := rampColors(from, to, opts.Steps, opts.Limit, app.model)
			title := fmt.Sprintf("%s → %s (%s)", args[0], args[1], app.model)
			fmt.Fprintln(cmd.OutOrStdout(), render.Ramp(title, colors, width))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Steps, "steps", "s", 5, "Number of colors, endpoints included")
	cmd.Flags().BoolVar(&opts.Limit, "limit", false, "Clamp the blend to the endpoints")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Render the ramps of a palette document")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Gradient width in columns (defaults to the terminal width)")

	return cmd
}

func runConfigRamps(cmd *cobra.Command, app *appContext, path string, width int) error {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		app.log.Error(err, "failed to load palette")
		return err
	}
	if len(cfg.Ramps) == 0 {
		return fmt.Errorf("%s defines no ramps", path)
	}

	fallback := cfg.MixModel()
	if cmd.Flags().Changed("model") {
		fallback = app.model
	}

	sections := make([]string, 0, len(cfg.Ramps))
	for _, ramp := range cfg.Ramps {
		model := ramp.MixModel(fallback)
		from, to := ramp.Colors()

		app.log.WithFields(map[string]any{
			"ramp":  ramp.ID,
			"steps": ramp.Steps,
			"model": string(model),
		}).Debug("rendering ramp")

		colors := rampColors(from, to, ramp.Steps, ramp.Limit, model)
		sections = append(sections, render.Ramp(fmt.Sprintf("%s (%s)", ramp.ID, model), colors, width))
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.TitleStyle.Render(cfg.Name))
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sections, "\n\n"))
	return nil
}

// rampColors samples steps colors from a transform over [0,1].
func rampColors(from, to color.Color, steps int, limit bool, model color.MixModel) []color.Color {
	fn := transform.New([2]any{0.0, 1.0}, [2]any{from, to}, transform.Options{
		Limit:      limit,
		ColorModel: model,
	})

	frames := transform.Frames(fn, 0.0, 1.0, steps)
	colors := make([]color.Color, 0, len(frames))
	for _, frame := range frames {
		if c, ok := frame.(color.Color); ok {
			colors = append(colors, c)
		}
	}
	return colors
}
