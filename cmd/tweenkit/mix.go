package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

type mixOptions struct {
	Fraction float64
	Limit    bool
}

func newMixCmd(app *appContext) *cobra.Command {
	opts := mixOptions{}

	cmd := &cobra.Command{
		Use:   "mix <color> <color>",
		Short: "Blend two colors",
		Long: `Blend the first color towards the second by --fraction in the model chosen
with --model. Fractions outside [0,1] extrapolate unless --limit is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseColorArg("first color", args[0])
			if err != nil {
				return err
			}
			b, err := parseColorArg("second color", args[1])
			if err != nil {
				return err
			}

			mixed := color.Mix(a, b, opts.Fraction, opts.Limit, app.model)

			app.log.WithFields(map[string]any{
				"fraction": opts.Fraction,
				"model":    string(app.model),
				"limit":    opts.Limit,
			}).Debug("mixed colors")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Gradient([]color.Color{a, mixed, b}, 12))
			fmt.Fprintln(out, render.Details([][2]string{
				{"hex", render.Plain(mixed)},
				{"rgb", color.ToRgbString(mixed)},
				{"hsl", color.ToHslString(mixed)},
			}))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&opts.Fraction, "fraction", "f", 0.5, "Position between the two colors")
	cmd.Flags().BoolVar(&opts.Limit, "limit", false, "Clamp every channel between the source colors")

	return cmd
}
