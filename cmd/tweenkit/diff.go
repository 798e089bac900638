package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

type diffOptions struct {
	Tolerance float64
}

func newDiffCmd(app *appContext) *cobra.Command {
	opts := diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <color> <color>",
		Short: "Measure how far apart two colors are",
		Long: `Print the perceptual difference of two colors (0 to 765), their distance
along the mixing path of --model, and whether they are equal within --tolerance.`,
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
			if opts.Tolerance < 0 {
				return fmt.Errorf("--tolerance must not be negative")
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Gradient([]color.Color{a, b}, 12))
			fmt.Fprintln(cmd.OutOrStdout(), render.Details([][2]string{
				{"difference", render.FormatNumber(color.Difference(a, b))},
				{"distance", render.FormatNumber(color.Distance(a, b, app.model))},
				{"model", string(app.model)},
				{"equal", strconv.FormatBool(color.Equal(a, b, opts.Tolerance))},
			}))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&opts.Tolerance, "tolerance", "t", color.DefaultTolerance, "Per channel tolerance used for equality")

	return cmd
}
