package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

type rootFlags struct {
	verbose bool
	model   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "tweenkit",
		Short:         "tweenkit converts, mixes and interpolates colors and values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.model, "model", "m", string(color.ModelHUSL), "Color model used for mixing (rgb, rgba, hsl, hsla, husl)")

	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newMixCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newRampCmd(app))
	cmd.AddCommand(newTransformCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
