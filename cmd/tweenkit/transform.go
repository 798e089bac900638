package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/internal/config"
	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/pkg/transform"
)

type transformOptions struct {
	From       []string
	To         []string
	Limit      bool
	ConfigPath string
	ID         string
}

func newTransformCmd(app *appContext) *cobra.Command {
	opts := transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform <input>...",
		Short: "Map inputs from one range onto another",
		Long: `Map each input from the --from range onto the --to range. Endpoints and inputs
may be numbers or colors. A zero-length --from range maps every input to the
first --to value. With --config and --id the ranges come from a palette
document.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, limit, err := resolveTransformRanges(cmd, app, opts)
			if err != nil {
				return err
			}

			fn := transform.New(from, to, transform.Options{
				InputInterpolation:  app.dispatcher,
				OutputInterpolation: app.dispatcher,
				Limit:               limit,
			})

			for _, raw := range args {
				input, err := parseEndpoint(raw)
				if err != nil {
					return fmt.Errorf("input: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", raw, render.Plain(fn(input)))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.From, "from", []string{"0", "1"}, "Input range as two comma separated values")
	cmd.Flags().StringSliceVar(&opts.To, "to", []string{"0", "1"}, "Output range as two comma separated values")
	cmd.Flags().BoolVar(&opts.Limit, "limit", false, "Clamp outputs to the output range")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Palette document holding the transform")
	cmd.Flags().StringVar(&opts.ID, "id", "", "Transform id within --config")

	return cmd
}

func resolveTransformRanges(cmd *cobra.Command, app *appContext, opts transformOptions) (from, to [2]any, limit bool, err error) {
	if opts.ConfigPath == "" {
		if opts.ID != "" {
			return from, to, false, fmt.Errorf("--id requires --config")
		}
		if from, err = parseRange("from", opts.From); err != nil {
			return from, to, false, err
		}
		if to, err = parseRange("to", opts.To); err != nil {
			return from, to, false, err
		}
		return from, to, opts.Limit, nil
	}

	if opts.ID == "" {
		return from, to, false, fmt.Errorf("--config requires --id")
	}

	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		app.log.Error(err, "failed to load palette")
		return from, to, false, err
	}

	tr, ok := config.TransformMap(cfg.Transforms)[opts.ID]
	if !ok {
		return from, to, false, fmt.Errorf("transform %q not found in %s", opts.ID, opts.ConfigPath)
	}

	model := tr.MixModel(cfg.MixModel())
	if !cmd.Flags().Changed("model") && model != app.model {
		app.configureModel(model)
	}

	app.log.WithFields(map[string]any{"transform": tr.ID, "model": string(app.model)}).Debug("loaded transform")
	return tr.InputRange(), tr.OutputRange(), tr.Limit || opts.Limit, nil
}
