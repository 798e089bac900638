package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/internal/logger"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
	"github.com/alexisbeaulieu97/tweenkit/pkg/interpolation"
)

// appContext bundles the services every command shares. It is filled in by
// the root command before any subcommand runs.
type appContext struct {
	log        *logger.Logger
	model      color.MixModel
	dispatcher *interpolation.Dynamic
}

func (a *appContext) init(cmd *cobra.Command, flags *rootFlags) error {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	model, err := color.ParseMixModel(flags.model)
	if err != nil {
		return err
	}

	a.log = log.WithFields(map[string]any{"command": cmd.Name()})
	a.configureModel(model)

	a.log.WithFields(map[string]any{"model": string(model)}).Debug("command initialised")
	return nil
}

// configureModel switches the model colors are blended in.
func (a *appContext) configureModel(model color.MixModel) {
	a.model = model
	a.dispatcher = interpolation.NewDynamic(
		interpolation.WithColorModel(model),
		interpolation.WithLogger(a.log.Zerolog()),
	)
}

// parseColorArg parses a color argument strictly.
func parseColorArg(name, raw string) (color.Color, error) {
	c, err := color.Parse(raw)
	if err != nil {
		return c, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// parseEndpoint reads a range endpoint or input as a number when it is one
// and as a color otherwise.
func parseEndpoint(raw string) (any, error) {
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return n, nil
	}
	c, err := color.Parse(raw)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// parseRange reads a two element range from flag values.
func parseRange(flag string, values []string) ([2]any, error) {
	if len(values) != 2 {
		return [2]any{}, fmt.Errorf("--%s expects two values, got %d", flag, len(values))
	}

	var out [2]any
	for i, raw := range values {
		v, err := parseEndpoint(raw)
		if err != nil {
			return [2]any{}, fmt.Errorf("--%s: %w", flag, err)
		}
		out[i] = v
	}
	return out, nil
}
