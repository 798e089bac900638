package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

type convertOptions struct {
	Format string
}

var convertFormats = []string{"hex", "hex8", "rgb", "hsl", "hsv", "husl", "name"}

func newConvertCmd(app *appContext) *cobra.Command {
	opts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color in every supported notation",
		Long: `Parse a color written as a CSS name, hex value or rgb/hsl/hsv function and
print it in every notation. With --format only that notation is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("color", args[0])
			if err != nil {
				return err
			}

			app.log.WithFields(map[string]any{"input": args[0], "format": string(c.Format)}).Debug("parsed color")

			if opts.Format != "" {
				out, err := formatColor(c, opts.Format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			rows := make([][2]string, 0, len(convertFormats)+2)
			rows = append(rows, [2]string{"input", args[0]}, [2]string{"parsed", string(c.Format)})
			for _, format := range convertFormats {
				out, _ := formatColor(c, format)
				rows = append(rows, [2]string{format, out})
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Swatch(c, 12))
			fmt.Fprintln(cmd.OutOrStdout(), render.Details(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Print only this notation ("+strings.Join(convertFormats, ", ")+")")

	return cmd
}

func formatColor(c color.Color, format string) (string, error) {
	switch strings.ToLower(format) {
	case "hex":
		return color.ToHexString(c, false), nil
	case "hex8":
		return color.ToHex8String(c), nil
	case "rgb":
		return color.ToRgbString(c), nil
	case "hsl":
		return color.ToHslString(c), nil
	case "hsv":
		return color.ToHsvString(c), nil
	case "husl":
		husl := color.ToHusl(c)
		return fmt.Sprintf("husl(%d, %d%%, %d%%)",
			int(math.Round(husl.H)), int(math.Round(husl.S*100)), int(math.Round(husl.L*100))), nil
	case "name":
		if name, ok := color.ToName(c); ok {
			return name, nil
		}
		return "-", nil
	default:
		return "", fmt.Errorf("unknown format %q (expected one of %s)", format, strings.Join(convertFormats, ", "))
	}
}
