// Package render draws colors and interpolated values for terminal output.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

const block = "█"

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Width reports the column count of w when it is a terminal, fallback otherwise.
func Width(w io.Writer, fallback int) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// Swatch renders c as a run of width solid blocks. Translucent colors are
// blended over black first so the swatch shows what the color looks like.
func Swatch(c color.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(terminalColor(c)).
		Render(strings.Repeat(block, width))
}

// Gradient renders colors side by side across width columns. Each color gets
// an equal share of the width; leftover columns go to the last colors.
func Gradient(colors []color.Color, width int) string {
	if len(colors) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range colors {
		start := i * width / len(colors)
		end := (i + 1) * width / len(colors)
		b.WriteString(Swatch(c, end-start))
	}
	return b.String()
}

// Ramp renders a titled gradient followed by the hex value of each stop.
func Ramp(title string, colors []color.Color, width int) string {
	labels := make([]string, len(colors))
	for i, c := range colors {
		labels[i] = color.ToHexString(c, false)
	}

	lines := []string{
		TitleStyle.Render(title),
		Gradient(colors, width),
		MutedStyle.Render(strings.Join(labels, " ")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Details renders label/value pairs one per line, in the given order.
func Details(rows [][2]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = labelStyle.Render(row[0]) + valueStyle.Render(row[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Validity renders a marker for a parse result.
func Validity(valid bool) string {
	if valid {
		return StatusStyle(true).Render("valid")
	}
	return StatusStyle(false).Render("invalid")
}

// Value renders an interpolated value as text. Colors are shown as a small
// swatch with their hex value, maps as sorted key=value pairs.
func Value(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case color.Color:
		return Swatch(val, 2) + " " + colorLabel(val)
	case *color.Color:
		if val == nil {
			return "<nil>"
		}
		return Value(*val)
	case float64:
		return FormatNumber(val)
	case float32:
		return FormatNumber(float64(val))
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + Value(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(val)
	}
}

// Plain renders v like Value but without styling, for machine-readable output.
func Plain(v any) string {
	switch val := v.(type) {
	case color.Color:
		return colorLabel(val)
	case *color.Color:
		if val != nil {
			return colorLabel(*val)
		}
	case float64:
		return FormatNumber(val)
	}
	return fmt.Sprint(v)
}

// FormatNumber prints n with at most four decimals and no trailing zeros.
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	rounded := math.Round(n*1e4) / 1e4
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func colorLabel(c color.Color) string {
	if c.A < 1 {
		return color.ToHex8String(c)
	}
	return color.ToHexString(c, false)
}

func terminalColor(c color.Color) lipgloss.Color {
	over := color.FromRGBA(c.R*c.A, c.G*c.A, c.B*c.A, 1)
	return lipgloss.Color(color.ToHexString(over, false))
}
