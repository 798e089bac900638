package color

import (
	"regexp"
	"strconv"
	"strings"

	tweenerrors "github.com/alexisbeaulieu97/tweenkit/pkg/errors"
)

const (
	cssInteger = `[-\+]?\d+%?`
	cssNumber  = `[-\+]?\d*\.\d+%?`
	cssUnit    = `(?:` + cssNumber + `)|(?:` + cssInteger + `)`

	permissive3 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?\s*$`
	permissive4 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?\s*$`
)

var matchers = struct {
	rgb, rgba, hsl, hsla, hsv, hsva *regexp.Regexp
	hex3, hex4, hex6, hex8          *regexp.Regexp
}{
	rgb:  regexp.MustCompile(`^rgba?` + permissive3),
	rgba: regexp.MustCompile(`^rgba?` + permissive4),
	hsl:  regexp.MustCompile(`^hsla?` + permissive3),
	hsla: regexp.MustCompile(`^hsla?` + permissive4),
	hsv:  regexp.MustCompile(`^hsva?` + permissive3),
	hsva: regexp.MustCompile(`^hsva?` + permissive4),
	hex3: regexp.MustCompile(`^#?([0-9a-f])([0-9a-f])([0-9a-f])$`),
	hex4: regexp.MustCompile(`^#?([0-9a-f])([0-9a-f])([0-9a-f])([0-9a-f])$`),
	hex6: regexp.MustCompile(`^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`),
	hex8: regexp.MustCompile(`^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`),
}

// Parse reads a color string, reporting unparseable input as an error
// instead of degrading to black.
func Parse(input string) (Color, error) {
	c := New(input)
	if !c.Valid {
		return c, tweenerrors.NewColorParseError(input)
	}
	return c, nil
}

// MustParse is like Parse but panics on unparseable input.
func MustParse(input string) Color {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

// IsColorString reports whether input is a parseable color string.
func IsColorString(input string) bool {
	return New(input).Valid
}

// IsColor reports whether v is a Color or a value New can interpret.
func IsColor(v any) bool {
	switch c := v.(type) {
	case Color:
		return c.Valid
	case *Color:
		return c != nil && c.Valid
	case string:
		return IsColorString(c)
	case nil:
		return false
	}
	return New(v).Valid
}

func parseString(input string) (Color, bool) {
	s := strings.ToLower(strings.TrimSpace(input))

	if rgba, ok := namedColor(s); ok {
		c := buildRGB(float64(rgba.R), float64(rgba.G), float64(rgba.B), 1, FormatName)
		c.InitialValue = input
		return c, true
	}
	if s == "transparent" {
		c := buildRGB(0, 0, 0, 0, FormatName)
		c.InitialValue = input
		return c, true
	}

	if m := matchers.rgba.FindStringSubmatch(s); m != nil {
		return buildRGB(rgbUnit(m[1]), rgbUnit(m[2]), rgbUnit(m[3]), alphaUnit(m[4]), FormatRGB), true
	}
	if m := matchers.rgb.FindStringSubmatch(s); m != nil {
		return buildRGB(rgbUnit(m[1]), rgbUnit(m[2]), rgbUnit(m[3]), 1, FormatRGB), true
	}
	if m := matchers.hsla.FindStringSubmatch(s); m != nil {
		return buildHSL(hueUnit(m[1]), fractionUnit(m[2]), fractionUnit(m[3]), alphaUnit(m[4]), FormatHSL), true
	}
	if m := matchers.hsl.FindStringSubmatch(s); m != nil {
		return buildHSL(hueUnit(m[1]), fractionUnit(m[2]), fractionUnit(m[3]), 1, FormatHSL), true
	}
	if m := matchers.hsva.FindStringSubmatch(s); m != nil {
		return buildHSV(hueUnit(m[1]), fractionUnit(m[2]), fractionUnit(m[3]), alphaUnit(m[4])), true
	}
	if m := matchers.hsv.FindStringSubmatch(s); m != nil {
		return buildHSV(hueUnit(m[1]), fractionUnit(m[2]), fractionUnit(m[3]), 1), true
	}

	var c Color
	if m := matchers.hex8.FindStringSubmatch(s); m != nil {
		c = buildRGB(hexByte(m[1]), hexByte(m[2]), hexByte(m[3]), hexByte(m[4])/255, FormatHex)
	} else if m := matchers.hex6.FindStringSubmatch(s); m != nil {
		c = buildRGB(hexByte(m[1]), hexByte(m[2]), hexByte(m[3]), 1, FormatHex)
	} else if m := matchers.hex4.FindStringSubmatch(s); m != nil {
		c = buildRGB(hexByte(m[1]+m[1]), hexByte(m[2]+m[2]), hexByte(m[3]+m[3]), hexByte(m[4]+m[4])/255, FormatHex)
	} else if m := matchers.hex3.FindStringSubmatch(s); m != nil {
		c = buildRGB(hexByte(m[1]+m[1]), hexByte(m[2]+m[2]), hexByte(m[3]+m[3]), 1, FormatHex)
	} else {
		return Color{}, false
	}
	c.InitialValue = input
	return c, true
}

// unit splits a CSS component into its value and whether it carried a
// percent sign.
func unit(s string) (float64, bool) {
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, percent
	}
	return v, percent
}

func rgbUnit(s string) float64 {
	v, percent := unit(s)
	if percent {
		return v * 255 / 100
	}
	return v
}

func hueUnit(s string) float64 {
	v, percent := unit(s)
	if percent {
		return v * 360 / 100
	}
	return v
}

// fractionUnit reads s, l and v components. Plain numbers up to 1 are
// fractions; larger numbers and percentages are percent.
func fractionUnit(s string) float64 {
	v, percent := unit(s)
	if percent || v > 1 {
		return v / 100
	}
	return v
}

func alphaUnit(s string) float64 {
	v, percent := unit(s)
	if percent {
		return v / 100
	}
	return v
}

func hexByte(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v)
}
