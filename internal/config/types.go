package config

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

// Config represents a palette document: named color ramps and value
// transforms sharing a default color model.
type Config struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	ColorModel  string      `yaml:"color_model,omitempty" validate:"omitempty,mix_model"`
	Ramps       []Ramp      `yaml:"ramps,omitempty" validate:"omitempty,dive"`
	Transforms  []Transform `yaml:"transforms,omitempty" validate:"omitempty,dive"`
}

// Ramp is an evenly spaced run of colors blended from From to To.
type Ramp struct {
	ID    string `yaml:"id" validate:"required,ramp_id"`
	From  string `yaml:"from" validate:"required,color"`
	To    string `yaml:"to" validate:"required,color"`
	Steps int    `yaml:"steps" validate:"required,min=2,max=256"`
	Model string `yaml:"model,omitempty" validate:"omitempty,mix_model"`
	Limit bool   `yaml:"limit,omitempty"`
}

// Transform maps a numeric input range onto an output range of numbers or
// colors.
type Transform struct {
	ID     string     `yaml:"id" validate:"required,ramp_id"`
	Input  [2]float64 `yaml:"input"`
	Output [2]string  `yaml:"output" validate:"dive,required,endpoint"`
	Limit  bool       `yaml:"limit,omitempty"`
	Model  string     `yaml:"model,omitempty" validate:"omitempty,mix_model"`
}

// MixModel returns the document's default model, HUSL when unset.
func (c *Config) MixModel() color.MixModel {
	return modelOr(c.ColorModel, color.ModelHUSL)
}

// MixModel returns the ramp's model, falling back to fallback when unset.
func (r Ramp) MixModel(fallback color.MixModel) color.MixModel {
	return modelOr(r.Model, fallback)
}

// Colors returns the endpoints of the ramp.
func (r Ramp) Colors() (color.Color, color.Color) {
	return color.New(r.From), color.New(r.To)
}

// MixModel returns the transform's model, falling back to fallback when unset.
func (t Transform) MixModel(fallback color.MixModel) color.MixModel {
	return modelOr(t.Model, fallback)
}

// InputRange returns the input range in the form transform.New expects.
func (t Transform) InputRange() [2]any {
	return [2]any{t.Input[0], t.Input[1]}
}

// OutputRange decodes the output endpoints. Numeric entries become float64,
// everything else a color.Color.
func (t Transform) OutputRange() [2]any {
	return [2]any{ParseEndpoint(t.Output[0]), ParseEndpoint(t.Output[1])}
}

// ParseEndpoint reads a range endpoint as a number when it is one and as a
// color otherwise.
func ParseEndpoint(raw string) any {
	if n, ok := parseNumber(raw); ok {
		return n
	}
	return color.New(raw)
}

// RampMap builds a lookup table for ramps by ID.
func RampMap(ramps []Ramp) map[string]Ramp {
	out := make(map[string]Ramp, len(ramps))
	for _, ramp := range ramps {
		out[ramp.ID] = ramp
	}
	return out
}

// TransformMap builds a lookup table for transforms by ID.
func TransformMap(transforms []Transform) map[string]Transform {
	out := make(map[string]Transform, len(transforms))
	for _, tr := range transforms {
		out[tr.ID] = tr
	}
	return out
}

func modelOr(name string, fallback color.MixModel) color.MixModel {
	if name == "" {
		return fallback
	}
	model, err := color.ParseMixModel(name)
	if err != nil {
		return fallback
	}
	return model
}

func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
