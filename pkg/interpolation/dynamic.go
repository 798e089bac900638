package interpolation

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tweenkit/internal/logger"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

// Kind is the strategy family a value resolves to.
type Kind int

const (
	KindNone Kind = iota
	KindNumber
	KindDiscrete
	KindColor
	KindCustom
	KindObject
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindDiscrete:
		return "discrete"
	case KindColor:
		return "color"
	case KindCustom:
		return "custom"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Dynamic picks a strategy from the runtime shape of the from value:
//
//   - nil, bool and func values step discretely
//   - numbers interpolate linearly
//   - colors and color strings blend in the configured model
//   - Interpolatable values and registered types use their own strategy
//   - string-keyed maps interpolate key by key
//
// Anything else logs a warning and steps discretely.
type Dynamic struct {
	colorModel color.MixModel
	registry   *Registry
	log        *logger.Logger
}

// Option configures a Dynamic dispatcher.
type Option func(*Dynamic)

// WithColorModel sets the model colors are blended in. The default is HUSL.
func WithColorModel(model color.MixModel) Option {
	return func(d *Dynamic) {
		d.colorModel = model
	}
}

// WithRegistry sets the registry consulted for custom strategies.
func WithRegistry(registry *Registry) Option {
	return func(d *Dynamic) {
		d.registry = registry
	}
}

// WithLogger routes fallback warnings to base.
func WithLogger(base zerolog.Logger) Option {
	return func(d *Dynamic) {
		d.log = logger.FromZerolog(base)
	}
}

// Default is the shared dispatcher used when callers do not build their own.
var Default = NewDynamic()

// NewDynamic creates a dispatcher.
func NewDynamic(opts ...Option) *Dynamic {
	d := &Dynamic{
		colorModel: color.ModelHUSL,
		registry:   DefaultRegistry,
		log:        logger.Stderr(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ColorModel reports the model colors are blended in.
func (d *Dynamic) ColorModel() color.MixModel {
	return d.colorModel
}

func (d *Dynamic) Interpolate(from, to any) func(float64) any {
	if constant, ok := oneSided(from, to); ok {
		return constant
	}
	return d.For(from).Interpolate(from, to)
}

func (d *Dynamic) Difference(from, to any) float64 {
	from, to = HandleUndefined(from, to)
	return d.For(from).Difference(from, to)
}

// For returns the strategy for value.
func (d *Dynamic) For(value any) Interpolation {
	kind, custom := d.resolve(value)
	switch kind {
	case KindNumber:
		return Number
	case KindColor:
		return ColorInterpolation(d.colorModel)
	case KindCustom:
		return custom
	case KindObject:
		return ObjectInterpolation(d)
	case KindUnknown:
		d.log.WithFields(map[string]any{
			"value_type": fmt.Sprintf("%T", value),
		}).Warn("no interpolation for value type, stepping discretely")
		return NoInterpolation
	default:
		return NoInterpolation
	}
}

// Resolve reports the strategy family value maps to.
func (d *Dynamic) Resolve(value any) Kind {
	kind, _ := d.resolve(value)
	return kind
}

func (d *Dynamic) resolve(value any) (Kind, Interpolation) {
	if isUndefined(value) {
		return KindNone, nil
	}

	if custom, ok := d.custom(value); ok {
		return KindCustom, custom
	}

	switch v := value.(type) {
	case color.Color, *color.Color:
		return KindColor, nil
	case string:
		if color.IsColorString(v) {
			return KindColor, nil
		}
		return KindUnknown, nil
	}

	if isNumber(value) {
		return KindNumber, nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Bool, reflect.Func:
		return KindDiscrete, nil
	}
	if isObject(value) {
		return KindObject, nil
	}
	return KindUnknown, nil
}

// custom finds a strategy declared by the value or registered for its type.
// A strategy that is itself a dispatcher is ignored so resolution cannot loop
// back into Dynamic.
func (d *Dynamic) custom(value any) (Interpolation, bool) {
	var strategy Interpolation
	if declared, ok := value.(Interpolatable); ok {
		strategy = declared.Interpolation(d)
	} else if registered, ok := d.registry.Lookup(value); ok {
		strategy = registered
	}

	if strategy == nil {
		return nil, false
	}
	if _, loops := strategy.(*Dynamic); loops {
		return nil, false
	}
	return strategy, true
}
