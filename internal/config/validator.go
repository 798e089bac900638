package config

import (
	"fmt"

	tweenerrors "github.com/alexisbeaulieu97/tweenkit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tweenerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if len(cfg.Ramps) == 0 && len(cfg.Transforms) == 0 {
		return tweenerrors.NewValidationError("config", "at least one ramp or transform is required", nil)
	}

	seen := make(map[string]string, len(cfg.Ramps)+len(cfg.Transforms))

	for i, ramp := range cfg.Ramps {
		field := fieldForRamp(i, "id")
		if previous, exists := seen[ramp.ID]; exists {
			return tweenerrors.NewValidationError(field, fmt.Sprintf("duplicate id %q (already used by %s)", ramp.ID, previous), nil)
		}
		if err := ValidateRamp(ramp); err != nil {
			return err
		}
		seen[ramp.ID] = field
	}

	for i, tr := range cfg.Transforms {
		field := fieldForTransform(i, "id")
		if previous, exists := seen[tr.ID]; exists {
			return tweenerrors.NewValidationError(field, fmt.Sprintf("duplicate id %q (already used by %s)", tr.ID, previous), nil)
		}
		if err := validateTransform(tr, i); err != nil {
			return err
		}
		seen[tr.ID] = field
	}

	return nil
}

// ValidateRamp validates a single ramp independent of the rest of the document.
func ValidateRamp(ramp Ramp) error {
	if err := validatorInstance().Struct(ramp); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateTransform validates a single transform independent of the rest of the document.
func ValidateTransform(tr Transform) error {
	return validateTransform(tr, -1)
}

func validateTransform(tr Transform, index int) error {
	if err := validatorInstance().Struct(tr); err != nil {
		return convertValidationError(err)
	}

	// Both output endpoints must share a strategy: numbers blend with numbers,
	// colors with colors.
	_, firstNumeric := parseNumber(tr.Output[0])
	_, secondNumeric := parseNumber(tr.Output[1])
	if firstNumeric != secondNumeric {
		return tweenerrors.NewValidationError(
			fieldForTransform(index, "output"),
			fmt.Sprintf("endpoints %q and %q mix a number with a color", tr.Output[0], tr.Output[1]),
			nil,
		)
	}

	return nil
}
