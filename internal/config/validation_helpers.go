package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tweenerrors "github.com/alexisbeaulieu97/tweenkit/pkg/errors"
)

// convertValidationError normalizes validator errors into tweenkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if value := fmt.Sprint(ve.Value()); value != "" && ve.Tag() != "required" {
			msg = fmt.Sprintf("%s (got %q)", msg, value)
		}
		return tweenerrors.NewValidationError(field, msg, err)
	}

	return tweenerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForRamp(index int, field string) string {
	return fmt.Sprintf("ramps[%d].%s", index, field)
}

func fieldForTransform(index int, field string) string {
	if index < 0 {
		return "transform." + field
	}
	return fmt.Sprintf("transforms[%d].%s", index, field)
}
