package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	rampIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("ramp_id", func(fl validator.FieldLevel) bool {
			return rampIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return color.IsColorString(fl.Field().String())
		})

		_ = v.RegisterValidation("mix_model", func(fl validator.FieldLevel) bool {
			_, err := color.ParseMixModel(fl.Field().String())
			return err == nil
		})

		// Range endpoints are either numbers or colors.
		_ = v.RegisterValidation("endpoint", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			if _, ok := parseNumber(raw); ok {
				return true
			}
			return color.IsColorString(raw)
		})

		validateInst = v
	})

	return validateInst
}
