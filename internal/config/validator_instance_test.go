package config

import (
	"testing"
)

func TestValidatorInstanceIsShared(t *testing.T) {
	v1 := validatorInstance()
	v2 := validatorInstance()

	// Should return the same instance (singleton pattern)
	if v1 != v2 {
		t.Error("validatorInstance should return the same instance (singleton pattern)")
	}
}

func TestColorValidation(t *testing.T) {
	v := validatorInstance()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"name", "coral", true},
		{"name uppercase", "CORAL", true},
		{"transparent", "transparent", true},
		{"hex3", "#0af", true},
		{"hex6 without hash", "00aaff", true},
		{"hex8", "#00aaff80", true},
		{"rgb", "rgb(10, 20, 30)", true},
		{"rgba percent", "rgba(10%, 20%, 30%, 0.5)", true},
		{"hsl", "hsl(120, 50%, 50%)", true},
		{"hsv", "hsv 120 50% 50%", true},

		{"empty", "", false},
		{"unknown name", "midnight", false},
		{"bad hex", "#12345", false},
		{"bad function", "cmyk(0, 0, 0, 0)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "color")
			got := err == nil

			if got != tt.expected {
				t.Errorf("color validation for %q = %v, want %v (error: %v)", tt.value, got, tt.expected, err)
			}
		})
	}
}

func TestMixModelValidation(t *testing.T) {
	v := validatorInstance()

	for _, model := range []string{"rgb", "rgba", "hsl", "hsla", "husl", "HUSL"} {
		if err := v.Var(model, "mix_model"); err != nil {
			t.Errorf("mix_model should accept %q: %v", model, err)
		}
	}
	for _, model := range []string{"", "lab", "hsv"} {
		if err := v.Var(model, "mix_model"); err == nil {
			t.Errorf("mix_model should reject %q", model)
		}
	}
}

func TestEndpointValidation(t *testing.T) {
	v := validatorInstance()

	for _, value := range []string{"0", "-1.5", "1e3", "red", "#fff"} {
		if err := v.Var(value, "endpoint"); err != nil {
			t.Errorf("endpoint should accept %q: %v", value, err)
		}
	}
	for _, value := range []string{"ten", "1,5", "#ff"} {
		if err := v.Var(value, "endpoint"); err == nil {
			t.Errorf("endpoint should reject %q", value)
		}
	}
}

func TestSemverAndRampIDValidation(t *testing.T) {
	v := validatorInstance()

	for _, version := range []string{"1.0", "1.0.0", "2.3.4-beta.1"} {
		if err := v.Var(version, "semver"); err != nil {
			t.Errorf("semver should accept %q: %v", version, err)
		}
	}
	if err := v.Var("v1", "semver"); err == nil {
		t.Error("semver should reject v1")
	}

	for _, id := range []string{"warm", "warm_2", "cool-blue"} {
		if err := v.Var(id, "ramp_id"); err != nil {
			t.Errorf("ramp_id should accept %q: %v", id, err)
		}
	}
	for _, id := range []string{"", "Warm", "with space"} {
		if err := v.Var(id, "ramp_id"); err == nil {
			t.Errorf("ramp_id should reject %q", id)
		}
	}
}
