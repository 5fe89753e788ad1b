package config

import (
	"testing"

	"github.com/initializ/stepper/stepper"
)

func TestApplyOverridesFromEnv(t *testing.T) {
	t.Setenv("STEPPER_PROGRESS", "steps")
	t.Setenv("STEPPER_TOTAL_STEPS", "5")
	cfg := Default()
	ApplyOverrides(cfg, NewViper())
	if cfg.Mode() != stepper.ProgressSteps {
		t.Errorf("Mode = %q", cfg.Mode())
	}
	if cfg.Total() != 5 {
		t.Errorf("Total = %d", cfg.Total())
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want untouched en", cfg.Locale)
	}
}

func TestApplyOverridesExplicitSet(t *testing.T) {
	v := NewViper()
	v.Set(KeyLocale, "fi")
	cfg := Default()
	ApplyOverrides(cfg, v)
	if cfg.Locale != "fi" {
		t.Fatalf("Locale = %q", cfg.Locale)
	}
	ApplyOverrides(cfg, nil)
}
