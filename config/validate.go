package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/initializ/stepper/i18n"
	"github.com/initializ/stepper/stepper"
)

var slotPattern = regexp.MustCompile(`^step-([1-9][0-9]*)$`)

// ValidationResult holds errors and warnings from config validation.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate checks a Config for errors and warnings. Unknown progress modes
// and missing step content are warnings because the stepper degrades
// gracefully for both.
func Validate(cfg *Config) *ValidationResult {
	r := &ValidationResult{}

	if cfg.TotalSteps != nil && *cfg.TotalSteps < 1 {
		r.Errors = append(r.Errors, fmt.Sprintf("total_steps must be at least 1, got %d", *cfg.TotalSteps))
	}
	total := cfg.Total()

	if p := strings.TrimSpace(cfg.Progress); p != "" && !stepper.ProgressMode(strings.ToLower(p)).Known() {
		r.Warnings = append(r.Warnings, fmt.Sprintf("progress %q is not one of bar, steps, both, none; indicators will be hidden", cfg.Progress))
	}

	if cfg.Locale != "" && !i18n.Has(cfg.Locale) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("locale %q is not registered (available: %s); falling back to English",
			cfg.Locale, strings.Join(i18n.Languages(), ", ")))
	}

	if cfg.StepFormat != "" && (!strings.Contains(cfg.StepFormat, "{current}") || !strings.Contains(cfg.StepFormat, "{total}")) {
		r.Warnings = append(r.Warnings, "step_format should contain {current} and {total}")
	}

	seen := map[string]int{}
	for i := range cfg.Steps {
		slot := cfg.SlotFor(i)
		if prev, ok := seen[slot]; ok {
			r.Errors = append(r.Errors, fmt.Sprintf("steps[%d]: slot %q already used by steps[%d]", i, slot, prev))
			continue
		}
		seen[slot] = i
		m := slotPattern.FindStringSubmatch(slot)
		if m == nil {
			r.Warnings = append(r.Warnings, fmt.Sprintf("steps[%d]: slot %q does not match step-N and is never shown", i, slot))
			continue
		}
		n, _ := strconv.Atoi(m[1])
		if total >= 1 && n > total {
			r.Warnings = append(r.Warnings, fmt.Sprintf("steps[%d]: slot %q is beyond total_steps %d and is never shown", i, slot, total))
		}
	}
	if len(cfg.Steps) > 0 {
		for n := 1; n <= total; n++ {
			if _, ok := seen[stepper.SlotName(n)]; !ok {
				r.Warnings = append(r.Warnings, fmt.Sprintf("no content for slot %q; the step renders empty", stepper.SlotName(n)))
			}
		}
	}

	return r
}
