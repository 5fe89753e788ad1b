package stepper

import "strings"

// ProgressMode selects which progress indicators are visible.
type ProgressMode string

const (
	ProgressBar   ProgressMode = "bar"
	ProgressSteps ProgressMode = "steps"
	ProgressBoth  ProgressMode = "both"
	ProgressNone  ProgressMode = "none"
)

// DefaultTotalSteps is used when no step count is configured.
const DefaultTotalSteps = 3

// ParseProgressMode maps a configured value onto a known mode. Unknown values
// become ProgressNone.
func ParseProgressMode(s string) ProgressMode {
	switch m := ProgressMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ProgressBar, ProgressSteps, ProgressBoth, ProgressNone:
		return m
	}
	return ProgressNone
}

// Known reports whether m is one of the four recognised modes.
func (m ProgressMode) Known() bool {
	switch m {
	case ProgressBar, ProgressSteps, ProgressBoth, ProgressNone:
		return true
	}
	return false
}

// State is the authoritative step data. Current is 1-indexed and always
// within [1, Total].
type State struct {
	Current int
	Total   int
	Mode    ProgressMode
}

func newState(total int, mode ProgressMode) State {
	if total < 1 {
		total = 1
	}
	return State{Current: 1, Total: total, Mode: mode}
}

// First reports whether the state is on step 1.
func (s State) First() bool { return s.Current <= 1 }

// Last reports whether the state is on the final step.
func (s State) Last() bool { return s.Current >= s.Total }
