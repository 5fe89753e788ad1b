package stepper

import (
	"math"
	"testing"
)

func TestSelectIndicatorsByMode(t *testing.T) {
	tests := []struct {
		mode      ProgressMode
		wantBadge bool
		wantBar   bool
	}{
		{ProgressBar, false, true},
		{ProgressSteps, true, false},
		{ProgressBoth, true, true},
		{ProgressNone, false, false},
		{ProgressMode("nonsense"), false, false},
	}
	for _, tt := range tests {
		got := SelectIndicators(tt.mode, 1, 3)
		if got.ShowBadge != tt.wantBadge || got.ShowBar != tt.wantBar {
			t.Errorf("mode %q: got badge=%v bar=%v, want badge=%v bar=%v",
				tt.mode, got.ShowBadge, got.ShowBar, tt.wantBadge, tt.wantBar)
		}
	}
}

func TestSelectIndicatorsPercentAlwaysComputed(t *testing.T) {
	got := SelectIndicators(ProgressNone, 1, 3)
	if math.Abs(got.BarPercent-100.0/3) > 1e-9 {
		t.Fatalf("BarPercent = %v, want 33.33…", got.BarPercent)
	}
	if got := SelectIndicators(ProgressBar, 2, 4).BarPercent; got != 50 {
		t.Fatalf("BarPercent = %v, want 50", got)
	}
}

func TestParseProgressMode(t *testing.T) {
	cases := map[string]ProgressMode{
		"bar":   ProgressBar,
		"STEPS": ProgressSteps,
		" both": ProgressBoth,
		"none":  ProgressNone,
		"foo":   ProgressNone,
		"":      ProgressNone,
	}
	for in, want := range cases {
		if got := ParseProgressMode(in); got != want {
			t.Errorf("ParseProgressMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBadgeAndSlot(t *testing.T) {
	if got := BadgeText(1, 3); got != "1/3" {
		t.Errorf("BadgeText = %q", got)
	}
	if got := SlotName(4); got != "step-4" {
		t.Errorf("SlotName = %q", got)
	}
	slots := Slots{"step-1": "intro"}
	if got := ResolveSlot(slots, 1); got != "intro" {
		t.Errorf("ResolveSlot(1) = %q", got)
	}
	if got := ResolveSlot(slots, 2); got != "" {
		t.Errorf("missing slot should be empty, got %q", got)
	}
	if got := ResolveSlot(nil, 1); got != "" {
		t.Errorf("nil provider should be empty, got %q", got)
	}
}
