package stepper

import "fmt"

// Indicators describes which progress indicators to draw.
type Indicators struct {
	ShowBadge  bool
	ShowBar    bool
	BarPercent float64
}

// Any reports whether at least one indicator is visible.
func (i Indicators) Any() bool { return i.ShowBadge || i.ShowBar }

// SelectIndicators maps a progress mode onto the visible indicators. The bar
// percentage is computed even when the bar is hidden.
func SelectIndicators(mode ProgressMode, current, total int) Indicators {
	ind := Indicators{BarPercent: barPercent(current, total)}
	switch mode {
	case ProgressSteps:
		ind.ShowBadge = true
	case ProgressBar:
		ind.ShowBar = true
	case ProgressBoth:
		ind.ShowBadge = true
		ind.ShowBar = true
	}
	return ind
}

func barPercent(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(current) / float64(total) * 100
}

// BadgeText renders the step counter shown in the badge, e.g. "2/3".
func BadgeText(current, total int) string {
	return fmt.Sprintf("%d/%d", current, total)
}
