package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOutline lists step titles with completed, active and pending badges.
// current is 1-indexed.
func RenderOutline(titles []string, current int, styles *StyleSet, width int) string {
	var b strings.Builder
	for i, title := range titles {
		step := i + 1
		if title == "" {
			title = fmt.Sprintf("Step %d", step)
		}
		switch {
		case step < current:
			badge := styles.StepBadgeComplete.Render("✓")
			fmt.Fprintf(&b, "  %s  %s\n", badge, styles.SecondaryTxt.Render(title))
		case step == current:
			num := fmt.Sprintf("%d", step)
			badge := styles.StepBadgeActive.Render(num)
			name := styles.PrimaryTxt.Bold(true).Render(title)
			dividerLen := width - 10 - lipgloss.Width(num) - lipgloss.Width(title)
			if dividerLen < 2 {
				dividerLen = 2
			}
			divider := styles.DimTxt.Render(" " + strings.Repeat("─", dividerLen))
			fmt.Fprintf(&b, "  %s  %s%s\n", badge, name, divider)
		default:
			badge := styles.StepBadgePending.Render(fmt.Sprintf("%d", step))
			fmt.Fprintf(&b, "  %s  %s\n", badge, styles.DimTxt.Render(title))
		}
	}
	return b.String()
}
