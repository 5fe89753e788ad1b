package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBanner returns the header drawn above a stepper run.
func RenderBanner(styles *StyleSet, title, version string, width int) string {
	if version == "" {
		version = "dev"
	}
	if title == "" {
		title = "Stepper"
	}

	head := styles.Banner.Render("▸ "+title) + "  " + styles.VersionPill.Render("v"+version)

	dividerWidth := width - 4
	if dividerWidth < 20 {
		dividerWidth = 20
	}
	if dividerWidth > 60 {
		dividerWidth = 60
	}
	divider := lipgloss.NewStyle().
		Foreground(styles.Theme.Border).
		Render(strings.Repeat("─", dividerWidth))

	return fmt.Sprintf("  %s\n  %s\n\n", head, divider)
}
