package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/initializ/stepper/config"
	"github.com/initializ/stepper/stepper"
)

var inspectPreview bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the configured steps, slots and titles",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectPreview, "preview", false, "print a plain rendition of every step")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := stdout(cmd)

	t := cfg.Translation()
	fmt.Fprintf(w, "Progress: %s   Locale: %s (%s)   Steps: %d\n\n", cfg.Mode(), t.Lang, t.Name, cfg.Total())
	fmt.Fprintln(w, stepsTable(cfg))

	if !inspectPreview {
		return nil
	}
	s := stepper.NewStepper(cfg.Slots(), cfg.EngineOptions()...)
	v := s.Render()
	for {
		fmt.Fprintln(w)
		printView(w, v)
		if v.Finishing {
			break
		}
		s.Advance()
		v = s.View()
	}
	return nil
}

func stepsTable(cfg *config.Config) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	dimStyle := cellStyle.Faint(true)

	slots := cfg.Slots()
	titles := cfg.Titles()
	rows := make([][]string, 0, cfg.Total())
	for step := 1; step <= cfg.Total(); step++ {
		slot := stepper.SlotName(step)
		content := "no"
		if body, ok := slots.Slot(slot); ok && body != "" {
			content = "yes"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", step), slot, titles[slot], content})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3 && row >= 0 && row < len(rows) && rows[row][3] == "no":
				return dimStyle
			default:
				return cellStyle
			}
		}).
		Headers("STEP", "SLOT", "TITLE", "CONTENT").
		Rows(rows...).
		String()
}

// printView writes a plain-text rendition of v.
func printView(w io.Writer, v stepper.View) {
	if v.Indicators.ShowBadge {
		fmt.Fprintf(w, "[%s] ", v.BadgeText)
	}
	if v.Indicators.ShowBar {
		fmt.Fprintf(w, "%3.0f%% ", v.Indicators.BarPercent)
	}
	fmt.Fprintln(w, v.Announcement.Text)
	back := v.BackLabel
	if v.BackDisabled {
		back += " (disabled)"
	}
	fmt.Fprintf(w, "< %s | %s >\n", back, v.NextLabel)
}
