package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/initializ/stepper/internal/tui"
	"github.com/initializ/stepper/stepper"
)

var runStay bool

// errNoTerminal is returned when run is started without an interactive
// terminal.
var errNoTerminal = errors.New("stepper run needs an interactive terminal; use 'stepper replay' for scripted runs")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the stepper interactively",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runStay, "stay", false, "keep running after the last step completes")
}

func runRun(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := append(cfg.EngineOptions(), stepper.WithLogger(logger))
	s := stepper.NewStepper(cfg.Slots(), opts...)

	styles := tui.NewStyleSet(tui.DetectTheme(themeName(overrides)))
	model := tui.NewModel(s, styles, cfg.Titles())
	defer model.Close()

	host := tui.NewHost(model, tui.HostOptions{
		Title:   cfg.Title,
		Version: appVersion,
		Outline: cfg.Outline(),
		Stay:    runStay,
		Logger:  logger,
	})

	p := tea.NewProgram(host, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running stepper: %w", err)
	}

	if host.Completed() {
		fmt.Fprintf(stdout(cmd), "Completed %d step(s).\n", s.State().Total)
	} else {
		fmt.Fprintf(stdout(cmd), "Stopped at step %d of %d.\n", s.State().Current, s.State().Total)
	}
	return nil
}
