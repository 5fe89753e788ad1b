package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/stepper/internal/logging"
)

// HostOptions configures a standalone Host.
type HostOptions struct {
	Title   string
	Version string
	// Outline lists step titles drawn above the stepper; empty hides it.
	Outline []string
	// Stay keeps the program running after completion.
	Stay   bool
	Logger logging.Logger
}

// Host runs a single stepper Model as a full program. It reacts to the
// stepper's events the way an embedding application would.
type Host struct {
	child  *Model
	opts   HostOptions
	logger logging.Logger
	keys   keyMap
	width  int

	completions int
	lastStep    int
	done        bool
	headerRows  int
}

// NewHost wraps child.
func NewHost(child *Model, opts HostOptions) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Host{
		child:    child,
		opts:     opts,
		logger:   logger,
		keys:     defaultKeyMap(),
		width:    defaultWidth,
		lastStep: 1,
	}
}

// Completed reports whether the stepper finished and the host quit.
func (h *Host) Completed() bool { return h.done }

// Completions counts completed events received.
func (h *Host) Completions() int { return h.completions }

// LastStep is the step carried by the last step-change event.
func (h *Host) LastStep() int { return h.lastStep }

// Child returns the wrapped stepper model.
func (h *Host) Child() *Model { return h.child }

// Init mounts and focuses the stepper.
func (h *Host) Init() tea.Cmd {
	cmd := h.child.Init()
	h.child.Focus()
	h.logger.Info("stepper mounted", map[string]any{
		"stepper": h.child.Stepper().ID(),
		"total":   h.child.Stepper().State().Total,
	})
	return cmd
}

// Update routes input to the stepper and handles its events.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Quit) {
			h.logger.Info("stepper cancelled", map[string]any{"step": h.child.Snapshot().Step})
			return h, tea.Quit
		}
	case tea.WindowSizeMsg:
		h.width = msg.Width
	case tea.MouseMsg:
		msg.Y -= h.headerRows
		_, cmd := h.child.Update(msg)
		return h, cmd
	case StepChangeMsg:
		h.lastStep = msg.Step
		h.logger.Info("step-change", map[string]any{"stepper": msg.Target, "step": msg.Step})
		return h, nil
	case CompletedMsg:
		h.completions++
		h.logger.Info("completed", map[string]any{"stepper": msg.Target, "count": h.completions})
		if h.opts.Stay {
			return h, nil
		}
		h.done = true
		return h, tea.Quit
	}
	_, cmd := h.child.Update(msg)
	return h, cmd
}

// View renders the banner, optional outline and the stepper.
func (h *Host) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderBanner(h.child.styles, h.opts.Title, h.opts.Version, h.width))
	if len(h.opts.Outline) > 0 {
		b.WriteString(RenderOutline(h.opts.Outline, h.child.Snapshot().Step, h.child.styles, h.width))
		b.WriteString("\n")
	}
	h.headerRows = strings.Count(b.String(), "\n")
	b.WriteString(h.child.View())
	return b.String()
}
