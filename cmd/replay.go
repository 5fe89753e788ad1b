package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/initializ/stepper/stepper"
)

var (
	replayActions []string
	replayView    bool
	replayID      string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Drive the stepper headlessly and print its events as JSON lines",
	Example: `  stepper replay --actions next,next,next
  stepper replay --actions right,left --view`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringSliceVar(&replayActions, "actions", nil,
		"comma-separated actions: next|n, back|b (buttons), right|left (keyboard)")
	replayCmd.Flags().BoolVar(&replayView, "view", false, "also print every render pass")
	replayCmd.Flags().StringVar(&replayID, "id", "", "stepper id reported as the event target")
}

type action int

const (
	actNext action = iota
	actBack
	actRight
	actLeft
)

func parseActions(raw []string) ([]action, error) {
	out := make([]action, 0, len(raw))
	for _, a := range raw {
		switch strings.ToLower(strings.TrimSpace(a)) {
		case "next", "n":
			out = append(out, actNext)
		case "back", "b":
			out = append(out, actBack)
		case "right":
			out = append(out, actRight)
		case "left":
			out = append(out, actLeft)
		case "":
		default:
			return nil, fmt.Errorf("unknown action %q", a)
		}
	}
	return out, nil
}

// replayRecord is one JSON line of replay output.
type replayRecord struct {
	Event        string `json:"event"`
	Target       string `json:"target,omitempty"`
	Step         int    `json:"step,omitempty"`
	Total        int    `json:"total,omitempty"`
	Badge        string `json:"badge,omitempty"`
	Bar          string `json:"bar,omitempty"`
	Slot         string `json:"slot,omitempty"`
	Content      string `json:"content,omitempty"`
	Announcement string `json:"announcement,omitempty"`
	Back         string `json:"back,omitempty"`
	BackDisabled bool   `json:"back_disabled,omitempty"`
	Next         string `json:"next,omitempty"`
}

func runReplay(cmd *cobra.Command, args []string) error {
	actions, err := parseActions(replayActions)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(stderr(cmd))
	if err != nil {
		return err
	}
	defer closeLog()

	enc := json.NewEncoder(stdout(cmd))
	var encErr error
	emit := func(r replayRecord) {
		if encErr == nil {
			encErr = enc.Encode(r)
		}
	}

	opts := append(cfg.EngineOptions(), stepper.WithLogger(logger))
	if replayID != "" {
		opts = append(opts, stepper.WithID(replayID))
	}
	s := stepper.NewStepper(cfg.Slots(), opts...)
	if replayView {
		s.AddRenderer(stepper.RendererFunc(func(v stepper.View) {
			emit(renderRecord(s, v))
		}))
	}
	s.Events().OnStepChange(func(ev stepper.StepChangeEvent) {
		emit(replayRecord{Event: string(ev.Kind()), Target: ev.Target, Step: ev.Step})
	})
	s.Events().OnCompleted(func(ev stepper.CompletedEvent) {
		emit(replayRecord{Event: string(ev.Kind()), Target: ev.Target})
	})

	bus := stepper.NewKeyBus()
	defer s.Mount(bus)()
	s.Keyboard().Focus()

	for _, a := range actions {
		switch a {
		case actNext:
			s.Advance()
		case actBack:
			if !s.View().BackDisabled {
				s.Retreat()
			}
		case actRight:
			bus.Press(stepper.KeyNext)
		case actLeft:
			bus.Press(stepper.KeyPrevious)
		}
	}
	if encErr != nil {
		return fmt.Errorf("writing replay output: %w", encErr)
	}
	return nil
}

func renderRecord(s *stepper.Stepper, v stepper.View) replayRecord {
	r := replayRecord{
		Event:        "render",
		Target:       s.ID(),
		Step:         v.Step,
		Total:        v.Total,
		Slot:         v.Slot,
		Content:      s.Content(),
		Announcement: v.Announcement.Text,
		Back:         v.BackLabel,
		BackDisabled: v.BackDisabled,
		Next:         v.NextLabel,
	}
	if v.Indicators.ShowBadge {
		r.Badge = v.BadgeText
	}
	if v.Indicators.ShowBar {
		r.Bar = fmt.Sprintf("%.0f%%", v.Indicators.BarPercent)
	}
	return r
}
