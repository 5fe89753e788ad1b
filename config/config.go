// Package config loads stepper.yaml, the file describing a stepper's steps,
// labels and progress display.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/initializ/stepper/i18n"
	"github.com/initializ/stepper/stepper"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "stepper.yaml"

// Step describes the host content for one step.
type Step struct {
	// Slot defaults to "step-N" for the N-th entry.
	Slot  string `yaml:"slot,omitempty" json:"slot,omitempty"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Body  string `yaml:"body,omitempty" json:"body,omitempty"`
}

// Labels overrides the navigation button texts.
type Labels struct {
	Back   string `yaml:"back,omitempty" json:"back,omitempty"`
	Next   string `yaml:"next,omitempty" json:"next,omitempty"`
	Finish string `yaml:"finish,omitempty" json:"finish,omitempty"`
}

// Config models stepper.yaml.
type Config struct {
	// Title is shown in the banner of an interactive run.
	Title      string `yaml:"title,omitempty" json:"title,omitempty"`
	TotalSteps *int   `yaml:"total_steps,omitempty" json:"total_steps,omitempty"`
	Progress   string `yaml:"progress,omitempty" json:"progress,omitempty"`
	Locale     string `yaml:"locale,omitempty" json:"locale,omitempty"`
	Labels     Labels `yaml:"labels,omitempty" json:"labels,omitempty"`
	// StepFormat overrides the announcement, e.g. "Step {current} of {total}".
	StepFormat string `yaml:"step_format,omitempty" json:"step_format,omitempty"`
	Steps      []Step `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Progress: string(stepper.ProgressBoth), Locale: "en"}
}

// Parse decodes raw YAML and fills defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing stepper config: %w", err)
	}
	if cfg.Progress == "" {
		cfg.Progress = string(stepper.ProgressBoth)
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stepper config %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load but returns Default when path does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Total resolves the step count: explicit total_steps, else the number of
// configured steps, else stepper.DefaultTotalSteps.
func (c *Config) Total() int {
	if c.TotalSteps != nil {
		return *c.TotalSteps
	}
	if len(c.Steps) > 0 {
		return len(c.Steps)
	}
	return stepper.DefaultTotalSteps
}

// Mode returns the parsed progress mode.
func (c *Config) Mode() stepper.ProgressMode {
	return stepper.ParseProgressMode(c.Progress)
}

// SlotFor returns the slot name of the i-th configured step (0-based).
func (c *Config) SlotFor(i int) string {
	if i < 0 || i >= len(c.Steps) {
		return ""
	}
	if s := c.Steps[i].Slot; s != "" {
		return s
	}
	return stepper.SlotName(i + 1)
}

// Slots returns the configured step bodies keyed by slot name.
func (c *Config) Slots() stepper.Slots {
	out := stepper.Slots{}
	for i, s := range c.Steps {
		out[c.SlotFor(i)] = s.Body
	}
	return out
}

// Outline returns the step titles in order, padded with empty entries up
// to Total.
func (c *Config) Outline() []string {
	n := c.Total()
	if n < 1 {
		n = 1
	}
	out := make([]string, n)
	for i := 0; i < n && i < len(c.Steps); i++ {
		out[i] = c.Steps[i].Title
	}
	return out
}

// Titles returns the configured step titles keyed by slot name.
func (c *Config) Titles() map[string]string {
	out := map[string]string{}
	for i, s := range c.Steps {
		out[c.SlotFor(i)] = s.Title
	}
	return out
}

// Translation resolves the locale and applies step_format.
func (c *Config) Translation() i18n.Translation {
	t := i18n.Lookup(c.Locale)
	if c.StepFormat != "" {
		t.StepXofY = i18n.FromTemplate(c.StepFormat)
	}
	return t
}

// EngineOptions converts the config into stepper options.
func (c *Config) EngineOptions() []stepper.Option {
	return []stepper.Option{
		stepper.WithTotalSteps(c.Total()),
		stepper.WithProgressMode(c.Mode()),
		stepper.WithTranslation(c.Translation()),
		stepper.WithLabels(stepper.Labels{
			Back:   c.Labels.Back,
			Next:   c.Labels.Next,
			Finish: c.Labels.Finish,
		}),
	}
}
