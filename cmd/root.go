// Package cmd implements the stepper CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/initializ/stepper/config"
	"github.com/initializ/stepper/internal/logging"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string
	logFile       string

	appVersion = "dev"

	// overrides holds flag and STEPPER_* environment values applied on top of
	// the config file.
	overrides = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "stepper",
	Short: "Stepper drives a multi-step workflow in the terminal",
	Long: "Stepper renders a step-by-step workflow described in stepper.yaml, " +
		"with a progress indicator, Back/Next navigation and step announcements.",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")
	pf.StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	pf.String("progress", "", "progress display: bar, steps, both, or none")
	pf.Int("total-steps", 0, "override the number of steps")
	pf.String("locale", "", "language for labels and announcements")

	mustBind(config.KeyProgress, "progress")
	mustBind(config.KeyTotalSteps, "total-steps")
	mustBind(config.KeyLocale, "locale")
	mustBind(config.KeyTheme, "theme")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
}

func mustBind(key, flag string) {
	if err := overrides.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("stepper %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfigPath() (string, error) {
	if filepath.IsAbs(cfgFile) {
		return cfgFile, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return filepath.Join(wd, cfgFile), nil
}

// loadConfig reads --config, falling back to defaults when the file is
// missing, and applies overrides.
func loadConfig() (*config.Config, error) {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	config.ApplyOverrides(cfg, overrides)

	result := config.Validate(cfg)
	if !result.IsValid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
		}
		return nil, fmt.Errorf("config validation failed: %d error(s)", len(result.Errors))
	}
	return cfg, nil
}

// newLogger opens --log-file when set. Without it, verbose runs log to
// fallback and quiet runs discard.
func newLogger(fallback io.Writer) (*logging.ZapLogger, func(), error) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		l := logging.New(f, verbose)
		return l, func() {
			_ = l.Sync()
			_ = f.Close()
		}, nil
	}
	if verbose && fallback != nil {
		l := logging.New(fallback, true)
		return l, func() { _ = l.Sync() }, nil
	}
	return logging.Nop(), func() {}, nil
}

func stdout(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}

func stderr(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stderr
	}
	return cmd.ErrOrStderr()
}

func themeName(v *viper.Viper) string {
	if themeOverride != "" {
		return themeOverride
	}
	return v.GetString(config.KeyTheme)
}
