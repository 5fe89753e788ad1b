package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. STEPPER_PROGRESS.
const EnvPrefix = "STEPPER"

// Override keys understood by ApplyOverrides.
const (
	KeyProgress   = "progress"
	KeyTotalSteps = "total_steps"
	KeyLocale     = "locale"
	KeyTheme      = "theme"
)

// NewViper returns a viper instance reading STEPPER_* environment variables.
// Callers bind command flags onto the same keys.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// ApplyOverrides copies flag and environment overrides held by v onto cfg.
func ApplyOverrides(cfg *Config, v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet(KeyProgress) {
		cfg.Progress = v.GetString(KeyProgress)
	}
	if v.IsSet(KeyTotalSteps) {
		n := v.GetInt(KeyTotalSteps)
		cfg.TotalSteps = &n
	}
	if v.IsSet(KeyLocale) {
		cfg.Locale = v.GetString(KeyLocale)
	}
}
