package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/initializ/stepper/config"
)

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate stepper.yaml",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	result := &config.ValidationResult{}
	schemaErrs, err := config.ValidateYAMLSchema(data)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("schema: %v", err))
	}
	for _, e := range schemaErrs {
		result.Errors = append(result.Errors, fmt.Sprintf("schema: %s", e))
	}

	cfg, err := config.Parse(data)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.ApplyOverrides(cfg, overrides)
	semantic := config.Validate(cfg)
	result.Errors = append(result.Errors, semantic.Errors...)
	result.Warnings = append(result.Warnings, semantic.Warnings...)

	errOut := stderr(cmd)
	for _, w := range result.Warnings {
		fmt.Fprintf(errOut, "WARNING: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(errOut, "ERROR: %s\n", e)
	}

	if strict && len(result.Warnings) > 0 {
		return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", len(result.Warnings))
	}
	if !result.IsValid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	fmt.Fprintln(stdout(cmd), "Validation passed.")
	return nil
}
