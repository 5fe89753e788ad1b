package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeTestStepperYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepper.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing stepper.yaml: %v", err)
	}
	return path
}

// useConfig points the global --config at path for the duration of the test.
func useConfig(t *testing.T, path string) {
	t.Helper()
	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })
}

func captureCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	c := &cobra.Command{}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(errOut)
	return c, out, errOut
}

const threeStepYAML = `
title: Signup
progress: both
steps:
  - title: Account
    body: Pick a username.
  - title: Profile
    body: Tell us about yourself.
  - title: Review
    body: Check everything.
`
