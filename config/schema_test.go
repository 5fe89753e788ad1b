package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLSchemaValid(t *testing.T) {
	errs, err := ValidateYAMLSchema([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got: %v", errs)
	}
}

func TestValidateYAMLSchemaEmpty(t *testing.T) {
	errs, err := ValidateYAMLSchema(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("empty document should be valid, got: %v", errs)
	}
}

func TestValidateYAMLSchemaRejects(t *testing.T) {
	errs, err := ValidateYAMLSchema([]byte("total_steps: 0\nunknown: true\nsteps:\n  - colour: red\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) < 3 {
		t.Fatalf("expected at least 3 errors, got: %v", errs)
	}
	joined := strings.Join(errs, "\n")
	if !strings.Contains(joined, "total_steps") {
		t.Errorf("expected total_steps error in %v", errs)
	}
}

func TestValidateSchemaBadJSON(t *testing.T) {
	if _, err := ValidateSchema([]byte("{")); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
