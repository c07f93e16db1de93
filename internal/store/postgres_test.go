package store

import (
	"os"
	"testing"
)

func TestSanitizeSchema(t *testing.T) {
	if _, err := sanitizeSchema("missed_task_audit"); err != nil {
		t.Fatalf("valid schema rejected: %v", err)
	}
	if _, err := sanitizeSchema(" audit_v2 "); err != nil {
		t.Fatalf("expected trimmed schema to pass: %v", err)
	}
	for _, bad := range []string{"", "1audit", "audit;drop", "audit-runs"} {
		if _, err := sanitizeSchema(bad); err == nil {
			t.Fatalf("expected schema %q to be rejected", bad)
		}
	}
}

func TestURLFromEnv(t *testing.T) {
	t.Setenv("MISSED_TASK_AUDIT_DB_URL", "postgres://audit")
	t.Setenv("DATABASE_URL", "postgres://fallback")
	if got := URLFromEnv(); got != "postgres://audit" {
		t.Fatalf("expected dedicated var to win, got %s", got)
	}

	os.Unsetenv("MISSED_TASK_AUDIT_DB_URL")
	if got := URLFromEnv(); got != "postgres://fallback" {
		t.Fatalf("expected fallback var, got %s", got)
	}
}
