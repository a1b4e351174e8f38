package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDatabase = `description^weight_ounces^calories
test whole corn^10^20
test pasta^4^5
`

func writeSampleCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "food.csv")
	if err := os.WriteFile(path, []byte(sampleDatabase), 0o600); err != nil {
		t.Fatalf("write sample catalog: %v", err)
	}
	return path
}

func TestSolveDynamic(t *testing.T) {
	t.Parallel()

	out, err := solve(writeSampleCatalog(t), "dynamic", 14, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "test pasta") || !strings.Contains(out, "test whole corn") {
		t.Fatalf("expected both items in output:\n%s", out)
	}
	if !strings.Contains(out, "total calories: 25") {
		t.Fatalf("expected totals in output:\n%s", out)
	}
	// Dynamic backtracking lists items in reverse catalog order.
	if strings.Index(out, "test pasta") > strings.Index(out, "test whole corn") {
		t.Fatalf("expected pasta before corn:\n%s", out)
	}
}

func TestSolveExhaustive(t *testing.T) {
	t.Parallel()

	out, err := solve(writeSampleCatalog(t), "exhaustive", 10, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "test whole corn") || strings.Contains(out, "test pasta") {
		t.Fatalf("expected corn only:\n%s", out)
	}
}

func TestSolveWithFilter(t *testing.T) {
	t.Parallel()

	// min-calories 10 excludes pasta before solving.
	out, err := solve(writeSampleCatalog(t), "exhaustive", 14, 10, 0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "test pasta") {
		t.Fatalf("expected pasta to be filtered out:\n%s", out)
	}
}

func TestSolveNothingFits(t *testing.T) {
	t.Parallel()

	out, err := solve(writeSampleCatalog(t), "dynamic", 3, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[empty food list]" {
		t.Fatalf("expected empty rendering, got:\n%s", out)
	}
}

func TestSolveMissingCatalog(t *testing.T) {
	t.Parallel()

	if _, err := solve(filepath.Join(t.TempDir(), "missing.csv"), "dynamic", 10, 0, 0, 0); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
