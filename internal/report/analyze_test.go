package report

import (
	"strings"
	"testing"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	table := Table{
		Columns: []string{"Employee", "Task", "Date", "Status"},
		Rows: [][]string{
			{"john smith", "Safety Check", "2024-01-01", "Not Done"},
			{"John Smith", "Safety Check", "2024-01-02", "Not Done"},
			{"Sarah Johnson", "Report Submission", "2024-01-05", "Not Done"},
			{"Sarah Johnson", "Report Submission", "2024-01-05", "Not Done"},
			{"Mike Davis", "Inventory Count", "2024-01-03", "Done"},
		},
	}
	analysis := Analyze(table, Options{})
	if len(analysis.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", analysis.Errors)
	}
	if len(analysis.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(analysis.Findings))
	}
	if analysis.Findings[0].Employee != "John Smith" || analysis.Findings[0].Priority != PriorityCritical {
		t.Fatalf("expected critical safety finding first, got %+v", analysis.Findings[0])
	}
	dupWarning := false
	for _, warning := range analysis.Warnings {
		if strings.Contains(warning, "duplicate") {
			dupWarning = true
		}
	}
	if !dupWarning {
		t.Fatalf("expected duplicate warning, got %v", analysis.Warnings)
	}
}

func TestAnalyzeNoMissedTasks(t *testing.T) {
	table := Table{
		Columns: []string{"Employee", "Task", "Date", "Status"},
		Rows: [][]string{
			{"John Smith", "Safety Check", "2024-01-01", "Done"},
			{"Sarah Johnson", "Report Submission", "2024-01-02", "Done"},
		},
	}
	analysis := Analyze(table, Options{})
	if len(analysis.Findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(analysis.Findings))
	}
	if len(analysis.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", analysis.Errors)
	}
	found := false
	for _, warning := range analysis.Warnings {
		if warning == "No missed tasks found in the data" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected no-missed-tasks warning, got %v", analysis.Warnings)
	}
}

func TestAnalyzeStructuralError(t *testing.T) {
	table := Table{
		Columns: []string{"Employee", "Task", "Date"},
		Rows:    [][]string{{"John Smith", "Safety Check", "2024-01-01"}},
	}
	analysis := Analyze(table, Options{})
	if len(analysis.Findings) != 0 {
		t.Fatalf("expected no findings on structural error")
	}
	if len(analysis.Errors) != 1 || !strings.Contains(analysis.Errors[0], "Status") {
		t.Fatalf("expected missing-column error, got %v", analysis.Errors)
	}
}

func TestAnalyzeNothingSurvivesCleaning(t *testing.T) {
	table := Table{
		Columns: []string{"Employee", "Task", "Date", "Status"},
		Rows: [][]string{
			{"John Smith", "Safety Check", "never", "Done"},
			{"", "", "", ""},
		},
	}
	analysis := Analyze(table, Options{})
	if len(analysis.Errors) != 1 || analysis.Errors[0] != "No valid data found after cleaning" {
		t.Fatalf("expected cleaning error, got %v", analysis.Errors)
	}
	if len(analysis.Warnings) == 0 {
		t.Fatalf("expected data-quality warnings alongside the error")
	}
}

func TestAnalyzeCustomOptions(t *testing.T) {
	table := Table{
		Columns: []string{"Employee", "Task", "Date", "Status"},
		Rows: [][]string{
			{"John Smith", "Inventory Count", "2024-01-01", "Skipped"},
			{"John Smith", "Inventory Count", "2024-01-06", "Skipped"},
		},
	}
	opts := Options{
		MaxGapDays:     5,
		MissedStatuses: []string{"SKIPPED"},
	}
	analysis := Analyze(table, opts)
	if len(analysis.Findings) != 1 {
		t.Fatalf("expected 1 merged finding with widened gap, got %d", len(analysis.Findings))
	}
	if analysis.Findings[0].DaysMissed != 2 {
		t.Fatalf("expected 2-day run, got %d", analysis.Findings[0].DaysMissed)
	}
}
