// Package export writes analysis output to JSON, CSV, and plain-text
// action plans for downstream reporting tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"missed-task-audit/internal/report"
)

// Report is the full JSON export shape: the analysis plus its summary
// and provenance.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Source      string           `json:"source"`
	Findings    []report.Finding `json:"findings"`
	Summary     report.Summary   `json:"summary"`
	Errors      []string         `json:"errors"`
	Warnings    []string         `json:"warnings"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(path string, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var findingsHeader = []string{"employee", "task", "dates_missed", "action", "priority", "days_missed"}

// WriteAlertsCSV writes findings at or above minPriority as CSV.
func WriteAlertsCSV(path string, findings []report.Finding, minPriority report.Priority) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(findingsHeader); err != nil {
		return err
	}
	for _, finding := range findings {
		if finding.Priority.Rank() > minPriority.Rank() {
			continue
		}
		record := []string{
			finding.Employee,
			finding.Task,
			finding.DatesMissed,
			finding.Action,
			string(finding.Priority),
			fmt.Sprintf("%d", finding.DaysMissed),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteActionPlan writes one action line per finding, escalations
// first (the findings are already sorted that way).
func WriteActionPlan(path string, findings []report.Finding) error {
	lines := make([]string, 0, len(findings))
	for _, finding := range findings {
		lines = append(lines, finding.ActionLine())
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// WriteTableCSV writes a raw table back out as CSV, header first.
func WriteTableCSV(path string, t report.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
