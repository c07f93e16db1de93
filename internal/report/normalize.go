package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanRecord is one validated, normalized daily report row. Date is
// truncated to midnight UTC; Status is uppercased.
type CleanRecord struct {
	Employee string
	Task     string
	Date     time.Time
	Status   string
}

// Layouts tried in order before the generic fallback. The US form
// wins over day-first when both could match.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"02-01-2006",
}

var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return dateOnly(parsed), nil
		}
	}
	for _, layout := range fallbackLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return dateOnly(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %s", value)
}

func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(value time.Time) string {
	return value.Format("2006-01-02")
}

// Normalize cleans the raw table into CleanRecords. Rows missing a
// required field, rows with unparseable dates, and duplicate
// (Employee, Task, Date) rows are dropped and counted into warnings;
// the first occurrence of a duplicate key is the one retained. Only a
// structurally invalid table (required column absent) is an error.
func Normalize(t Table, opts Options) ([]CleanRecord, []string, error) {
	if missing := t.missingColumns(); len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	employeeIdx, _ := t.columnIndex("Employee")
	taskIdx, _ := t.columnIndex("Task")
	dateIdx, _ := t.columnIndex("Date")
	statusIdx, _ := t.columnIndex("Status")

	// Caser is stateful, so build one per call rather than sharing.
	titleCase := cases.Title(language.English)

	var warnings []string
	clean := make([]CleanRecord, 0, len(t.Rows))
	seen := make(map[string]struct{}, len(t.Rows))
	missingFields := 0
	invalidDates := 0
	duplicates := 0

	for _, row := range t.Rows {
		employee := cellValue(row, employeeIdx)
		task := cellValue(row, taskIdx)
		dateStr := cellValue(row, dateIdx)
		status := cellValue(row, statusIdx)

		if employee == "" || task == "" || dateStr == "" || status == "" {
			missingFields++
			continue
		}

		date, err := parseDate(dateStr)
		if err != nil {
			invalidDates++
			continue
		}

		record := CleanRecord{
			Employee: titleCase.String(strings.ToLower(employee)),
			Task:     task,
			Date:     date,
			Status:   strings.ToUpper(status),
		}

		key := record.Employee + "\x00" + record.Task + "\x00" + formatDate(record.Date)
		if _, exists := seen[key]; exists {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
		clean = append(clean, record)
	}

	if missingFields > 0 {
		warnings = append(warnings, fmt.Sprintf("Removed %d rows with missing critical data", missingFields))
	}
	if invalidDates > 0 {
		warnings = append(warnings, fmt.Sprintf("Removed %d rows with invalid dates", invalidDates))
	}
	if duplicates > 0 {
		warnings = append(warnings, fmt.Sprintf("Removed %d duplicate entries", duplicates))
	}

	return clean, warnings, nil
}
