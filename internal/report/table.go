// Package report analyzes daily task-completion records and derives
// prioritized follow-up and escalation findings for missed tasks.
package report

import (
	"fmt"
	"strings"
	"time"
)

// Table is the minimal tabular input contract: a header row plus data
// rows of equal-or-ragged width. Cells are text; dates arrive as text
// in any of the supported layouts.
type Table struct {
	Columns []string
	Rows    [][]string
}

var requiredColumns = []string{"Employee", "Task", "Date", "Status"}

var columnAliases = map[string][]string{
	"Employee": {"employee", "employee_name", "staff", "staff_member", "name"},
	"Task":     {"task", "task_name", "activity", "duty"},
	"Date":     {"date", "task_date", "report_date", "day"},
	"Status":   {"status", "state", "outcome", "completion"},
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func (t Table) columnIndex(canonical string) (int, bool) {
	normalized := make(map[string]int, len(t.Columns))
	for idx, header := range t.Columns {
		key := normalizeHeader(header)
		if _, exists := normalized[key]; !exists {
			normalized[key] = idx
		}
	}
	for _, alias := range columnAliases[canonical] {
		if idx, ok := normalized[normalizeHeader(alias)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func (t Table) missingColumns() []string {
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := t.columnIndex(col); !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Validate checks the table before analysis. It fails on an empty
// table or missing required columns, and reports per-column null
// counts as a non-fatal warning message otherwise.
func Validate(t Table) (bool, string) {
	if len(t.Rows) == 0 {
		return false, "The uploaded file is empty"
	}

	if missing := t.missingColumns(); len(missing) > 0 {
		return false, fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", "))
	}

	var issues []string
	for _, col := range requiredColumns {
		idx, _ := t.columnIndex(col)
		nullCount := 0
		for _, row := range t.Rows {
			if cellValue(row, idx) == "" {
				nullCount++
			}
		}
		if nullCount > 0 {
			issues = append(issues, fmt.Sprintf("%s: %d missing values", col, nullCount))
		}
	}
	if len(issues) > 0 {
		return true, fmt.Sprintf("Data validation warnings: %s", strings.Join(issues, "; "))
	}

	return true, "Data validation successful"
}

// TableStats is a quick dataset overview for display before analysis.
type TableStats struct {
	Records      int
	Employees    int
	Tasks        int
	NotDoneCount int
	FirstDate    time.Time
	LastDate     time.Time
}

// Describe computes preview metrics over the raw table. Rows with
// unparseable dates still count toward Records; they are excluded from
// the date range only.
func Describe(t Table, opts Options) TableStats {
	opts = opts.withDefaults()
	stats := TableStats{Records: len(t.Rows)}

	employeeIdx, _ := t.columnIndex("Employee")
	taskIdx, _ := t.columnIndex("Task")
	dateIdx, _ := t.columnIndex("Date")
	statusIdx, _ := t.columnIndex("Status")

	missed := opts.missedStatusSet()
	employees := map[string]struct{}{}
	tasks := map[string]struct{}{}

	for _, row := range t.Rows {
		if employee := cellValue(row, employeeIdx); employee != "" {
			employees[strings.ToUpper(employee)] = struct{}{}
		}
		if task := cellValue(row, taskIdx); task != "" {
			tasks[strings.ToUpper(task)] = struct{}{}
		}
		if _, ok := missed[strings.ToUpper(cellValue(row, statusIdx))]; ok {
			stats.NotDoneCount++
		}
		if parsed, err := parseDate(cellValue(row, dateIdx)); err == nil {
			if stats.FirstDate.IsZero() || parsed.Before(stats.FirstDate) {
				stats.FirstDate = parsed
			}
			if stats.LastDate.IsZero() || parsed.After(stats.LastDate) {
				stats.LastDate = parsed
			}
		}
	}

	stats.Employees = len(employees)
	stats.Tasks = len(tasks)
	return stats
}
