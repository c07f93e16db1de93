package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"missed-task-audit/internal/report"
)

func printAnalysis(inputPath string, table report.Table, opts report.Options, validationMessage string, analysis report.Analysis, summary report.Summary) {
	stats := report.Describe(table, opts)

	fmt.Println("Daily Staff Report Audit")
	fmt.Println(strings.Repeat("=", 38))
	fmt.Printf("Input: %s\n", filepath.Base(inputPath))
	fmt.Printf("Records: %d | Employees: %d | Tasks: %d\n", stats.Records, stats.Employees, stats.Tasks)
	fmt.Printf("Not done: %d\n", stats.NotDoneCount)
	if !stats.FirstDate.IsZero() {
		fmt.Printf("Date range: %s to %s\n", stats.FirstDate.Format("2006-01-02"), stats.LastDate.Format("2006-01-02"))
	}
	if strings.Contains(validationMessage, "warnings") {
		fmt.Println(validationMessage)
	}

	if len(analysis.Errors) > 0 {
		fmt.Println("\nErrors")
		fmt.Println(strings.Repeat("-", 38))
		for _, message := range analysis.Errors {
			fmt.Println(message)
		}
	}
	if len(analysis.Warnings) > 0 {
		fmt.Println("\nWarnings")
		fmt.Println(strings.Repeat("-", 38))
		for _, message := range analysis.Warnings {
			fmt.Println(message)
		}
	}

	fmt.Println("\nFindings")
	fmt.Println(strings.Repeat("-", 38))
	if len(analysis.Findings) == 0 {
		fmt.Println("No missed tasks found.")
		return
	}
	for _, finding := range analysis.Findings {
		fmt.Println(finding.String())
	}

	fmt.Println("\nSummary")
	fmt.Println(strings.Repeat("-", 38))
	fmt.Printf("Total issues: %d\n", summary.TotalIssues)
	fmt.Printf("Employees affected: %d | Tasks affected: %d\n", summary.EmployeesAffected, summary.TasksAffected)
	fmt.Printf("Avg days missed: %.1f\n", summary.AvgDaysMissed)
	fmt.Printf("Actions: %s\n", formatBreakdown(summary.ActionBreakdown))
	fmt.Printf("Priorities: %s\n", formatBreakdown(summary.PriorityBreakdown))
	fmt.Printf("Most issues: %s\n", summary.MostProblematicEmployee)
	fmt.Printf("Most missed task: %s\n", summary.MostProblematicTask)
}

func formatBreakdown(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(breakdown))
	for key := range breakdown {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", key, breakdown[key]))
	}
	return strings.Join(parts, " | ")
}
