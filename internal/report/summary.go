package report

// Summary is the descriptive aggregate over a finding set.
type Summary struct {
	TotalIssues             int            `json:"total_issues"`
	EmployeesAffected       int            `json:"employees_affected"`
	TasksAffected           int            `json:"tasks_affected"`
	ActionBreakdown         map[string]int `json:"action_breakdown"`
	PriorityBreakdown       map[string]int `json:"priority_breakdown"`
	AvgDaysMissed           float64        `json:"avg_days_missed"`
	MostProblematicEmployee string         `json:"most_problematic_employee"`
	MostProblematicTask     string         `json:"most_problematic_task"`
}

// Summarize computes summary statistics over findings. On an empty
// set every count is zero, breakdowns are empty, and the
// most-problematic fields hold the sentinel "None". AvgDaysMissed is
// unrounded; presentation formats it.
func Summarize(findings []Finding) Summary {
	summary := Summary{
		ActionBreakdown:         map[string]int{},
		PriorityBreakdown:       map[string]int{},
		MostProblematicEmployee: "None",
		MostProblematicTask:     "None",
	}
	if len(findings) == 0 {
		return summary
	}

	employeeCounts := map[string]int{}
	taskCounts := map[string]int{}
	totalDays := 0
	for _, finding := range findings {
		summary.ActionBreakdown[finding.Action]++
		summary.PriorityBreakdown[string(finding.Priority)]++
		employeeCounts[finding.Employee]++
		taskCounts[finding.Task]++
		totalDays += finding.DaysMissed
	}

	summary.TotalIssues = len(findings)
	summary.EmployeesAffected = len(employeeCounts)
	summary.TasksAffected = len(taskCounts)
	summary.AvgDaysMissed = float64(totalDays) / float64(len(findings))
	summary.MostProblematicEmployee = topCounted(employeeCounts)
	summary.MostProblematicTask = topCounted(taskCounts)

	return summary
}

// topCounted picks the key with the highest count; equal counts break
// to the lexicographically smallest key so the result is stable.
func topCounted(counts map[string]int) string {
	best := ""
	bestCount := -1
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}
