// Package sample generates demonstration daily report data with
// seeded miss patterns so the analysis output is non-trivial.
package sample

import (
	"math/rand"
	"time"

	"missed-task-audit/internal/report"
)

var employees = []string{
	"John Smith",
	"Sarah Johnson",
	"Mike Davis",
	"Emily Brown",
	"David Wilson",
}

var tasks = []string{
	"Daily Safety Check",
	"Equipment Maintenance",
	"Quality Control Review",
	"Inventory Count",
	"Team Meeting Attendance",
	"Report Submission",
	"Customer Follow-up",
}

// Generate builds a sample table covering the `days` days ending at
// `end`. Each employee gets 3-4 random tasks per day with roughly a
// 15% miss rate, plus two fixed patterns: Mike Davis misses Equipment
// Maintenance every third calendar day, and Sarah Johnson misses
// Report Submission on the final three days. Same seed, same table.
func Generate(seed int64, end time.Time, days int) report.Table {
	if days <= 0 {
		days = 10
	}
	rng := rand.New(rand.NewSource(seed))
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	table := report.Table{Columns: []string{"Employee", "Task", "Date", "Status"}}

	for _, employee := range employees {
		for offset := 0; offset < days; offset++ {
			date := start.AddDate(0, 0, offset)
			for _, task := range pickTasks(rng) {
				status := "Done"
				if rng.Float64() < 0.15 {
					status = "Not Done"
				}
				if employee == "Mike Davis" && task == "Equipment Maintenance" && date.Day()%3 == 0 {
					status = "Not Done"
				}
				if employee == "Sarah Johnson" && task == "Report Submission" && !date.Before(end.AddDate(0, 0, -2)) {
					status = "Not Done"
				}
				table.Rows = append(table.Rows, []string{
					employee,
					task,
					date.Format("2006-01-02"),
					status,
				})
			}
		}
	}

	return table
}

func pickTasks(rng *rand.Rand) []string {
	count := 3 + rng.Intn(2)
	picked := append([]string{}, tasks...)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:count]
}
