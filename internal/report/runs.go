package report

import (
	"sort"
	"time"
)

// FindRuns partitions dates into maximal runs where consecutive dates
// are at most maxGapDays apart. Input order does not matter; the
// slice is copied and sorted ascending first. Every date lands in
// exactly one run and runs come back in ascending date order.
func FindRuns(dates []time.Time, maxGapDays int) [][]time.Time {
	if len(dates) == 0 {
		return nil
	}

	sorted := append([]time.Time{}, dates...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	runs := [][]time.Time{}
	current := []time.Time{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		if daysBetween(sorted[i-1], sorted[i]) <= maxGapDays {
			current = append(current, sorted[i])
			continue
		}
		runs = append(runs, current)
		current = []time.Time{sorted[i]}
	}
	runs = append(runs, current)

	return runs
}

func daysBetween(earlier, later time.Time) int {
	delta := dateOnly(later).Sub(dateOnly(earlier))
	return int(delta.Hours() / 24)
}
