package report

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestFindRunsSplitsOnGap(t *testing.T) {
	runs := FindRuns([]time.Time{day("2024-01-01"), day("2024-01-10")}, 3)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if len(runs[0]) != 1 || len(runs[1]) != 1 {
		t.Fatalf("expected single-date runs, got %d and %d", len(runs[0]), len(runs[1]))
	}
}

func TestFindRunsBoundaryGap(t *testing.T) {
	// Friday to Monday is a 3-day gap and stays one run; 4 days splits.
	runs := FindRuns([]time.Time{day("2024-01-05"), day("2024-01-08")}, 3)
	if len(runs) != 1 {
		t.Fatalf("expected 3-day gap to stay one run, got %d runs", len(runs))
	}
	runs = FindRuns([]time.Time{day("2024-01-05"), day("2024-01-09")}, 3)
	if len(runs) != 2 {
		t.Fatalf("expected 4-day gap to split, got %d runs", len(runs))
	}
}

func TestFindRunsOrderIndependent(t *testing.T) {
	dates := []time.Time{
		day("2024-01-02"), day("2024-01-10"), day("2024-01-01"),
		day("2024-01-11"), day("2024-01-03"),
	}
	shuffled := []time.Time{
		day("2024-01-11"), day("2024-01-03"), day("2024-01-10"),
		day("2024-01-01"), day("2024-01-02"),
	}

	first := FindRuns(dates, 3)
	second := FindRuns(shuffled, 3)
	if len(first) != len(second) {
		t.Fatalf("run counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("run %d lengths differ", i)
		}
		for j := range first[i] {
			if !first[i][j].Equal(second[i][j]) {
				t.Fatalf("run %d date %d differs", i, j)
			}
		}
	}
}

func TestFindRunsPartitionsInput(t *testing.T) {
	dates := []time.Time{
		day("2024-01-01"), day("2024-01-02"), day("2024-01-05"),
		day("2024-01-20"), day("2024-01-21"), day("2024-01-22"),
	}
	runs := FindRuns(dates, 3)

	total := 0
	seen := map[string]bool{}
	for _, run := range runs {
		if len(run) == 0 {
			t.Fatalf("empty run emitted")
		}
		total += len(run)
		for _, date := range run {
			key := formatDate(date)
			if seen[key] {
				t.Fatalf("date %s appears in more than one run", key)
			}
			seen[key] = true
		}
	}
	if total != len(dates) {
		t.Fatalf("runs cover %d dates, input has %d", total, len(dates))
	}
	for _, date := range dates {
		if !seen[formatDate(date)] {
			t.Fatalf("date %s missing from runs", formatDate(date))
		}
	}
}

func TestFindRunsEmpty(t *testing.T) {
	if runs := FindRuns(nil, 3); runs != nil {
		t.Fatalf("expected nil runs for empty input, got %v", runs)
	}
}
