package report

import "testing"

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalIssues != 0 || summary.EmployeesAffected != 0 || summary.TasksAffected != 0 {
		t.Fatalf("expected zero counts, got %+v", summary)
	}
	if len(summary.ActionBreakdown) != 0 || len(summary.PriorityBreakdown) != 0 {
		t.Fatalf("expected empty breakdowns, got %+v", summary)
	}
	if summary.AvgDaysMissed != 0 {
		t.Fatalf("expected zero average, got %f", summary.AvgDaysMissed)
	}
	if summary.MostProblematicEmployee != "None" || summary.MostProblematicTask != "None" {
		t.Fatalf("expected sentinel None, got %+v", summary)
	}
}

func TestSummarizeBreakdowns(t *testing.T) {
	findings := []Finding{
		{Employee: "John Smith", Task: "Safety Check", Action: ActionEscalate, Priority: PriorityCritical, DaysMissed: 2},
		{Employee: "John Smith", Task: "Inventory Count", Action: ActionFollowUp, Priority: PriorityLow, DaysMissed: 1},
		{Employee: "Sarah Johnson", Task: "Safety Check", Action: ActionFollowUp, Priority: PriorityCritical, DaysMissed: 1},
	}
	summary := Summarize(findings)

	if summary.TotalIssues != 3 {
		t.Fatalf("expected 3 issues, got %d", summary.TotalIssues)
	}
	if summary.EmployeesAffected != 2 || summary.TasksAffected != 2 {
		t.Fatalf("unexpected distinct counts: %+v", summary)
	}
	if summary.ActionBreakdown[ActionFollowUp] != 2 || summary.ActionBreakdown[ActionEscalate] != 1 {
		t.Fatalf("unexpected action breakdown: %v", summary.ActionBreakdown)
	}
	if summary.PriorityBreakdown["Critical"] != 2 || summary.PriorityBreakdown["Low"] != 1 {
		t.Fatalf("unexpected priority breakdown: %v", summary.PriorityBreakdown)
	}
	if !floatEqual(summary.AvgDaysMissed, 4.0/3.0) {
		t.Fatalf("unexpected average: %f", summary.AvgDaysMissed)
	}
	if summary.MostProblematicEmployee != "John Smith" {
		t.Fatalf("expected John Smith, got %s", summary.MostProblematicEmployee)
	}
	if summary.MostProblematicTask != "Safety Check" {
		t.Fatalf("expected Safety Check, got %s", summary.MostProblematicTask)
	}
}

func TestSummarizeTieBreaksLexically(t *testing.T) {
	findings := []Finding{
		{Employee: "Zoe Adams", Task: "Beta Task", Action: ActionFollowUp, Priority: PriorityLow, DaysMissed: 1},
		{Employee: "Amy Cole", Task: "Alpha Task", Action: ActionFollowUp, Priority: PriorityLow, DaysMissed: 1},
	}
	summary := Summarize(findings)
	if summary.MostProblematicEmployee != "Amy Cole" {
		t.Fatalf("expected lexical tie-break, got %s", summary.MostProblematicEmployee)
	}
	if summary.MostProblematicTask != "Alpha Task" {
		t.Fatalf("expected lexical tie-break, got %s", summary.MostProblematicTask)
	}
}

func floatEqual(a float64, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.01
}
