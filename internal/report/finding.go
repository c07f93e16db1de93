package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	ActionFollowUp = "Follow-up"
	ActionEscalate = "Escalate"
)

// Finding is one actionable result: a run of missed dates for one
// (Employee, Task) pair, scored and labeled.
type Finding struct {
	Employee    string   `json:"employee"`
	Task        string   `json:"task"`
	DatesMissed string   `json:"dates_missed"`
	Action      string   `json:"action"`
	Priority    Priority `json:"priority"`
	DaysMissed  int      `json:"days_missed"`
}

type taskGroup struct {
	employee string
	task     string
	dates    []time.Time
}

// BuildFindings filters clean records to missed statuses, detects runs
// per (Employee, Task) group, and returns findings sorted by priority
// rank ascending then DaysMissed descending (ties: employee, task). A
// failure inside one group is reported in the second return value and
// never aborts the remaining groups.
func BuildFindings(records []CleanRecord, opts Options) ([]Finding, []string) {
	opts = opts.withDefaults()
	missed := opts.missedStatusSet()

	groups := map[string]*taskGroup{}
	var order []string
	for _, record := range records {
		if _, ok := missed[record.Status]; !ok {
			continue
		}
		key := record.Employee + "\x00" + record.Task
		group, exists := groups[key]
		if !exists {
			group = &taskGroup{employee: record.Employee, task: record.Task}
			groups[key] = group
			order = append(order, key)
		}
		group.dates = append(group.dates, record.Date)
	}
	sort.Strings(order)

	var findings []Finding
	var groupErrors []string
	for _, key := range order {
		group := groups[key]
		built, err := buildGroupFindings(group, opts)
		if err != nil {
			groupErrors = append(groupErrors, fmt.Sprintf("Error processing %s - %s: %v", group.employee, group.task, err))
			continue
		}
		findings = append(findings, built...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Priority.Rank() != findings[j].Priority.Rank() {
			return findings[i].Priority.Rank() < findings[j].Priority.Rank()
		}
		if findings[i].DaysMissed != findings[j].DaysMissed {
			return findings[i].DaysMissed > findings[j].DaysMissed
		}
		if findings[i].Employee != findings[j].Employee {
			return findings[i].Employee < findings[j].Employee
		}
		return findings[i].Task < findings[j].Task
	})

	return findings, groupErrors
}

func buildGroupFindings(group *taskGroup, opts Options) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	dates := distinctDates(group.dates)
	if len(dates) == 0 {
		return nil, fmt.Errorf("no valid dates")
	}

	for _, run := range FindRuns(dates, opts.MaxGapDays) {
		daysMissed := len(run)
		finding := Finding{
			Employee:   group.employee,
			Task:       group.task,
			Action:     ActionFollowUp,
			Priority:   Classify(daysMissed, group.task, opts.Rules),
			DaysMissed: daysMissed,
		}
		if daysMissed == 1 {
			finding.DatesMissed = formatDate(run[0])
		} else {
			finding.Action = ActionEscalate
			finding.DatesMissed = fmt.Sprintf("%s to %s", formatDate(run[0]), formatDate(run[len(run)-1]))
		}
		findings = append(findings, finding)
	}

	return findings, nil
}

func distinctDates(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	distinct := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		key := formatDate(date)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, date)
	}
	return distinct
}

// ActionLine renders the one-line action-plan entry for a finding.
func (f Finding) ActionLine() string {
	if f.Action == ActionEscalate {
		return fmt.Sprintf("URGENT: Contact %s about %s (missed %d days)", f.Employee, f.Task, f.DaysMissed)
	}
	return fmt.Sprintf("Follow up with %s about %s", f.Employee, f.Task)
}

// String renders a finding for the text report.
func (f Finding) String() string {
	return strings.Join([]string{
		f.Employee,
		f.Task,
		f.DatesMissed,
		f.Action,
		string(f.Priority),
		fmt.Sprintf("%d", f.DaysMissed),
	}, " | ")
}
