package report

// Analysis is the full output of one pipeline invocation. Errors are
// fatal-to-a-part conditions (structural problems, failed groups);
// warnings are data-quality notes. An empty Findings slice with no
// errors means no missed tasks, which is a positive outcome.
type Analysis struct {
	Findings []Finding `json:"findings"`
	Errors   []string  `json:"errors"`
	Warnings []string  `json:"warnings"`
}

// Analyze runs the whole pipeline: normalize, filter to missed
// statuses, detect runs per group, classify, and sort. All
// diagnostics come back in the Analysis; nothing is accumulated
// across calls, so concurrent invocations on independent tables are
// safe.
func Analyze(t Table, opts Options) Analysis {
	opts = opts.withDefaults()

	clean, warnings, err := Normalize(t, opts)
	if err != nil {
		return Analysis{Errors: []string{err.Error()}, Warnings: warnings}
	}
	if len(clean) == 0 {
		return Analysis{
			Errors:   []string{"No valid data found after cleaning"},
			Warnings: warnings,
		}
	}

	missed := opts.missedStatusSet()
	matched := 0
	for _, record := range clean {
		if _, ok := missed[record.Status]; ok {
			matched++
		}
	}
	if matched == 0 {
		warnings = append(warnings, "No missed tasks found in the data")
		return Analysis{Warnings: warnings}
	}

	findings, groupErrors := BuildFindings(clean, opts)
	return Analysis{
		Findings: findings,
		Errors:   groupErrors,
		Warnings: warnings,
	}
}
