package report

import "strings"

const defaultMaxGapDays = 3

// Options tunes the analysis. The zero value means "use defaults";
// every entry point calls withDefaults so callers can set only the
// fields they care about.
type Options struct {
	// MaxGapDays is the largest calendar-day gap between two misses
	// that still counts as the same run. Default 3, which absorbs
	// weekends between weekday misses.
	MaxGapDays int

	// MissedStatuses are the normalized (uppercased) status values
	// treated as a missed task.
	MissedStatuses []string

	// Rules is the ordered keyword rule table for priority
	// classification. Earlier rules win.
	Rules []KeywordRule
}

// DefaultOptions returns the built-in analysis configuration.
func DefaultOptions() Options {
	return Options{
		MaxGapDays:     defaultMaxGapDays,
		MissedStatuses: []string{"NOT DONE", "NOTDONE", "INCOMPLETE", "MISSED"},
		Rules:          DefaultRules(),
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.MaxGapDays <= 0 {
		o.MaxGapDays = defaults.MaxGapDays
	}
	if len(o.MissedStatuses) == 0 {
		o.MissedStatuses = defaults.MissedStatuses
	}
	if len(o.Rules) == 0 {
		o.Rules = defaults.Rules
	}
	return o
}

func (o Options) missedStatusSet() map[string]struct{} {
	set := make(map[string]struct{}, len(o.MissedStatuses))
	for _, status := range o.MissedStatuses {
		set[strings.ToUpper(strings.TrimSpace(status))] = struct{}{}
	}
	return set
}
