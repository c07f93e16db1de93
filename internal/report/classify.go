package report

import "strings"

// Priority is the urgency tier assigned to a finding.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Rank orders priorities for sorting and threshold filters.
// Critical sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ParsePriority resolves a case-insensitive priority name.
func ParsePriority(value string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "critical":
		return PriorityCritical, true
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return "", false
	}
}

// KeywordRule matches task names by substring and escalates runs at or
// above CriticalThreshold days to Critical; shorter runs get Fallback.
type KeywordRule struct {
	Keywords          []string
	CriticalThreshold int
	Fallback          Priority
}

func (r KeywordRule) matches(taskLower string) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(taskLower, keyword) {
			return true
		}
	}
	return false
}

// DefaultRules is the built-in rule table. Order matters: the first
// matching rule decides, so the safety/compliance class takes
// precedence over the quality/customer class.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{
			Keywords:          []string{"safety", "security", "compliance", "audit", "emergency", "critical"},
			CriticalThreshold: 1,
			Fallback:          PriorityHigh,
		},
		{
			Keywords:          []string{"quality", "customer", "client", "deadline", "urgent"},
			CriticalThreshold: 3,
			Fallback:          PriorityHigh,
		},
	}
}

// Classify scores a run by its length and the task name. Keyword rules
// are checked in order; when none match, length alone decides.
func Classify(daysMissed int, task string, rules []KeywordRule) Priority {
	taskLower := strings.ToLower(task)
	for _, rule := range rules {
		if rule.matches(taskLower) {
			if daysMissed >= rule.CriticalThreshold {
				return PriorityCritical
			}
			return rule.Fallback
		}
	}

	switch {
	case daysMissed >= 5:
		return PriorityCritical
	case daysMissed >= 3:
		return PriorityHigh
	case daysMissed >= 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
