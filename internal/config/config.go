// Package config loads analysis options from a YAML rules file. Any
// field left unset falls back to the engine defaults, so a rules file
// can override just the keyword table, just the gap, or nothing.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"missed-task-audit/internal/report"
)

// Rules mirrors the YAML shape of a rules file.
type Rules struct {
	MaxGapDays     int           `yaml:"max_gap_days"`
	MissedStatuses []string      `yaml:"missed_statuses"`
	KeywordRules   []KeywordRule `yaml:"keyword_rules"`
}

// KeywordRule is one ordered classifier entry.
type KeywordRule struct {
	Keywords          []string `yaml:"keywords"`
	CriticalThreshold int      `yaml:"critical_threshold"`
	Fallback          string   `yaml:"fallback"`
}

// Load reads a rules file and converts it to engine options.
func Load(path string) (report.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.Options{}, err
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return report.Options{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return rules.Options()
}

// Options converts the YAML rules to report.Options, validating each
// keyword rule. Unset sections keep the engine defaults.
func (r Rules) Options() (report.Options, error) {
	opts := report.Options{
		MaxGapDays:     r.MaxGapDays,
		MissedStatuses: r.MissedStatuses,
	}
	for i, rule := range r.KeywordRules {
		if len(rule.Keywords) == 0 {
			return report.Options{}, fmt.Errorf("keyword rule %d has no keywords", i+1)
		}
		if rule.CriticalThreshold < 1 {
			return report.Options{}, fmt.Errorf("keyword rule %d: critical_threshold must be at least 1", i+1)
		}
		fallback, ok := report.ParsePriority(rule.Fallback)
		if !ok {
			return report.Options{}, fmt.Errorf("keyword rule %d: unknown fallback priority %q", i+1, rule.Fallback)
		}
		opts.Rules = append(opts.Rules, report.KeywordRule{
			Keywords:          rule.Keywords,
			CriticalThreshold: rule.CriticalThreshold,
			Fallback:          fallback,
		})
	}
	return opts, nil
}
