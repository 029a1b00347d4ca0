// Package rules implements the style rule engine: an ordered set of
// independent, pure checks applied to one SourceUnit at a time.
package rules

import (
	"sort"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// Rule is a single independent style-conformance check. Check never
// mutates the unit and never fails; constructs it cannot parse are
// skipped, not reported as errors.
type Rule interface {
	Code() string
	Description() string
	Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation
}

// All returns every rule in registration order. Reports list violations
// in this order, and within each rule in line order.
func All() []Rule {
	return []Rule{
		IndentWidth{},
		LineLength{},
		BlankLines{},
		OperatorSpacing{},
		CommaSpacing{},
		ImportOrder{},
		NamingConvention{},
	}
}

// Run applies the selected rules to the unit and aggregates the report.
func Run(unit *domain.SourceUnit, cfg domain.CheckConfig) *domain.CheckReport {
	report := &domain.CheckReport{Path: unit.Path}

	for _, rule := range All() {
		if !cfg.RuleSelected(rule.Code()) {
			continue
		}
		violations := rule.Check(unit, cfg)
		sort.SliceStable(violations, func(i, j int) bool {
			if violations[i].Line != violations[j].Line {
				return violations[i].Line < violations[j].Line
			}
			return violations[i].Col < violations[j].Col
		})
		report.Violations = append(report.Violations, violations...)
	}

	return report
}
