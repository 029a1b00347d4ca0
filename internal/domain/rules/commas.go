package rules

import (
	"github.com/pepcheck/pepcheck/internal/domain"
)

// CommaSpacing requires a comma to be followed by exactly one space
// (unless it ends the line or sits directly before a closing bracket, as
// in a one-tuple) and never preceded by whitespace.
type CommaSpacing struct{}

func (CommaSpacing) Code() string { return domain.RuleCommaSpacing }

func (CommaSpacing) Description() string {
	return "no space before a comma, exactly one after"
}

func (CommaSpacing) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	masked := MaskUnit(unit)

	var out []domain.Violation
	for i, ml := range masked {
		if ml.InString {
			continue
		}
		line := ml.Text
		for j := 0; j < len(line); j++ {
			if line[j] != ',' {
				continue
			}

			if j > 0 && (line[j-1] == ' ' || line[j-1] == '\t') {
				out = append(out, domain.Violation{
					RuleCode: domain.RuleCommaSpacing,
					Line:     i + 1,
					Col:      j + 1,
					Message:  `whitespace before ","`,
				})
			}

			if j+1 >= len(line) {
				continue // end of line; trailing spaces were trimmed by masking
			}
			next := line[j+1]
			switch {
			case next == ')' || next == ']' || next == '}':
				// trailing comma before a closer is fine
			case next != ' ':
				out = append(out, domain.Violation{
					RuleCode: domain.RuleCommaSpacing,
					Line:     i + 1,
					Col:      j + 2,
					Message:  `expected one space after ","`,
				})
			case j+2 < len(line) && line[j+2] == ' ':
				out = append(out, domain.Violation{
					RuleCode: domain.RuleCommaSpacing,
					Line:     i + 1,
					Col:      j + 2,
					Message:  `multiple spaces after ","`,
				})
			}
		}
	}

	return out
}
