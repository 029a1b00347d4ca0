package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// LineLength flags lines whose character count exceeds the configured
// maximum. Characters are counted as runes, not bytes.
type LineLength struct{}

func (LineLength) Code() string { return domain.RuleLineLength }

func (LineLength) Description() string {
	return "lines must not exceed the maximum line length"
}

func (LineLength) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	var out []domain.Violation
	for i, line := range unit.Lines {
		n := utf8.RuneCountInString(line)
		if n <= cfg.MaxLineLength {
			continue
		}
		out = append(out, domain.Violation{
			RuleCode: domain.RuleLineLength,
			Line:     i + 1,
			Col:      cfg.MaxLineLength + 1,
			Message:  fmt.Sprintf("line too long (%d > %d characters)", n, cfg.MaxLineLength),
		})
	}
	return out
}
