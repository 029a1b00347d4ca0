package rules

import (
	"fmt"
	"strings"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// IndentWidth flags lines whose indentation is not an exact multiple of
// the configured width, and any tab character used for indentation.
type IndentWidth struct{}

func (IndentWidth) Code() string { return domain.RuleIndentWidth }

func (IndentWidth) Description() string {
	return "indentation must be a multiple of the indent width, spaces only"
}

func (IndentWidth) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	masked := MaskUnit(unit)

	var out []domain.Violation
	for i, line := range unit.Lines {
		if masked[i].InString || isBlank(line) {
			continue
		}

		indent := leadingWhitespace(line)
		if strings.ContainsRune(indent, '\t') {
			msg := "indentation contains tab characters"
			if strings.ContainsRune(indent, ' ') {
				msg = "indentation mixes tabs and spaces"
			}
			out = append(out, domain.Violation{
				RuleCode: domain.RuleIndentWidth,
				Line:     i + 1,
				Col:      1,
				Message:  msg,
			})
			continue
		}

		if len(indent)%cfg.IndentWidth != 0 {
			out = append(out, domain.Violation{
				RuleCode: domain.RuleIndentWidth,
				Line:     i + 1,
				Col:      1,
				Message: fmt.Sprintf("indentation is %d spaces, expected a multiple of %d",
					len(indent), cfg.IndentWidth),
			})
		}
	}

	return out
}
