package rules

import (
	"fmt"
	"strings"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// BlankLines enforces PEP 8 vertical spacing: exactly two blank lines
// before a top-level definition and exactly one before a method
// definition inside a class body. Decorators attach to their definition,
// comment lines are transparent, and a definition opening a file or a
// nested body is exempt.
type BlankLines struct{}

func (BlankLines) Code() string { return domain.RuleBlankLines }

func (BlankLines) Description() string {
	return "two blank lines before top-level definitions, one before methods"
}

func (BlankLines) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	masked := MaskUnit(unit)

	var out []domain.Violation

	blanks := 0
	havePrev := false
	prevIndent := 0
	prevDecorator := false

	for i, line := range unit.Lines {
		if masked[i].InString {
			// Continuation of a multi-line string: part of the statement
			// above, never a definition.
			blanks = 0
			continue
		}
		if isBlank(line) {
			blanks++
			continue
		}
		if isComment(line) {
			// Comments neither break nor extend a blank run.
			continue
		}

		trimmed := strings.TrimSpace(masked[i].Text)
		indent := indentOf(line)
		isDecorator := strings.HasPrefix(trimmed, "@")
		isDefinition := strings.HasPrefix(trimmed, "def ") ||
			strings.HasPrefix(trimmed, "async def ") ||
			strings.HasPrefix(trimmed, "class ")

		if isDefinition || isDecorator {
			exempt := !havePrev || // first statement of the file
				(prevDecorator && blanks == 0) || // def under its decorator
				prevIndent < indent // first statement of a nested body

			if !exempt {
				expected, what := 2, "top-level definition"
				if indent > 0 {
					expected, what = 1, "method definition"
				}
				if blanks != expected {
					noun := "blank lines"
					if expected == 1 {
						noun = "blank line"
					}
					out = append(out, domain.Violation{
						RuleCode: domain.RuleBlankLines,
						Line:     i + 1,
						Message: fmt.Sprintf("expected %d %s before %s, found %d",
							expected, noun, what, blanks),
					})
				}
			}
		}

		havePrev = true
		prevIndent = indent
		prevDecorator = isDecorator
		blanks = 0
	}

	return out
}
