package rules

import (
	"fmt"
	"strings"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// OperatorSpacing checks whitespace around a restricted operator set:
// =, ==, <, >, +, -, *, and, or. Binary occurrences expect exactly one
// space on each side; keyword-argument = inside call parentheses expects
// none; default-parameter = expects spaces, but only inside the actual
// parameter scope: the paren opened on a def line, or between a lambda
// keyword and its closing colon. Unary +/-, star-args and multi-character
// operators that merely contain a checked symbol are left alone. One
// violation per occurrence.
type OperatorSpacing struct{}

func (OperatorSpacing) Code() string { return domain.RuleOperatorSpacing }

func (OperatorSpacing) Description() string {
	return "exactly one space around binary operators, none around keyword-argument ="
}

// Operators that must be consumed whole so their components are not
// misread as checked single-character operators.
var skip3 = map[string]bool{"**=": true, "//=": true, ">>=": true, "<<=": true}

var skip2 = map[string]bool{
	"!=": true, "<=": true, ">=": true, "->": true,
	"+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "&=": true, "|=": true, "^=": true,
	"//": true, "**": true, "<<": true, ">>": true, ":=": true,
}

// Keywords that put a following +, - or * in unary position.
var unaryKeywords = map[string]bool{
	"return": true, "yield": true, "in": true, "not": true,
	"and": true, "or": true, "if": true, "else": true, "elif": true,
	"while": true, "assert": true, "lambda": true, "await": true,
	"is": true, "from": true, "import": true, "raise": true, "del": true,
}

func (OperatorSpacing) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	masked := MaskUnit(unit)

	var out []domain.Violation
	for i, ml := range masked {
		if ml.InString {
			continue
		}
		line := ml.Text
		trimmed := strings.TrimSpace(line)

		// defDepth is the paren depth whose = signs are def default
		// parameters; lambdaDepth the depth of an open lambda parameter
		// list, live until its closing colon. -1 when inactive.
		defDepth := -1
		if strings.HasPrefix(trimmed, "def ") || strings.HasPrefix(trimmed, "async def ") {
			defDepth = 1
		}
		lambdaDepth := -1

		depth := 0
		j := 0
		for j < len(line) {
			c := line[j]
			switch c {
			case '(', '[', '{':
				depth++
				j++
				continue
			case ')', ']', '}':
				if depth == lambdaDepth {
					lambdaDepth = -1
				}
				if depth == defDepth {
					defDepth = -1
				}
				depth--
				j++
				continue
			}

			if j+3 <= len(line) && skip3[line[j:j+3]] {
				j += 3
				continue
			}
			if j+2 <= len(line) {
				two := line[j : j+2]
				if two == "==" {
					if v, ok := spacedBinary(line, i, j, 2, "=="); ok {
						out = append(out, v)
					}
					j += 2
					continue
				}
				if skip2[two] {
					j += 2
					continue
				}
			}

			switch {
			case c == '=':
				parameter := depth == defDepth ||
					(lambdaDepth >= 0 && depth == lambdaDepth)
				if depth > 0 && !parameter {
					if v, ok := unspacedEquals(line, i, j); ok {
						out = append(out, v)
					}
				} else if v, ok := spacedBinary(line, i, j, 1, "="); ok {
					out = append(out, v)
				}
				j++
			case c == '<' || c == '>':
				if v, ok := spacedBinary(line, i, j, 1, string(c)); ok {
					out = append(out, v)
				}
				j++
			case c == '+' || c == '-':
				if binaryContext(line, j) && !exponentSign(line, j) {
					if v, ok := spacedBinary(line, i, j, 1, string(c)); ok {
						out = append(out, v)
					}
				}
				j++
			case c == '*':
				if binaryStar(line, j) {
					if v, ok := spacedBinary(line, i, j, 1, "*"); ok {
						out = append(out, v)
					}
				}
				j++
			case c == ':':
				if depth == lambdaDepth {
					lambdaDepth = -1
				}
				j++
			case isWordChar(c):
				word := readWord(line, j)
				if word == "lambda" && wordIsOperator(line, j, len(word)) {
					lambdaDepth = depth
				}
				if (word == "and" || word == "or") && wordIsOperator(line, j, len(word)) {
					if v, ok := spacedBinary(line, i, j, len(word), word); ok {
						out = append(out, v)
					}
				}
				j += len(word)
			default:
				j++
			}
		}
	}

	return out
}

// spacedBinary verifies exactly one space on each visible side of the
// operator at line[j:j+width]. Sides cut off by the line boundary (or by
// pure indentation, as on continuation lines) are not judged.
func spacedBinary(line string, lineIdx, j, width int, op string) (domain.Violation, bool) {
	missing := false
	multiple := false

	if strings.TrimSpace(line[:j]) != "" {
		switch {
		case line[j-1] != ' ':
			missing = true
		case j >= 2 && line[j-2] == ' ':
			multiple = true
		}
	}

	end := j + width
	if end < len(line) {
		switch {
		case line[end] != ' ':
			missing = true
		case end+1 < len(line) && line[end+1] == ' ':
			multiple = true
		}
	}

	switch {
	case missing:
		return violationAt(lineIdx, j, fmt.Sprintf("missing whitespace around %q", op)), true
	case multiple:
		return violationAt(lineIdx, j, fmt.Sprintf("multiple spaces around %q", op)), true
	}
	return domain.Violation{}, false
}

// unspacedEquals flags a keyword-argument = that carries any surrounding
// whitespace.
func unspacedEquals(line string, lineIdx, j int) (domain.Violation, bool) {
	spaced := (j > 0 && line[j-1] == ' ') || (j+1 < len(line) && line[j+1] == ' ')
	if !spaced {
		return domain.Violation{}, false
	}
	return violationAt(lineIdx, j, `unexpected spaces around keyword argument "="`), true
}

func violationAt(lineIdx, col int, msg string) domain.Violation {
	return domain.Violation{
		RuleCode: domain.RuleOperatorSpacing,
		Line:     lineIdx + 1,
		Col:      col + 1,
		Message:  msg,
	}
}

// binaryContext reports whether the +/- at j follows an operand rather
// than an operator, opener or keyword.
func binaryContext(line string, j int) bool {
	k := j - 1
	for k >= 0 && line[k] == ' ' {
		k--
	}
	if k < 0 {
		return false
	}
	c := line[k]
	if c == ')' || c == ']' || c == '}' {
		return true
	}
	if !isWordChar(c) {
		return false
	}
	return !unaryKeywords[wordEndingAt(line, k)]
}

// exponentSign recognizes the sign inside a float exponent such as 1e-5.
func exponentSign(line string, j int) bool {
	if j < 2 || j+1 >= len(line) {
		return false
	}
	if line[j-1] != 'e' && line[j-1] != 'E' {
		return false
	}
	return isDigit(line[j-2]) && isDigit(line[j+1])
}

// binaryStar distinguishes multiplication from *args / ** unpacking.
func binaryStar(line string, j int) bool {
	if !binaryContext(line, j) {
		return false
	}
	k := j + 1
	for k < len(line) && line[k] == ' ' {
		k++
	}
	if k >= len(line) {
		return false
	}
	c := line[k]
	return isWordChar(c) || c == '('
}

// wordIsOperator checks the word at [j, j+n) stands alone, not inside an
// identifier.
func wordIsOperator(line string, j, n int) bool {
	if j > 0 && isWordChar(line[j-1]) {
		return false
	}
	if j+n < len(line) && isWordChar(line[j+n]) {
		return false
	}
	return true
}

func readWord(line string, j int) string {
	k := j
	for k < len(line) && isWordChar(line[k]) {
		k++
	}
	return line[j:k]
}

func wordEndingAt(line string, k int) string {
	start := k
	for start >= 0 && isWordChar(line[start]) {
		start--
	}
	return line[start+1 : k+1]
}

func isWordChar(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
