package rules

import (
	"strings"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// MaskedLine is one source line prepared for lexical rules: comments are
// stripped and every character of a string literal (quotes included) is
// replaced with 's', so spacing checks see a string as an ordinary operand.
type MaskedLine struct {
	Text     string
	InString bool // line begins inside a multi-line string literal
}

const fill = 's'

// MaskUnit masks string literals and comments across the whole unit,
// tracking triple-quoted strings that span lines. An unterminated literal
// masks to the end of the unit; rules skip the affected lines instead of
// aborting the report.
func MaskUnit(unit *domain.SourceUnit) []MaskedLine {
	masked := make([]MaskedLine, len(unit.Lines))

	var triple string // active triple-quote delimiter, "" when outside
	for i, line := range unit.Lines {
		masked[i].InString = triple != ""

		var b strings.Builder
		b.Grow(len(line))
		j := 0
		for j < len(line) {
			if triple != "" {
				if strings.HasPrefix(line[j:], triple) {
					b.WriteString(string([]byte{fill, fill, fill}))
					j += 3
					triple = ""
					continue
				}
				b.WriteByte(fill)
				j++
				continue
			}

			c := line[j]
			if c == '#' {
				break // comment runs to end of line
			}
			if c != '"' && c != '\'' {
				b.WriteByte(c)
				j++
				continue
			}

			delim := strings.Repeat(string(c), 3)
			if strings.HasPrefix(line[j:], delim) {
				triple = delim
				b.WriteString(string([]byte{fill, fill, fill}))
				j += 3
				continue
			}

			// Single-quoted literal; an unterminated one masks to EOL.
			b.WriteByte(fill)
			j++
			for j < len(line) {
				if line[j] == '\\' && j+1 < len(line) {
					b.WriteByte(fill)
					b.WriteByte(fill)
					j += 2
					continue
				}
				closed := line[j] == c
				b.WriteByte(fill)
				j++
				if closed {
					break
				}
			}
		}

		masked[i].Text = strings.TrimRight(b.String(), " \t")
	}

	return masked
}

// leadingWhitespace returns the run of spaces and tabs at the start of line.
func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

// indentOf counts leading spaces, with tabs expanded to width 8 the way
// the Python tokenizer does.
func indentOf(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			n++
		case '\t':
			n = (n/8 + 1) * 8
		default:
			return n
		}
	}
	return n
}

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// isComment reports whether the raw line holds only a comment.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// isDocstringOnly reports whether a masked line consists solely of masked
// string-literal characters, i.e. a bare docstring statement.
func isDocstringOnly(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != fill {
			return false
		}
	}
	return true
}
