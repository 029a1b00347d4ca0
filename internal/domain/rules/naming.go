package rules

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// NamingConvention enforces the PEP 8 naming scheme for definitions:
// functions and methods in snake_case, classes in PascalCase.
type NamingConvention struct{}

func (NamingConvention) Code() string { return domain.RuleNamingConvention }

func (NamingConvention) Description() string {
	return "snake_case functions, PascalCase classes"
}

func (NamingConvention) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	masked := MaskUnit(unit)

	var out []domain.Violation
	for i, ml := range masked {
		if ml.InString {
			continue
		}
		trimmed := strings.TrimSpace(ml.Text)

		if name, ok := defName(trimmed); ok && !isSnakeCase(name) {
			out = append(out, domain.Violation{
				RuleCode: domain.RuleNamingConvention,
				Line:     i + 1,
				Message: fmt.Sprintf("function name %q should be snake_case (e.g. %q)",
					name, toSnakeCase(name)),
			})
		}

		if name, ok := className(trimmed); ok && !isPascalCase(name) {
			out = append(out, domain.Violation{
				RuleCode: domain.RuleNamingConvention,
				Line:     i + 1,
				Message: fmt.Sprintf("class name %q should be PascalCase (e.g. %q)",
					name, toPascalCase(name)),
			})
		}
	}

	return out
}

func defName(stmt string) (string, bool) {
	stmt = strings.TrimPrefix(stmt, "async ")
	if !strings.HasPrefix(stmt, "def ") {
		return "", false
	}
	return identAt(stmt[len("def "):]), true
}

func className(stmt string) (string, bool) {
	if !strings.HasPrefix(stmt, "class ") {
		return "", false
	}
	return identAt(stmt[len("class "):]), true
}

// identAt reads the identifier at the start of s, up to '(' or ':'.
func identAt(s string) string {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return s[:i]
		}
	}
	return s
}

func isSnakeCase(name string) bool {
	return name != "" && strings.ToLower(name) == name
}

func isPascalCase(name string) bool {
	if name == "" || strings.Contains(name, "_") {
		return false
	}
	return name[0] >= 'A' && name[0] <= 'Z'
}

// toSnakeCase splits camelCase words and joins them with underscores.
func toSnakeCase(name string) string {
	words := camelcase.Split(name)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w == "_" {
			continue
		}
		parts = append(parts, strings.ToLower(strings.Trim(w, "_")))
	}
	s := strings.Join(parts, "_")
	// Preserve leading underscores marking private helpers.
	return strings.Repeat("_", len(name)-len(strings.TrimLeft(name, "_"))) + s
}

// toPascalCase capitalizes each underscore- or camel-separated word.
func toPascalCase(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		for _, w := range camelcase.Split(part) {
			if w == "" {
				continue
			}
			b.WriteString(strings.ToUpper(w[:1]))
			b.WriteString(strings.ToLower(w[1:]))
		}
	}
	return b.String()
}
