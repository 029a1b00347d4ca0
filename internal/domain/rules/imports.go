package rules

import (
	"fmt"
	"strings"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// ImportOrder checks the leading import block: groups must appear as
// standard-library, then third-party, then local, separated by a single
// blank line, with case-insensitive alphabetical order inside each group.
// Classification uses the built-in standard-library table extended by the
// configuration; relative imports are always local.
type ImportOrder struct{}

func (ImportOrder) Code() string { return domain.RuleImportOrder }

func (ImportOrder) Description() string {
	return "imports grouped stdlib/third-party/local, blank-line separated, sorted"
}

type importStmt struct {
	line   int // 1-based
	module string
	group  domain.ImportGroup
	blanks int // blank lines between this import and the previous one
}

func (ImportOrder) Check(unit *domain.SourceUnit, cfg domain.CheckConfig) []domain.Violation {
	imports := leadingImports(unit, cfg)

	var out []domain.Violation

	maxGroup := domain.GroupStdlib
	var maxGroupModule string
	havePrev := false
	var prev importStmt

	for _, im := range imports {
		if havePrev {
			switch {
			case im.group < maxGroup:
				out = append(out, domain.Violation{
					RuleCode: domain.RuleImportOrder,
					Line:     im.line,
					Message: fmt.Sprintf("%s import %q after %s import %q",
						im.group, im.module, maxGroup, maxGroupModule),
				})
			case im.group != prev.group && im.blanks == 0:
				out = append(out, domain.Violation{
					RuleCode: domain.RuleImportOrder,
					Line:     im.line,
					Message: fmt.Sprintf("missing blank line between %s and %s imports",
						prev.group, im.group),
				})
			case im.group == prev.group &&
				strings.ToLower(im.module) < strings.ToLower(prev.module):
				out = append(out, domain.Violation{
					RuleCode: domain.RuleImportOrder,
					Line:     im.line,
					Message: fmt.Sprintf("%q should be imported before %q (case-insensitive order)",
						im.module, prev.module),
				})
			}
		}

		if !havePrev || im.group >= maxGroup {
			maxGroup = im.group
			maxGroupModule = im.module
		}
		prev = im
		havePrev = true
	}

	return out
}

// leadingImports collects the import statements at the top of the unit,
// skipping the module docstring, comments and blank lines, and stopping
// at the first other statement.
func leadingImports(unit *domain.SourceUnit, cfg domain.CheckConfig) []importStmt {
	masked := MaskUnit(unit)

	var imports []importStmt
	blanks := 0

	for i, line := range unit.Lines {
		if masked[i].InString {
			continue // module docstring body
		}
		if isBlank(line) {
			blanks++
			continue
		}
		if isComment(line) || isDocstringOnly(masked[i].Text) {
			continue
		}

		trimmed := strings.TrimSpace(masked[i].Text)
		module, ok := importModule(trimmed)
		if !ok {
			break // first non-import statement ends the block
		}

		imports = append(imports, importStmt{
			line:   i + 1,
			module: module,
			group:  cfg.ClassifyImport(module),
			blanks: blanks,
		})
		blanks = 0
	}

	return imports
}

// importModule extracts the dotted module path of an import statement,
// or reports that the line is not an import.
func importModule(stmt string) (string, bool) {
	switch {
	case strings.HasPrefix(stmt, "import "):
		rest := strings.TrimSpace(stmt[len("import "):])
		return firstModuleToken(rest), true
	case strings.HasPrefix(stmt, "from "):
		rest := strings.TrimSpace(stmt[len("from "):])
		return firstModuleToken(rest), true
	default:
		return "", false
	}
}

// firstModuleToken cuts at the first space or comma: "os.path as p" -> "os.path".
func firstModuleToken(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == ',' {
			return s[:i]
		}
	}
	return s
}
