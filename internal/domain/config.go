package domain

import (
	"fmt"
	"strings"
)

// Rule codes, in engine registration order.
const (
	RuleIndentWidth      = "indent-width"
	RuleLineLength       = "line-length"
	RuleBlankLines       = "blank-lines"
	RuleOperatorSpacing  = "operator-spacing"
	RuleCommaSpacing     = "comma-spacing"
	RuleImportOrder      = "import-order"
	RuleNamingConvention = "naming-convention"
)

// ValidRuleCodes enumerates every registered rule code.
var ValidRuleCodes = []string{
	RuleIndentWidth,
	RuleLineLength,
	RuleBlankLines,
	RuleOperatorSpacing,
	RuleCommaSpacing,
	RuleImportOrder,
	RuleNamingConvention,
}

const (
	DefaultMaxLineLength = 79
	DefaultIndentWidth   = 4
)

// CheckConfig holds checker configuration loaded from .pepcheck.yaml,
// possibly overridden by CLI flags.
type CheckConfig struct {
	MaxLineLength int      `yaml:"max_line_length" json:"max_line_length"`
	IndentWidth   int      `yaml:"indent_width"    json:"indent_width"`
	Select        []string `yaml:"select"          json:"select,omitempty"`
	ExcludePaths  []string `yaml:"exclude_paths"   json:"exclude_paths,omitempty"`

	// Import classification table. StdlibModules extends the built-in
	// standard-library set; LocalPrefixes marks first-party root modules
	// (relative imports are always local).
	StdlibModules []string `yaml:"stdlib_modules" json:"stdlib_modules,omitempty"`
	LocalPrefixes []string `yaml:"local_prefixes" json:"local_prefixes,omitempty"`
}

// DefaultConfig returns the configuration used when no .pepcheck.yaml exists.
func DefaultConfig() CheckConfig {
	return CheckConfig{
		MaxLineLength: DefaultMaxLineLength,
		IndentWidth:   DefaultIndentWidth,
	}
}

// Validate checks the config eagerly, before any file is read. A failure
// here is a ConfigurationError: fatal, distinct exit code.
func (c CheckConfig) Validate() error {
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be > 0 (got %d)", c.MaxLineLength)
	}
	if c.IndentWidth <= 0 {
		return fmt.Errorf("indent_width must be > 0 (got %d)", c.IndentWidth)
	}
	for _, code := range c.Select {
		if !isValidRuleCode(code) {
			return fmt.Errorf("unknown rule %q in select (valid: %v)", code, ValidRuleCodes)
		}
	}
	return nil
}

// RuleSelected reports whether the named rule should run. An empty Select
// list selects every rule.
func (c CheckConfig) RuleSelected(code string) bool {
	if len(c.Select) == 0 {
		return true
	}
	for _, s := range c.Select {
		if s == code {
			return true
		}
	}
	return false
}

// ImportGroup classifies one import root module.
type ImportGroup int

const (
	GroupStdlib ImportGroup = iota
	GroupThirdParty
	GroupLocal
)

func (g ImportGroup) String() string {
	switch g {
	case GroupStdlib:
		return "standard-library"
	case GroupThirdParty:
		return "third-party"
	default:
		return "local"
	}
}

// ClassifyImport maps a dotted module path (or a relative import, module
// beginning with ".") to its group.
func (c CheckConfig) ClassifyImport(module string) ImportGroup {
	if module == "" || module[0] == '.' {
		return GroupLocal
	}
	root := module
	if i := strings.IndexByte(root, '.'); i >= 0 {
		root = root[:i]
	}
	for _, p := range c.LocalPrefixes {
		if root == p {
			return GroupLocal
		}
	}
	if stdlibModules[root] {
		return GroupStdlib
	}
	for _, m := range c.StdlibModules {
		if root == m {
			return GroupStdlib
		}
	}
	return GroupThirdParty
}

func isValidRuleCode(code string) bool {
	for _, c := range ValidRuleCodes {
		if c == code {
			return true
		}
	}
	return false
}

// stdlibModules is the built-in standard-library classification table,
// extendable via CheckConfig.StdlibModules.
var stdlibModules = map[string]bool{
	"__future__": true,
	"abc":        true, "argparse": true, "array": true, "ast": true,
	"asyncio": true, "base64": true, "bisect": true, "builtins": true,
	"collections": true, "concurrent": true, "configparser": true,
	"contextlib": true, "copy": true, "csv": true, "ctypes": true,
	"dataclasses": true, "datetime": true, "decimal": true, "difflib": true,
	"dis": true, "enum": true, "errno": true, "functools": true,
	"gc": true, "getpass": true, "glob": true, "gzip": true,
	"hashlib": true, "heapq": true, "hmac": true, "html": true,
	"http": true, "importlib": true, "inspect": true, "io": true,
	"itertools": true, "json": true, "logging": true, "math": true,
	"multiprocessing": true, "operator": true, "os": true,
	"pathlib": true, "pickle": true, "platform": true, "pprint": true,
	"queue": true, "random": true, "re": true, "secrets": true,
	"select": true, "shlex": true, "shutil": true, "signal": true,
	"socket": true, "sqlite3": true, "ssl": true, "stat": true,
	"statistics": true, "string": true, "struct": true, "subprocess": true,
	"sys": true, "tempfile": true, "textwrap": true, "threading": true,
	"time": true, "traceback": true, "types": true, "typing": true,
	"unicodedata": true, "unittest": true, "urllib": true, "uuid": true,
	"venv": true, "warnings": true, "weakref": true, "xml": true,
	"zipfile": true, "zlib": true,
}
