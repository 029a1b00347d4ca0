package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SourceUnit is one file's text under style inspection. It is built once
// from the raw input and never mutated afterwards.
type SourceUnit struct {
	Path  string   `json:"path"`
	Lines []string `json:"-"`
}

// NewSourceUnit splits raw text into lines. A trailing newline does not
// produce a phantom empty last line.
func NewSourceUnit(path, text string) *SourceUnit {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &SourceUnit{Path: path, Lines: lines}
}

// Violation is one reported rule failure with its location.
// Line is 1-based; Col is 1-based and 0 when the rule has no column.
type Violation struct {
	RuleCode string `json:"rule_code"`
	Line     int    `json:"line"`
	Col      int    `json:"col,omitempty"`
	Message  string `json:"message"`
}

// String renders the violation in <path>:<line>:[<col>:] [<rule>] <message>
// form, the per-line output contract of the checker.
func (v Violation) String(path string) string {
	if v.Col > 0 {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", path, v.Line, v.Col, v.RuleCode, v.Message)
	}
	return fmt.Sprintf("%s:%d: [%s] %s", path, v.Line, v.RuleCode, v.Message)
}

// CheckReport is the aggregate result of applying all rules to one
// SourceUnit. ReadError is report-level: a file that could not be loaded
// has no violations and ReadError set.
type CheckReport struct {
	Path       string      `json:"path"`
	Violations []Violation `json:"violations"`
	ReadError  string      `json:"read_error,omitempty"`
}

// Failed reports whether the unit violates any rule.
func (r *CheckReport) Failed() bool { return len(r.Violations) > 0 }

// BatchReport collects the reports of one invocation, ordered by path so
// output is deterministic regardless of completion order.
type BatchReport struct {
	Reports []*CheckReport `json:"reports"`
}

// Add appends a report. Callers finish with Sort before rendering.
func (b *BatchReport) Add(r *CheckReport) { b.Reports = append(b.Reports, r) }

// Sort orders reports by file path.
func (b *BatchReport) Sort() {
	sort.Slice(b.Reports, func(i, j int) bool {
		return b.Reports[i].Path < b.Reports[j].Path
	})
}

// ViolationCount is the total number of violations across all reports.
func (b *BatchReport) ViolationCount() int {
	n := 0
	for _, r := range b.Reports {
		n += len(r.Violations)
	}
	return n
}

// FileCount is the number of files checked, including failed reads.
func (b *BatchReport) FileCount() int { return len(b.Reports) }

// HasReadErrors reports whether any file could not be loaded.
func (b *BatchReport) HasReadErrors() bool {
	for _, r := range b.Reports {
		if r.ReadError != "" {
			return true
		}
	}
	return false
}

// Exit codes of the checker. Read failures dominate violations so a gate
// never passes on a file it could not inspect.
const (
	ExitOK          = 0
	ExitViolations  = 1
	ExitReadFailure = 2
	ExitConfigError = 3
)

// ExitCode derives the process exit code from the batch outcome.
func (b *BatchReport) ExitCode() int {
	switch {
	case b.HasReadErrors():
		return ExitReadFailure
	case b.ViolationCount() > 0:
		return ExitViolations
	default:
		return ExitOK
	}
}
