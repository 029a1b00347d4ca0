package domain_test

import (
	"testing"

	"github.com/pepcheck/pepcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceUnit_SplitsLines(t *testing.T) {
	u := domain.NewSourceUnit("a.py", "x = 1\ny = 2\n")
	assert.Equal(t, "a.py", u.Path)
	assert.Equal(t, []string{"x = 1", "y = 2"}, u.Lines)
}

func TestNewSourceUnit_NoTrailingNewline(t *testing.T) {
	u := domain.NewSourceUnit("a.py", "x = 1")
	assert.Equal(t, []string{"x = 1"}, u.Lines)
}

func TestNewSourceUnit_CRLF(t *testing.T) {
	u := domain.NewSourceUnit("a.py", "x = 1\r\ny = 2\r\n")
	assert.Equal(t, []string{"x = 1", "y = 2"}, u.Lines)
}

func TestViolation_String(t *testing.T) {
	withCol := domain.Violation{RuleCode: "line-length", Line: 3, Col: 80, Message: "line too long"}
	assert.Equal(t, "a.py:3:80: [line-length] line too long", withCol.String("a.py"))

	noCol := domain.Violation{RuleCode: "blank-lines", Line: 7, Message: "expected 2 blank lines"}
	assert.Equal(t, "a.py:7: [blank-lines] expected 2 blank lines", noCol.String("a.py"))
}

func TestCheckReport_Failed(t *testing.T) {
	clean := &domain.CheckReport{Path: "a.py"}
	assert.False(t, clean.Failed())

	dirty := &domain.CheckReport{Path: "a.py", Violations: []domain.Violation{{RuleCode: "line-length", Line: 1}}}
	assert.True(t, dirty.Failed())
}

func TestBatchReport_SortAndCounts(t *testing.T) {
	b := &domain.BatchReport{}
	b.Add(&domain.CheckReport{Path: "b.py", Violations: []domain.Violation{{Line: 1}, {Line: 2}}})
	b.Add(&domain.CheckReport{Path: "a.py", Violations: []domain.Violation{{Line: 5}}})
	b.Sort()

	assert.Equal(t, "a.py", b.Reports[0].Path)
	assert.Equal(t, 3, b.ViolationCount())
	assert.Equal(t, 2, b.FileCount())
}

func TestBatchReport_ExitCodes(t *testing.T) {
	clean := &domain.BatchReport{Reports: []*domain.CheckReport{{Path: "a.py"}}}
	assert.Equal(t, domain.ExitOK, clean.ExitCode())

	violating := &domain.BatchReport{Reports: []*domain.CheckReport{
		{Path: "a.py", Violations: []domain.Violation{{Line: 1}}},
	}}
	assert.Equal(t, domain.ExitViolations, violating.ExitCode())

	unreadable := &domain.BatchReport{Reports: []*domain.CheckReport{
		{Path: "a.py", Violations: []domain.Violation{{Line: 1}}},
		{Path: "b.py", ReadError: "no such file"},
	}}
	assert.Equal(t, domain.ExitReadFailure, unreadable.ExitCode(),
		"read failures dominate violations")
	require.True(t, unreadable.HasReadErrors())
}
