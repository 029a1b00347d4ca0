package rules_test

import (
	"strings"
	"testing"

	"github.com/pepcheck/pepcheck/internal/domain"
	"github.com/pepcheck/pepcheck/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CodesMatchRegistry(t *testing.T) {
	var codes []string
	for _, r := range rules.All() {
		codes = append(codes, r.Code())
	}
	assert.Equal(t, domain.ValidRuleCodes, codes,
		"registration order defines the report order")
}

func TestRun_ViolationsGroupedByRuleThenLine(t *testing.T) {
	// Line 2 over-length and line 1 with a spacing fault: the spacing
	// violation from line 1 appears after the length violation because
	// line-length registers first.
	src := "x=1\n" + strings.Repeat("y", 90) + " = 2\n"
	report := rules.Run(domain.NewSourceUnit("t.py", src), domain.DefaultConfig())

	require.Len(t, report.Violations, 2)
	assert.Equal(t, domain.RuleLineLength, report.Violations[0].RuleCode)
	assert.Equal(t, 2, report.Violations[0].Line)
	assert.Equal(t, domain.RuleOperatorSpacing, report.Violations[1].RuleCode)
	assert.Equal(t, 1, report.Violations[1].Line)
}

func TestRun_SelectRestrictsRules(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Select = []string{domain.RuleLineLength}

	report := rules.Run(domain.NewSourceUnit("t.py", "x=1\n"), cfg)
	assert.Empty(t, report.Violations, "operator fault invisible when only line-length runs")
}

func TestRun_Idempotent(t *testing.T) {
	src := "import sys\nimport os\n\n\ndef f( a,b ):\n   return a+b\n"
	u := domain.NewSourceUnit("t.py", src)
	cfg := domain.DefaultConfig()

	first := rules.Run(u, cfg)
	second := rules.Run(u, cfg)
	assert.Equal(t, first, second)
}

func TestRun_CleanSeventyFiveCharLine(t *testing.T) {
	line := "x_" + strings.Repeat("x", 69) + " = 1"
	require.Len(t, line, 75)

	report := rules.Run(domain.NewSourceUnit("t.py", line+"\n"), domain.DefaultConfig())
	assert.Empty(t, report.Violations, "a 75-char, well-formed line passes every rule")
	assert.False(t, report.Failed())
}
