package rules_test

import (
	"testing"

	"github.com/pepcheck/pepcheck/internal/domain"
	"github.com/pepcheck/pepcheck/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentWidth_MultiplesOfFourAreClean(t *testing.T) {
	src := "def f():\n" +
		"    if True:\n" +
		"        return 1\n" +
		"    return 0\n"
	got := rules.IndentWidth{}.Check(unit(src), domain.DefaultConfig())
	assert.Empty(t, got)
}

func TestIndentWidth_OddIndentFlagged(t *testing.T) {
	src := "def f():\n" +
		"   return 1\n"
	got := rules.IndentWidth{}.Check(unit(src), domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, 1, got[0].Col)
	assert.Contains(t, got[0].Message, "3 spaces")
	assert.Contains(t, got[0].Message, "multiple of 4")
}

func TestIndentWidth_TabFlagged(t *testing.T) {
	got := rules.IndentWidth{}.Check(unit("if True:\n\treturn 1\n"), domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "tab")
}

func TestIndentWidth_MixedTabsAndSpacesFlagged(t *testing.T) {
	got := rules.IndentWidth{}.Check(unit("if True:\n    \tx = 1\n"), domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Equal(t, "indentation mixes tabs and spaces", got[0].Message)
}

func TestIndentWidth_DocstringBodySkipped(t *testing.T) {
	src := "def f():\n" +
		"    \"\"\"Help text\n" +
		"  oddly indented inside the string\n" +
		"    \"\"\"\n"
	got := rules.IndentWidth{}.Check(unit(src), domain.DefaultConfig())
	assert.Empty(t, got)
}

func TestIndentWidth_ConfigurableWidth(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.IndentWidth = 2
	got := rules.IndentWidth{}.Check(unit("if True:\n  x = 1\n"), cfg)
	assert.Empty(t, got)
}

func TestIndentWidth_BlankLinesIgnored(t *testing.T) {
	got := rules.IndentWidth{}.Check(unit("x = 1\n\n\ny = 2\n"), domain.DefaultConfig())
	assert.Empty(t, got)
}
