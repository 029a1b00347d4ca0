package rules_test

import (
	"testing"

	"github.com/pepcheck/pepcheck/internal/domain"
	"github.com/pepcheck/pepcheck/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operatorCheck(t *testing.T, src string) []domain.Violation {
	t.Helper()
	return rules.OperatorSpacing{}.Check(unit(src), domain.DefaultConfig())
}

func TestOperatorSpacing_TightAssignAndPlus(t *testing.T) {
	got := operatorCheck(t, "x=y+5\n")
	require.Len(t, got, 2, "one violation per operator occurrence")

	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 2, got[0].Col)
	assert.Equal(t, `missing whitespace around "="`, got[0].Message)

	assert.Equal(t, 4, got[1].Col)
	assert.Equal(t, `missing whitespace around "+"`, got[1].Message)
}

func TestOperatorSpacing_WellSpacedClean(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "x = y + 5\n"))
	assert.Empty(t, operatorCheck(t, "total = price * quantity\n"))
	assert.Empty(t, operatorCheck(t, "ok = a == b and c < d or e > f\n"))
}

func TestOperatorSpacing_MultipleSpacesFlagged(t *testing.T) {
	got := operatorCheck(t, "x  = y\n")
	require.Len(t, got, 1)
	assert.Equal(t, `multiple spaces around "="`, got[0].Message)

	got = operatorCheck(t, "x = a and  b\n")
	require.Len(t, got, 1)
	assert.Equal(t, `multiple spaces around "and"`, got[0].Message)
}

func TestOperatorSpacing_KeywordArgumentEquals(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "f(a=1, b=2)\n"))

	got := operatorCheck(t, "f(a = 1)\n")
	require.Len(t, got, 1)
	assert.Equal(t, `unexpected spaces around keyword argument "="`, got[0].Message)
}

func TestOperatorSpacing_DefaultParameterEqualsWantsSpaces(t *testing.T) {
	got := operatorCheck(t, "def f(a=1):\n    pass\n")
	require.Len(t, got, 1)
	assert.Equal(t, `missing whitespace around "="`, got[0].Message)

	assert.Empty(t, operatorCheck(t, "def f(a = 1):\n    pass\n"))
}

func TestOperatorSpacing_LambdaKwargKeepsKeywordArgumentSemantics(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "result = sorted(xs, key=lambda p: p.x)\n"))
	assert.Empty(t, operatorCheck(t, "f(key=lambda x: x, reverse=True)\n"))
}

func TestOperatorSpacing_LambdaPrefixedIdentifier(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "lambda_handler = f(x=1)\n"))
}

func TestOperatorSpacing_LambdaDefaultParameterWantsSpaces(t *testing.T) {
	got := operatorCheck(t, "f(cb=lambda x=1: x)\n")
	require.Len(t, got, 1)
	assert.Equal(t, 14, got[0].Col, "only the default inside the lambda parameter list")
	assert.Equal(t, `missing whitespace around "="`, got[0].Message)
}

func TestOperatorSpacing_KwargAfterLambdaColon(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "g(a=lambda: 0, b=1)\n"),
		"the lambda parameter scope ends at its colon")
}

func TestOperatorSpacing_UnaryNotFlagged(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "x = -5\n"))
	assert.Empty(t, operatorCheck(t, "return -1\n"))
	assert.Empty(t, operatorCheck(t, "f(*args, **kwargs)\n"))
	assert.Empty(t, operatorCheck(t, "x = a[-1]\n"))
}

func TestOperatorSpacing_ExponentLiteralNotFlagged(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "eps = 1e-5\n"))
}

func TestOperatorSpacing_MultiCharOperatorsNotSplit(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "x += 1\n"))
	assert.Empty(t, operatorCheck(t, "if a <= b and c >= d:\n    pass\n"))
	assert.Empty(t, operatorCheck(t, "def f() -> int:\n    return 1\n"))
	assert.Empty(t, operatorCheck(t, "y = x ** 2\n"))
}

func TestOperatorSpacing_DoubleEquals(t *testing.T) {
	got := operatorCheck(t, "if a ==b:\n    pass\n")
	require.Len(t, got, 1)
	assert.Equal(t, `missing whitespace around "=="`, got[0].Message)
}

func TestOperatorSpacing_StringContentsIgnored(t *testing.T) {
	assert.Empty(t, operatorCheck(t, `msg = "a=b+c"`+"\n"))
}

func TestOperatorSpacing_WordOperatorInsideIdentifier(t *testing.T) {
	assert.Empty(t, operatorCheck(t, "sandbox = 1\n"))
	assert.Empty(t, operatorCheck(t, "order = 2\n"))
}
