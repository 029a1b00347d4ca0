package rules_test

import (
	"testing"

	"github.com/pepcheck/pepcheck/internal/domain"
	"github.com/pepcheck/pepcheck/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importCheck(t *testing.T, src string, cfg domain.CheckConfig) []domain.Violation {
	t.Helper()
	return rules.ImportOrder{}.Check(unit(src), cfg)
}

func TestImportOrder_ProperGroupsClean(t *testing.T) {
	src := "import os\n" +
		"import sys\n" +
		"\n" +
		"import requests\n" +
		"\n" +
		"from myproject import models\n"
	cfg := domain.DefaultConfig()
	cfg.LocalPrefixes = []string{"myproject"}
	assert.Empty(t, importCheck(t, src, cfg))
}

func TestImportOrder_StdlibAfterLocalFlagged(t *testing.T) {
	src := "import requests\n" +
		"\n" +
		"from .models import User\n" +
		"\n" +
		"import os\n"
	got := importCheck(t, src, domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Line)
	assert.Equal(t, `standard-library import "os" after local import ".models"`, got[0].Message)
}

func TestImportOrder_MissingSeparatorFlagged(t *testing.T) {
	src := "import os\n" +
		"import requests\n"
	got := importCheck(t, src, domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, "missing blank line between standard-library and third-party imports", got[0].Message)
}

func TestImportOrder_UnsortedWithinGroupFlagged(t *testing.T) {
	src := "import sys\n" +
		"import os\n"
	got := importCheck(t, src, domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Line)
	assert.Contains(t, got[0].Message, `"os" should be imported before "sys"`)
}

func TestImportOrder_CaseInsensitiveSort(t *testing.T) {
	src := "import requests\n" +
		"import Flask_ext\n"
	got := importCheck(t, src, domain.DefaultConfig())
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "case-insensitive")
}

func TestImportOrder_DocstringAndCommentsSkipped(t *testing.T) {
	src := "\"\"\"Module docstring.\"\"\"\n" +
		"# tooling header\n" +
		"import os\n" +
		"\n" +
		"import requests\n"
	assert.Empty(t, importCheck(t, src, domain.DefaultConfig()))
}

func TestImportOrder_StopsAtFirstStatement(t *testing.T) {
	src := "import os\n" +
		"\n" +
		"x = 1\n" +
		"import requests\n"
	assert.Empty(t, importCheck(t, src, domain.DefaultConfig()),
		"imports after the leading block are out of the checked window")
}

func TestImportOrder_ConfiguredStdlibModules(t *testing.T) {
	src := "import os\n" +
		"import vendored\n"
	cfg := domain.DefaultConfig()
	cfg.StdlibModules = []string{"vendored"}
	assert.Empty(t, importCheck(t, src, cfg),
		"no separator needed inside one group")
}

func TestImportOrder_FromImportUsesModulePath(t *testing.T) {
	src := "import os\n" +
		"from collections import OrderedDict\n"
	got := importCheck(t, src, domain.DefaultConfig())
	require.Len(t, got, 1, "collections sorts before os regardless of import form")
	assert.Contains(t, got[0].Message, `"collections" should be imported before "os"`)
}
