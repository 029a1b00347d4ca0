package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pepcheck/pepcheck/internal/domain"
)

var skipDirs = map[string]bool{
	".git":          true,
	".mypy_cache":   true,
	".tox":          true,
	".venv":         true,
	"__pycache__":   true,
	"build":         true,
	"dist":          true,
	"node_modules":  true,
	"site-packages": true,
	"venv":          true,
	"vendor":        true,
}

// FileReader implements domain.SourceProvider against the local filesystem.
type FileReader struct{}

func New() *FileReader { return &FileReader{} }

// ListPythonFiles returns root itself when it is a regular file, or the
// .py files under it when it is a directory, keeping the caller-supplied
// prefix so reports cite paths the way the user wrote them.
func (r *FileReader) ListPythonFiles(root string, excludePaths ...string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || extraSkip[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Load reads one file into an immutable SourceUnit. A file that is not
// valid UTF-8 is a read failure, not a style violation.
func (r *FileReader) Load(path string) (*domain.SourceUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: not valid UTF-8", path)
	}
	return domain.NewSourceUnit(path, string(data)), nil
}
