package domain

// SourceProvider supplies source text for checking. ListPythonFiles
// expands a directory into the relative paths of its .py files; Load reads
// one file into an immutable SourceUnit.
type SourceProvider interface {
	ListPythonFiles(root string, excludePaths ...string) ([]string, error)
	Load(path string) (*SourceUnit, error)
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (CheckConfig, error)
}

// StagedLister lists files staged for commit, for the pre-commit gate.
type StagedLister interface {
	IsGitRepo(projectPath string) bool
	StagedPythonFiles(projectPath string) ([]string, error)
}
