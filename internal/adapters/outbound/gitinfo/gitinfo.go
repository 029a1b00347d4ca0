package gitinfo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.StagedLister using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// StagedPythonFiles lists the .py files staged for the next commit, the
// set a pre-commit gate must check. Deleted files are excluded.
func (g *GitInfoAdapter) StagedPythonFiles(projectPath string) ([]string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading git status: %w", err)
	}

	var files []string
	for path, st := range status {
		if !strings.HasSuffix(path, ".py") {
			continue
		}
		switch st.Staging {
		case git.Added, git.Modified, git.Renamed, git.Copied:
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}
