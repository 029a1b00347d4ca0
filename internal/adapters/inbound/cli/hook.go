package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pepcheck/pepcheck/internal/adapters/outbound/gitinfo"
	"github.com/pepcheck/pepcheck/internal/adapters/outbound/source"
	"github.com/pepcheck/pepcheck/internal/adapters/outbound/tui"
	"github.com/pepcheck/pepcheck/internal/application"
	"github.com/pepcheck/pepcheck/internal/domain"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook [path]",
		Short: "Check the Python files staged for commit",
		Long:  "Pre-commit gate: list the .py files staged in the git index and check only those. A nonzero exit aborts the commit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) > 0 {
				projectPath = args[0]
			}

			gi := gitinfo.New()
			if !gi.IsGitRepo(projectPath) {
				return fmt.Errorf("%s is not a git repository", projectPath)
			}

			staged, err := gi.StagedPythonFiles(projectPath)
			if err != nil {
				return fmt.Errorf("listing staged files: %w", err)
			}
			if len(staged) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no staged Python files")
				return nil
			}

			cfg, err := loadConfig(projectPath)
			if err != nil {
				return &exitError{code: domain.ExitConfigError, msg: err.Error()}
			}

			// Staged paths are repo-relative; anchor them to projectPath.
			files := make([]string, len(staged))
			for i, f := range staged {
				files[i] = filepath.Join(projectPath, f)
			}

			svc := application.NewCheckService(source.New())
			batch, err := svc.CheckFiles(cmd.Context(), files, cfg)
			if err != nil {
				return &exitError{code: domain.ExitConfigError, msg: err.Error()}
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(batch))
			return batchExitError(batch, true)
		},
	}

	return cmd
}
