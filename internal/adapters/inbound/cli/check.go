package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	configAdapter "github.com/pepcheck/pepcheck/internal/adapters/outbound/config"
	"github.com/pepcheck/pepcheck/internal/adapters/outbound/source"
	"github.com/pepcheck/pepcheck/internal/adapters/outbound/tui"
	"github.com/pepcheck/pepcheck/internal/application"
	"github.com/pepcheck/pepcheck/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		maxLineLength int
		indentWidth   int
		selectRules   string
		configDir     string
		jsonOutput    bool
		pretty        bool
		exitNonzero   bool
	)

	cmd := &cobra.Command{
		Use:   "check <path> [path...]",
		Short: "Check files or directories for style violations",
		Long:  "Run every registered style rule over the given Python files (directories are walked for .py files) and report each violation with its location.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configDir)
			if err != nil {
				return &exitError{code: domain.ExitConfigError, msg: err.Error()}
			}
			if cmd.Flags().Changed("max-line-length") {
				cfg.MaxLineLength = maxLineLength
			}
			if cmd.Flags().Changed("indent-width") {
				cfg.IndentWidth = indentWidth
			}
			if selectRules != "" {
				cfg.Select = splitAndTrim(selectRules)
			}
			if err := cfg.Validate(); err != nil {
				return &exitError{code: domain.ExitConfigError, msg: err.Error()}
			}

			svc := application.NewCheckService(source.New())
			batch, err := svc.CheckPaths(cmd.Context(), args, cfg)
			if err != nil {
				return &exitError{code: domain.ExitConfigError, msg: err.Error()}
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(batch); err != nil {
					return err
				}
			case pretty:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderStyled(batch))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(batch))
			}

			return batchExitError(batch, exitNonzero)
		},
	}

	cmd.Flags().IntVar(&maxLineLength, "max-line-length", domain.DefaultMaxLineLength, "Maximum allowed line length")
	cmd.Flags().IntVar(&indentWidth, "indent-width", domain.DefaultIndentWidth, "Required indentation multiple")
	cmd.Flags().StringVar(&selectRules, "select", "", "Comma-separated rule codes to run (default: all)")
	cmd.Flags().StringVar(&configDir, "config", ".", "Directory containing .pepcheck.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Styled terminal output")
	cmd.Flags().BoolVar(&exitNonzero, "exit-nonzero-on-violation", true, "Exit 1 when violations are found")

	return cmd
}

// loadConfig reads .pepcheck.yaml from dir, falling back to defaults.
func loadConfig(dir string) (domain.CheckConfig, error) {
	return configAdapter.New().Load(dir)
}

// batchExitError converts the batch verdict into the error that carries
// the process exit code. Read failures dominate violations.
func batchExitError(batch *domain.BatchReport, exitNonzero bool) error {
	switch batch.ExitCode() {
	case domain.ExitReadFailure:
		return &exitError{
			code: domain.ExitReadFailure,
			msg:  "some files could not be read",
		}
	case domain.ExitViolations:
		if !exitNonzero {
			return nil
		}
		return &exitError{
			code: domain.ExitViolations,
			msg:  fmt.Sprintf("%d violation(s) found", batch.ViolationCount()),
		}
	default:
		return nil
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
