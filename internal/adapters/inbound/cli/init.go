package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pepcheck/pepcheck/internal/domain"
)

const configFileName = ".pepcheck.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .pepcheck.yaml configuration file",
		Long:  "Create a .pepcheck.yaml with the default thresholds and an empty import classification table to fill in.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(defaultConfigYAML()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .pepcheck.yaml")

	return cmd
}

func defaultConfigYAML() string {
	return fmt.Sprintf(`# pepcheck configuration

max_line_length: %d
indent_width: %d

# Rules to run; empty means all.
# select:
#   - line-length
#   - import-order

# Extra standard-library modules for import classification.
# stdlib_modules:
#   - my_company_vendored_stdlib

# First-party root packages, classified as local imports.
# local_prefixes:
#   - myproject

# exclude_paths:
#   - migrations
#   - generated
`, domain.DefaultMaxLineLength, domain.DefaultIndentWidth)
}
