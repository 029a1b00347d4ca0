package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pepcheck/pepcheck/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered style rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, rule := range rules.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", rule.Code(), rule.Description())
			}
			return nil
		},
	}
}
