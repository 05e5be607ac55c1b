package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/features"
)

func newFeatureNameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feature-name <branch-or-description>",
		Short: "Print the working-directory feature name derived from a branch name or description",
		Example: `  osddt feature-name feat/add-user-auth
  osddt feature-name "Implement real-time notifications for dashboard"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := features.DeriveName(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}
