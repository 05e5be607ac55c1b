package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/server"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the osddt version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "osddt v%s\n", server.Version)
			return err
		},
	}
}
