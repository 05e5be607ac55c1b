package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/features"
)

func newListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List features in working-on/ and done/ with their workflow phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveDir(dir)
			if err != nil {
				return err
			}
			list, err := features.NewFileStore().List(projectDir)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No features found.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FEATURE\tPHASE\tFOLDER\tNEXT")
			for _, f := range list {
				next := "-"
				if c := f.Phase.Next(); c != "" {
					next = "/" + c + " " + f.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Phase, f.Dir, next)
			}
			return w.Flush()
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
