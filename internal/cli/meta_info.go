package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/meta"
)

func newMetaInfoCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "meta-info",
		Short: "Output project meta information as JSON (branch, date)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveDir(dir)
			if err != nil {
				return err
			}
			info := meta.NewCollector(a.deps.Runner, a.logger).Collect(cmd.Context(), projectDir)
			data, err := json.Marshal(info)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
