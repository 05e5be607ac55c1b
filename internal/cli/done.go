package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/config"
	"github.com/dezkareid/osddt/internal/features"
)

func newDoneCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "done <feature-name>",
		Short: "Move a feature from working-on/<feature-name> to done/<YYYY-MM-DD>-<feature-name>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveDir(dir)
			if err != nil {
				return err
			}
			if _, err := config.NewFileStore().Load(projectDir); err != nil {
				return err
			}

			moved, err := features.NewFileStore().Archive(projectDir, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("feature archived", "from", moved.From, "to", moved.To)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Moved: %s → %s\n", moved.From, moved.To)
			return err
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
