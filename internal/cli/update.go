package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/config"
	"github.com/dezkareid/osddt/internal/workspace"
)

var (
	errNoAgentsDetected = errors.New("no osddt command files found in .claude/commands or .gemini/commands. Run `osddt setup` first.")
	errNoAgentsListed   = errors.New(`.osddtrc lists no agents. Add "claude" and/or "gemini" to "agents" or run ` + "`osddt setup`.")
)

func newUpdateCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Regenerate agent command files from the existing .osddtrc configuration",
		Long: `Regenerate agent command files from .osddtrc.

When .osddtrc has no "agents" list, the agents are detected from existing
osddt command files and the list is saved to .osddtrc.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveDir(dir)
			if err != nil {
				return err
			}

			store := config.NewFileStore()
			cfg, err := store.Load(projectDir)
			if err != nil {
				return err
			}

			kinds := cfg.Agents.Kinds()
			switch {
			case cfg.Agents.IsExplicit() && len(kinds) == 0:
				return errNoAgentsListed
			case !cfg.Agents.IsExplicit():
				kinds, err = workspace.InferAgents(projectDir)
				if err != nil {
					return err
				}
				if len(kinds) == 0 {
					return errNoAgentsDetected
				}
				cfg.Agents = config.Explicit(kinds...)
				if err := store.Save(projectDir, cfg); err != nil {
					return err
				}
				a.logger.Info("agents inferred and saved", "agents", kinds)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Updating osddt command files...")
			fmt.Fprintln(out)
			if err := writeAgentFiles(out, projectDir, kinds, "Updated"); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Update complete!")
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
