package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/agents"
	"github.com/dezkareid/osddt/internal/config"
)

func newSetupCommand(a *app) *cobra.Command {
	var (
		dir       string
		agentList string
		repoType  string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create osddt command files for the selected AI agents",
		Long: `Create osddt command files for Claude Code (.claude/commands/) and/or
Gemini CLI (.gemini/commands/) and write .osddtrc.

Flags that are not given are asked for interactively.`,
		Example: `  osddt setup
  osddt setup --agents claude,gemini --repo-type single
  osddt setup --dir packages/web --agents gemini --repo-type monorepo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveDir(dir)
			if err != nil {
				return err
			}

			// Flags are validated before any question is asked.
			var kinds []agents.Kind
			if cmd.Flags().Changed("agents") {
				if kinds, err = agents.ParseKinds(agentList); err != nil {
					return fmt.Errorf("invalid --agents: %w", err)
				}
			}
			var rt config.RepoType
			if cmd.Flags().Changed("repo-type") {
				if rt, err = config.ParseRepoType(repoType); err != nil {
					return fmt.Errorf("invalid --repo-type: %w", err)
				}
			}

			if kinds == nil {
				if kinds, err = a.deps.Prompter.Agents(); err != nil {
					return err
				}
			}
			if rt == "" {
				if rt, err = a.deps.Prompter.RepoType(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Setting up osddt command files...")
			fmt.Fprintln(out)
			if err := writeAgentFiles(out, projectDir, kinds, "Created"); err != nil {
				return err
			}

			cfg := &config.Config{RepoType: rt, Agents: config.Explicit(kinds...)}
			if err := config.NewFileStore().Save(projectDir, cfg); err != nil {
				return err
			}
			a.logger.Debug("config written", "path", config.ConfigPath(projectDir), "repo_type", rt, "agents", kinds)

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Saved %s\n", config.FileName)
			fmt.Fprintln(out, "Setup complete!")
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&agentList, "agents", "", "comma-separated agents to set up (claude, gemini)")
	cmd.Flags().StringVar(&repoType, "repo-type", "", "repository type (single, monorepo)")
	return cmd
}
