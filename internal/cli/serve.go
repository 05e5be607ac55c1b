package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	sddserver "github.com/dezkareid/osddt/internal/server"
	"github.com/dezkareid/osddt/internal/workspace"
)

func newServeCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the osddt commands as MCP prompts over stdio",
		Long: `Start an MCP server on stdin/stdout. Every osddt command is exposed as a
prompt, alongside meta-info, feature listing and archiving tools.

The project root is the nearest directory at or above --dir that holds
.osddtrc. Diagnostics go to stderr; stdout carries only protocol messages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := resolveDir(dir)
			if err != nil {
				return err
			}
			root := workspace.FindRoot(start)

			s, err := sddserver.New(sddserver.Options{
				Root:   root,
				Runner: a.deps.Runner,
				Logger: a.logger,
			})
			if err != nil {
				return err
			}

			a.logger.Info("serving mcp over stdio", "root", root)
			return server.NewStdioServer(s).Listen(cmd.Context(), a.deps.Stdin, cmd.OutOrStdout())
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
