package cli

import (
	"fmt"
	"io"

	"github.com/dezkareid/osddt/internal/agents"
	"github.com/dezkareid/osddt/internal/workspace"
)

// writeAgentFiles renders and writes every command file for kinds,
// printing "<verb>: <path>" for each one.
func writeAgentFiles(out io.Writer, projectDir string, kinds []agents.Kind, verb string) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}
	command := workspace.ResolveCommand(projectDir)

	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		files, err := formatter.FormattedFiles(kind, projectDir, command)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s commands (%s/):\n", kind.Label(), kind.CommandsDir())
		err = workspace.WriteFiles(files, func(f agents.GeneratedFile) {
			fmt.Fprintf(out, "  %s: %s\n", verb, f.Path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
