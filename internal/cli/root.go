// Package cli implements the osddt command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dezkareid/osddt/internal/agents"
	"github.com/dezkareid/osddt/internal/meta"
	"github.com/dezkareid/osddt/internal/prompt"
	"github.com/dezkareid/osddt/internal/server"
	"github.com/dezkareid/osddt/internal/templates"
)

// LogLevelEnv overrides the default log level.
const LogLevelEnv = "OSDDT_LOG_LEVEL"

// Deps are the collaborators commands use. Tests replace them.
type Deps struct {
	Prompter prompt.Prompter
	Runner   meta.CommandRunner
	Stdin    io.Reader
}

// DefaultDeps talks to the real terminal and runs real git.
func DefaultDeps() Deps {
	return Deps{
		Prompter: prompt.NewSurveyPrompter(prompt.DefaultSurveyIO),
		Runner:   meta.NewExecRunner(),
		Stdin:    os.Stdin,
	}
}

type app struct {
	deps    Deps
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand creates the osddt root command with every subcommand.
func NewRootCommand(deps Deps) *cobra.Command {
	a := &app{deps: deps, logger: slog.New(slog.DiscardHandler)}

	cmd := &cobra.Command{
		Use:   "osddt",
		Short: "Spec-driven development commands for AI coding agents",
		Long: `osddt writes a spec-driven development workflow (research, start, spec,
clarify, plan, tasks, implement, done) as command files for Claude Code and
Gemini CLI, and keeps feature folders organised under working-on/ and done/.`,
		Version:       server.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	cmd.SetVersionTemplate("osddt v{{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging on stderr")

	cmd.AddCommand(
		newSetupCommand(a),
		newUpdateCommand(a),
		newDoneCommand(a),
		newMetaInfoCommand(a),
		newFeatureNameCommand(a),
		newListCommand(),
		newServeCommand(a),
		newVersionCommand(),
	)

	return cmd
}

// newLogger builds the stderr diagnostics logger. --verbose wins over the
// environment; the default level is warn.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if env := strings.TrimSpace(os.Getenv(LogLevelEnv)); env != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(env)); err == nil {
			level = l
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// addDirFlag registers the shared --dir flag.
func addDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVarP(dir, "dir", "d", ".", "project directory")
}

// resolveDir turns the --dir value into an absolute path.
func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

// newFormatter creates a formatter over the embedded templates.
func newFormatter() (*agents.Formatter, error) {
	r, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	return agents.NewFormatter(r), nil
}
