// Package server wires the osddt MCP components and creates the server
// instance.
//
// This is the composition root: it creates concrete stores and injects them
// into the prompts, tools and resources. No business logic lives here.
package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dezkareid/osddt/internal/config"
	"github.com/dezkareid/osddt/internal/features"
	"github.com/dezkareid/osddt/internal/meta"
	"github.com/dezkareid/osddt/internal/prompts"
	"github.com/dezkareid/osddt/internal/resources"
	"github.com/dezkareid/osddt/internal/templates"
	"github.com/dezkareid/osddt/internal/tools"
	"github.com/dezkareid/osddt/internal/workspace"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Options configures a server for one project.
type Options struct {
	// Root is the project directory holding .osddtrc.
	Root string
	// Runner runs git for meta info. Defaults to an ExecRunner.
	Runner meta.CommandRunner
	// Logger receives diagnostics. It must not write to stdout.
	Logger *slog.Logger
}

// New creates the MCP server with every prompt, tool and resource
// registered.
func New(opts Options) (*server.MCPServer, error) {
	if opts.Runner == nil {
		opts.Runner = meta.NewExecRunner()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	// --- Create shared dependencies ---

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}
	configStore := config.NewFileStore()
	featureStore := features.NewFileStore()
	command := workspace.ResolveCommand(opts.Root)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"osddt",
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register prompts ---

	for _, p := range prompts.All(renderer, command) {
		s.AddPrompt(p.Definition(), p.Handle)
	}
	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register tools ---

	metaTool := tools.NewMetaInfoTool(meta.NewCollector(opts.Runner, opts.Logger), opts.Root)
	s.AddTool(metaTool.Definition(), metaTool.Handle)

	listTool := tools.NewListFeaturesTool(featureStore, opts.Root)
	s.AddTool(listTool.Definition(), listTool.Handle)

	doneTool := tools.NewDoneTool(featureStore, configStore, opts.Root)
	s.AddTool(doneTool.Definition(), doneTool.Handle)

	nameTool := tools.NewFeatureNameTool()
	s.AddTool(nameTool.Definition(), nameTool.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(configStore, featureStore, opts.Root)
	s.AddResource(resourceHandler.ConfigResource(), resourceHandler.HandleConfig)
	s.AddResource(resourceHandler.FeaturesResource(), resourceHandler.HandleFeatures)

	opts.Logger.Debug("mcp server ready", "root", opts.Root, "command", command)
	return s, nil
}

// serverInstructions tells the host how the osddt workflow fits together.
func serverInstructions() string {
	return `You have access to osddt, a spec-driven development workflow.

Features move through these prompts, in order:
osddt.research (optional) → osddt.start → osddt.spec → osddt.clarify (when the
spec has open questions) → osddt.plan → osddt.tasks → osddt.implement → osddt.done.
osddt.continue detects the current phase of a feature and names the next prompt.

Every feature lives in <project-path>/working-on/<feature-name>/ until it is
archived to done/<YYYY-MM-DD>-<feature-name>/ with the osddt_done tool.

Tools:
- osddt_meta_info: current git branch and date
- osddt_list_features: in-progress and finished features
- osddt_feature_name: derive a valid feature name from a branch or description
- osddt_done: archive a finished feature

Resources:
- osddt://config: the project's .osddtrc
- osddt://features: feature folders as JSON`
}
