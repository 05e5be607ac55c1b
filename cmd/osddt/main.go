// osddt: spec-driven development commands for AI coding agents.
//
// Writes the osddt workflow as Claude Code and Gemini CLI command files,
// manages feature folders, and serves the same workflow over MCP.
//
// Usage:
//
//	osddt setup        # Generate agent command files and .osddtrc
//	osddt update       # Regenerate command files from .osddtrc
//	osddt done <name>  # Archive working-on/<name> to done/<date>-<name>
//	osddt meta-info    # Print {"branch": ..., "date": ...}
//	osddt serve        # Start MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dezkareid/osddt/internal/cli"
)

func main() {
	// Graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand(cli.DefaultDeps()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
