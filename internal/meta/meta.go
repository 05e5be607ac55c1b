// Package meta reports the git branch and current date that command bodies
// ask the agent to fetch before starting work.
package meta

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// UnknownBranch is reported when the branch cannot be determined.
const UnknownBranch = "unknown"

// timeNow is replaced in tests.
var timeNow = time.Now

// Info is printed by the meta-info command as a single JSON line.
type Info struct {
	Branch string `json:"branch"`
	Date   string `json:"date"`
}

// Collector gathers Info for a directory.
type Collector struct {
	runner CommandRunner
	logger *slog.Logger
}

// NewCollector creates a Collector. A nil logger discards diagnostics.
func NewCollector(runner CommandRunner, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collector{runner: runner, logger: logger}
}

// Collect never fails: any git problem yields UnknownBranch.
func (c *Collector) Collect(ctx context.Context, dir string) Info {
	return Info{
		Branch: c.branch(ctx, dir),
		Date:   timeNow().UTC().Format("2006-01-02"),
	}
}

func (c *Collector) branch(ctx context.Context, dir string) string {
	res, err := c.runner.Run(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		c.logger.Debug("git not runnable", "error", err)
		return UnknownBranch
	}
	if res.ExitCode != 0 {
		c.logger.Debug("git rev-parse failed", "exit_code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return UnknownBranch
	}
	branch := strings.TrimSpace(res.Stdout)
	if branch == "" {
		return UnknownBranch
	}
	return branch
}
