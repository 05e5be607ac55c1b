// Package workspace inspects a target project: how osddt is invoked there
// and which agents already have generated command files.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dezkareid/osddt/internal/agents"
	"github.com/dezkareid/osddt/internal/config"
)

// PackageName is the npm package osddt is published as.
const PackageName = "@dezkareid/osddt"

const (
	// LocalCommand is used inside the osddt package itself.
	LocalCommand = "npx osddt"
	// PublishedCommand is used everywhere else.
	PublishedCommand = "npx " + PackageName
)

// ResolveCommand returns the osddt invocation embedded in generated files.
// A missing or unreadable package.json resolves to the published command.
func ResolveCommand(projectDir string) string {
	data, err := os.ReadFile(filepath.Join(projectDir, "package.json"))
	if err != nil {
		return PublishedCommand
	}
	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return PublishedCommand
	}
	if manifest.Name == PackageName {
		return LocalCommand
	}
	return PublishedCommand
}

// InferAgents detects agents whose commands directory holds at least one
// osddt command file. Results follow canonical agent order.
func InferAgents(projectDir string) ([]agents.Kind, error) {
	var found []agents.Kind
	for _, kind := range agents.All {
		ok, err := hasCommandFiles(projectDir, kind)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, kind)
		}
	}
	return found, nil
}

func hasCommandFiles(projectDir string, kind agents.Kind) (bool, error) {
	dir := filepath.Join(projectDir, kind.CommandsDir())
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "osddt.*."+kind.Ext())
	if err != nil {
		return false, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return len(matches) > 0, nil
}

// WriteFiles writes generated files, creating parent directories, and
// calls onWrite after each one.
func WriteFiles(files []agents.GeneratedFile, onWrite func(agents.GeneratedFile)) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(f.Path), err)
		}
		if err := os.WriteFile(f.Path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
		if onWrite != nil {
			onWrite(f)
		}
	}
	return nil
}

// FindRoot walks up from start looking for a directory with a .osddtrc.
// If none is found it returns start unchanged.
func FindRoot(start string) string {
	current := start
	for {
		if config.Exists(current) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return start
		}
		current = parent
	}
}
