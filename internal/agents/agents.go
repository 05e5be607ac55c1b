// Package agents turns command definitions into the files each supported
// AI coding assistant reads from its commands directory.
package agents

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dezkareid/osddt/internal/templates"
)

// Kind identifies a supported agent.
type Kind string

const (
	Claude Kind = "claude"
	Gemini Kind = "gemini"
)

// All lists every supported agent in canonical order.
var All = []Kind{Claude, Gemini}

// ErrUnknownKind is returned when an agent name is not supported.
var ErrUnknownKind = errors.New("unknown agent")

// GeneratedFile is a command file ready to be written to disk.
type GeneratedFile struct {
	Path    string
	Content string
}

// Label is the human-readable agent name.
func (k Kind) Label() string {
	switch k {
	case Claude:
		return "Claude Code"
	case Gemini:
		return "Gemini CLI"
	}
	return string(k)
}

// CommandsDir is the agent's commands directory relative to a project root.
func (k Kind) CommandsDir() string {
	switch k {
	case Claude:
		return filepath.Join(".claude", "commands")
	case Gemini:
		return filepath.Join(".gemini", "commands")
	}
	return ""
}

// Ext is the command file extension, without the dot.
func (k Kind) Ext() string {
	switch k {
	case Claude:
		return "md"
	case Gemini:
		return "toml"
	}
	return ""
}

// Placeholder is the token the agent replaces with user arguments.
func (k Kind) Placeholder() templates.ArgPlaceholder {
	if k == Gemini {
		return templates.ArgsBraces
	}
	return templates.ArgsDollar
}

// Valid reports whether k is a supported agent.
func (k Kind) Valid() bool {
	for _, a := range All {
		if a == k {
			return true
		}
	}
	return false
}

// ParseKind validates a single agent name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownKind, s, validList())
	}
	return k, nil
}

// ParseKinds parses a comma-separated agent list such as "claude,gemini".
// Duplicates are dropped and canonical order is kept. Every invalid entry is
// reported in a single error.
func ParseKinds(list string) ([]Kind, error) {
	seen := make(map[Kind]bool)
	var invalid []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k := Kind(strings.ToLower(part))
		if !k.Valid() {
			invalid = append(invalid, fmt.Sprintf("%q", part))
			continue
		}
		seen[k] = true
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKind, strings.Join(invalid, ", "), validList())
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no agents given (valid: %s)", validList())
	}
	return Canonical(seen), nil
}

// Canonical returns the selected kinds in canonical order.
func Canonical(selected map[Kind]bool) []Kind {
	out := make([]Kind, 0, len(selected))
	for _, k := range All {
		if selected[k] {
			out = append(out, k)
		}
	}
	return out
}

func validList() string {
	names := make([]string, len(All))
	for i, k := range All {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
