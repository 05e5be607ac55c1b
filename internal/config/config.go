// Package config reads and writes the project's .osddtrc file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dezkareid/osddt/internal/agents"
)

// FileName is the configuration file at the project root.
const FileName = ".osddtrc"

var (
	// ErrNotInitialized is returned when a project has no .osddtrc.
	ErrNotInitialized = errors.New(".osddtrc not found. Run `osddt setup` first.")
	// ErrInvalidRepoType is returned for a repoType other than single or monorepo.
	ErrInvalidRepoType = errors.New("invalid repo type")
)

// RepoType describes the repository layout.
type RepoType string

const (
	RepoSingle   RepoType = "single"
	RepoMonorepo RepoType = "monorepo"
)

// ParseRepoType validates a repo type string.
func ParseRepoType(s string) (RepoType, error) {
	switch rt := RepoType(s); rt {
	case RepoSingle, RepoMonorepo:
		return rt, nil
	}
	return "", fmt.Errorf("%w %q (valid: %s, %s)", ErrInvalidRepoType, s, RepoSingle, RepoMonorepo)
}

// AgentSelection records which agents a project uses. The zero value is
// unset: the agents key is absent and must be inferred from disk. An explicit
// selection may be empty.
type AgentSelection struct {
	explicit bool
	kinds    []agents.Kind
}

// Unset returns a selection with no agents key.
func Unset() AgentSelection { return AgentSelection{} }

// Explicit returns a selection persisted as the agents key.
func Explicit(kinds ...agents.Kind) AgentSelection {
	return AgentSelection{explicit: true, kinds: append([]agents.Kind{}, kinds...)}
}

// IsExplicit reports whether the agents key is present.
func (s AgentSelection) IsExplicit() bool { return s.explicit }

// Kinds returns the selected agents. It is nil when unset.
func (s AgentSelection) Kinds() []agents.Kind {
	if !s.explicit {
		return nil
	}
	return append([]agents.Kind{}, s.kinds...)
}

// Config is the content of .osddtrc.
type Config struct {
	RepoType RepoType
	Agents   AgentSelection
}

type fileConfig struct {
	RepoType RepoType       `json:"repoType"`
	Agents   *[]agents.Kind `json:"agents,omitempty"`
}

// MarshalJSON writes the agents key only for explicit selections.
func (c Config) MarshalJSON() ([]byte, error) {
	fc := fileConfig{RepoType: c.RepoType}
	if c.Agents.explicit {
		kinds := c.Agents.Kinds()
		fc.Agents = &kinds
	}
	return json.Marshal(fc)
}

// UnmarshalJSON distinguishes an absent agents key from an empty list.
func (c *Config) UnmarshalJSON(data []byte) error {
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return err
	}
	c.RepoType = fc.RepoType
	c.Agents = Unset()
	if fc.Agents != nil {
		c.Agents = Explicit(*fc.Agents...)
	}
	return nil
}

// Validate checks field values loaded from disk.
func (c *Config) Validate() error {
	if _, err := ParseRepoType(string(c.RepoType)); err != nil {
		return err
	}
	for _, k := range c.Agents.kinds {
		if !k.Valid() {
			return fmt.Errorf("%w %q in %s", agents.ErrUnknownKind, k, FileName)
		}
	}
	return nil
}

// Store abstracts config persistence.
type Store interface {
	Load(projectDir string) (*Config, error)
	Save(projectDir string, cfg *Config) error
}

// FileStore keeps the config as JSON at the project root.
type FileStore struct{}

// NewFileStore creates a file-backed Store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// ConfigPath returns the .osddtrc path for a project.
func ConfigPath(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// Exists reports whether the project has a .osddtrc.
func Exists(projectDir string) bool {
	_, err := os.Stat(ConfigPath(projectDir))
	return err == nil
}

// Load reads and validates .osddtrc.
func (s *FileStore) Load(projectDir string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(projectDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Save writes .osddtrc with two-space indentation and a trailing newline.
func (s *FileStore) Save(projectDir string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", projectDir, err)
	}
	if err := os.WriteFile(ConfigPath(projectDir), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}
