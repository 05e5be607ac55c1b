// Package features manages feature working directories: the in-progress
// folders under working-on/ and the dated archive under done/.
package features

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// WorkingDir holds in-progress features.
	WorkingDir = "working-on"
	// DoneDir holds archived features.
	DoneDir = "done"
)

var (
	// ErrFeatureNotFound is returned when working-on/<name> is missing.
	ErrFeatureNotFound = errors.New("feature not found")
	// ErrAlreadyDone is returned when the archive destination already exists.
	ErrAlreadyDone = errors.New("feature already archived")
)

// Status is where a feature currently lives.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Feature is one folder under working-on/ or done/.
type Feature struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Phase  Phase  `json:"phase"`
	// Dir is relative to the project, e.g. "done/2025-06-01-my-feature".
	Dir string `json:"dir"`
}

// notFoundError reports a missing working directory in the form users see
// on the command line.
type notFoundError struct{ dir string }

func (e *notFoundError) Error() string { return e.dir + " does not exist." }
func (e *notFoundError) Unwrap() error { return ErrFeatureNotFound }

// Archived describes a completed move.
type Archived struct {
	Name string
	From string
	To   string
}

// Store defines the operations on feature directories.
type Store interface {
	Archive(projectDir, name string) (*Archived, error)
	List(projectDir string) ([]Feature, error)
}

// FileStore implements Store on the local filesystem.
type FileStore struct{}

// NewFileStore creates a filesystem-backed feature store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// WorkingPath returns <project>/working-on/<name>.
func WorkingPath(projectDir, name string) string {
	return filepath.Join(projectDir, WorkingDir, name)
}

// DonePath returns <project>/done.
func DonePath(projectDir string) string {
	return filepath.Join(projectDir, DoneDir)
}

// Archive moves working-on/<name> to done/<YYYY-MM-DD>-<name>.
func (fs *FileStore) Archive(projectDir, name string) (*Archived, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	from := WorkingDir + "/" + name
	src := WorkingPath(projectDir, name)
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return nil, &notFoundError{dir: from}
	}

	target := Today() + "-" + name
	to := DoneDir + "/" + target
	doneDir := DonePath(projectDir)
	if err := os.MkdirAll(doneDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating done directory: %w", err)
	}

	dst := filepath.Join(doneDir, target)
	if _, err := os.Stat(dst); err == nil {
		return nil, fmt.Errorf("%w: %s already exists", ErrAlreadyDone, to)
	}

	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("moving %s to %s: %w", from, to, err)
	}

	return &Archived{Name: name, From: from, To: to}, nil
}

// List returns in-progress features followed by archived ones, each group
// sorted by directory name. Missing directories yield no entries.
func (fs *FileStore) List(projectDir string) ([]Feature, error) {
	var result []Feature

	working, err := readDirs(filepath.Join(projectDir, WorkingDir))
	if err != nil {
		return nil, err
	}
	for _, name := range working {
		phase, err := DetectPhase(WorkingPath(projectDir, name))
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", name, err)
		}
		result = append(result, Feature{
			Name:   name,
			Status: StatusInProgress,
			Phase:  phase,
			Dir:    WorkingDir + "/" + name,
		})
	}

	done, err := readDirs(DonePath(projectDir))
	if err != nil {
		return nil, err
	}
	for _, dir := range done {
		result = append(result, Feature{
			Name:   stripDatePrefix(dir),
			Status: StatusDone,
			Phase:  PhaseDone,
			Dir:    DoneDir + "/" + dir,
		})
	}

	return result, nil
}

func readDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// stripDatePrefix turns "2025-06-01-my-feature" into "my-feature".
func stripDatePrefix(dir string) string {
	n := len(DateLayout)
	if len(dir) <= n+1 || dir[n] != '-' {
		return dir
	}
	if _, err := time.Parse(DateLayout, dir[:n]); err != nil {
		return dir
	}
	return dir[n+1:]
}
