package meta

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	result CmdResult
	err    error
	calls  [][]string
}

func (s *stubRunner) Run(_ context.Context, dir, name string, args ...string) (CmdResult, error) {
	s.calls = append(s.calls, append([]string{dir, name}, args...))
	return s.result, s.err
}

func pinNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func TestCollect_Branch(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	runner := &stubRunner{result: CmdResult{Stdout: "feat/my-feature\n"}}

	info := NewCollector(runner, nil).Collect(context.Background(), "/repo")

	assert.Equal(t, Info{Branch: "feat/my-feature", Date: "2025-06-01"}, info)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"/repo", "git", "rev-parse", "--abbrev-ref", "HEAD"}, runner.calls[0])
}

func TestCollect_UnknownBranch(t *testing.T) {
	tests := []struct {
		name   string
		runner *stubRunner
	}{
		{name: "git missing", runner: &stubRunner{err: errors.New("executable file not found")}},
		{name: "not a repo", runner: &stubRunner{result: CmdResult{ExitCode: 128, Stderr: "fatal: not a git repository"}}},
		{name: "empty output", runner: &stubRunner{result: CmdResult{Stdout: "\n"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewCollector(tt.runner, nil).Collect(context.Background(), t.TempDir())
			assert.Equal(t, UnknownBranch, info.Branch)
		})
	}
}

func TestCollect_JSONShape(t *testing.T) {
	info := NewCollector(&stubRunner{result: CmdResult{Stdout: "main\n"}}, nil).Collect(context.Background(), "")

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "main", decoded["branch"])
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), decoded["date"])
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), t.TempDir(), "osddt-definitely-missing-binary")
	assert.Error(t, err)
}
