package meta

import (
	"bytes"
	"context"
	"os/exec"
)

// CmdResult holds the outcome of an external command.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs external commands. Tests substitute a stub.
type CommandRunner interface {
	// Run returns a result with ExitCode set whenever the process ran, even
	// if it exited non-zero. The error is reserved for failures to run at all.
	Run(ctx context.Context, dir, name string, args ...string) (CmdResult, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and captures its output.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
