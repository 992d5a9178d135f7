// Package runner is the single capability mkdev needs from the host
// system: run an external command and capture its exit status. The
// scaffolder and clone flow depend only on the interface so tests
// never invoke real binaries.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CommandResult captures the outcome of one external command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Error    error
}

// Ok reports whether the command ran and exited zero.
func (r *CommandResult) Ok() bool {
	return r.Error == nil && r.ExitCode == 0
}

// Runner runs external tools (git, go, npm, poetry, ...).
type Runner interface {
	// Run executes name with args in dir (empty dir means the
	// process working directory) and always returns a result.
	Run(ctx context.Context, dir string, name string, args ...string) *CommandResult

	// LookPath reports whether the named tool is on PATH.
	LookPath(name string) bool
}

// ExecRunner runs commands locally through os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) *CommandResult {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &CommandResult{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Error = err
		}
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func (ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
