package usertimer

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CommandRunner is the capability used to talk to the service manager.
// Run returns an error only when the command could not be executed; a
// non-zero exit is reported through CommandResult.ExitCode.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) (CommandResult, error)
}

// CommandResult is the outcome of one manager invocation
type CommandResult struct {
	// ExitCode is the process exit status
	ExitCode int
	// Stdout is the captured standard output
	Stdout string
	// Stderr is the captured standard error
	Stderr string
}

// Success reports whether the command exited zero
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Systemctl runs the real systemctl binary
type Systemctl struct {
	// Path is the systemctl binary (default "systemctl")
	Path string
}

// NewSystemctl creates a Systemctl runner using the binary at path
func NewSystemctl(path string) *Systemctl {
	if path == "" {
		path = DefaultSystemctlPath
	}
	return &Systemctl{Path: path}
}

// Run executes systemctl with args, capturing stdout and stderr
func (s *Systemctl) Run(ctx context.Context, args ...string) (CommandResult, error) {
	path := s.Path
	if path == "" {
		path = DefaultSystemctlPath
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, err
	}
	return res, nil
}
