package usertimer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Manager drives the per-user service manager: it writes unit files into the
// resolved unit directory and issues lifecycle commands through a
// CommandRunner. Operations are sequential and attempt each command once.
type Manager struct {
	// Runner executes manager commands
	Runner CommandRunner
	// Resolver locates the unit directory
	Resolver *Resolver
	// Logger receives step-level events
	Logger zerolog.Logger
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithRunner sets the command runner
func WithRunner(r CommandRunner) ManagerOption {
	return func(m *Manager) {
		m.Runner = r
	}
}

// WithSystemctlPath runs the systemctl binary at path
func WithSystemctlPath(path string) ManagerOption {
	return func(m *Manager) {
		m.Runner = NewSystemctl(path)
	}
}

// WithEnvironment resolves the unit directory against env instead of the process environment
func WithEnvironment(env Environment) ManagerOption {
	return func(m *Manager) {
		m.Resolver.Env = env
	}
}

// WithFallbackDir sets the directory used when the environment yields none
func WithFallbackDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.Resolver.FallbackDir = dir
	}
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.Logger = l
	}
}

// NewManager creates a Manager with default settings: real systemctl,
// process environment, no logging.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		Runner:   NewSystemctl(DefaultSystemctlPath),
		Resolver: NewResolver(EnvironmentFromOS()),
		Logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Dir returns the unit directory without creating it
func (m *Manager) Dir() string {
	return m.Resolver.Path()
}

// systemctl runs a --user scoped command and returns its raw result.
// Only a failure to execute is returned as an error.
func (m *Manager) systemctl(ctx context.Context, step Step, unit string, args ...string) (CommandResult, error) {
	full := append([]string{"--user"}, args...)

	res, err := m.Runner.Run(ctx, full...)
	m.Logger.Debug().
		Str("step", step.String()).
		Str("unit", unit).
		Strs("args", full).
		Int("exit_code", res.ExitCode).
		Err(err).
		Msg("manager command")

	if err != nil {
		return res, stepErr(step, unit, ErrManager, err)
	}
	return res, nil
}

// invoke runs a command that must succeed. A non-zero exit becomes a
// StepError naming the step and unit.
func (m *Manager) invoke(ctx context.Context, step Step, unit string, args ...string) (CommandResult, error) {
	res, err := m.systemctl(ctx, step, unit, args...)
	if err != nil {
		return res, err
	}
	if !res.Success() {
		return res, stepErr(step, unit, ErrManager, exitError(res))
	}
	return res, nil
}

func exitError(res CommandResult) error {
	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return fmt.Errorf("exit status %d: %s", res.ExitCode, msg)
	}
	return fmt.Errorf("exit status %d", res.ExitCode)
}
