package usertimer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment is the snapshot of process environment the Resolver reads.
// Threading it explicitly keeps path resolution independent of os.Getenv.
type Environment struct {
	// ConfigHome is $XDG_CONFIG_HOME
	ConfigHome string
	// Home is $HOME
	Home string
}

// EnvironmentFromOS captures the current process environment
func EnvironmentFromOS() Environment {
	return Environment{
		ConfigHome: os.Getenv("XDG_CONFIG_HOME"),
		Home:       os.Getenv("HOME"),
	}
}

// DefaultFallbackDir is used when neither XDG_CONFIG_HOME nor HOME is set
func DefaultFallbackDir() string {
	return filepath.Join(os.TempDir(), "systemd", "user")
}

// Resolver computes the per-user unit directory
type Resolver struct {
	// Env is the environment snapshot to resolve against
	Env Environment
	// FallbackDir is used when Env yields nothing
	FallbackDir string
}

// NewResolver creates a Resolver with the default fallback directory
func NewResolver(env Environment) *Resolver {
	return &Resolver{
		Env:         env,
		FallbackDir: DefaultFallbackDir(),
	}
}

// Path returns the unit directory without touching the filesystem.
// Order: $XDG_CONFIG_HOME/systemd/user, $HOME/.config/systemd/user, FallbackDir.
// Relative environment values are ignored.
func (r *Resolver) Path() string {
	switch {
	case filepath.IsAbs(r.Env.ConfigHome):
		return filepath.Join(r.Env.ConfigHome, "systemd", "user")
	case filepath.IsAbs(r.Env.Home):
		return filepath.Join(r.Env.Home, ".config", "systemd", "user")
	case r.FallbackDir != "":
		return r.FallbackDir
	default:
		return DefaultFallbackDir()
	}
}

// Ensure resolves the unit directory and creates it with its parents.
// An existing directory is not an error.
func (r *Resolver) Ensure() (string, error) {
	dir := r.Path()
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return "", stepErr(StepResolve, dir, ErrResolve, fmt.Errorf("creating unit directory: %w", err))
	}
	return dir, nil
}

// TimerPath returns the path of <name>.timer inside dir
func TimerPath(dir, name string) string {
	return filepath.Join(dir, timerUnit(name))
}

// ServicePath returns the path of <name>.service inside dir
func ServicePath(dir, name string) string {
	return filepath.Join(dir, serviceUnit(name))
}

// LedgerPath returns the promise ledger path inside dir
func LedgerPath(dir string) string {
	return filepath.Join(dir, SingleUseFile)
}
