package usertimer

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// recordingRunner stands in for systemctl. Calls are recorded in order;
// results keyed by the command line without "--user" override the default
// success.
type recordingRunner struct {
	mu      sync.Mutex
	calls   []string
	results map[string]CommandResult
	errs    map[string]error
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{
		results: make(map[string]CommandResult),
		errs:    make(map[string]error),
	}
}

func (r *recordingRunner) Run(_ context.Context, args ...string) (CommandResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := strings.Join(args, " ")
	r.calls = append(r.calls, line)

	key := strings.TrimPrefix(line, "--user ")
	if err, ok := r.errs[key]; ok {
		return CommandResult{ExitCode: -1}, err
	}
	if res, ok := r.results[key]; ok {
		return res, nil
	}
	return CommandResult{}, nil
}

// fail makes the given command line exit non-zero
func (r *recordingRunner) fail(cmdline string, code int, stderr string) {
	r.results[cmdline] = CommandResult{ExitCode: code, Stderr: stderr}
}

func (r *recordingRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// newTestManager returns a Manager rooted in a fresh config home and the
// unit directory it will use
func newTestManager(t *testing.T, runner CommandRunner) (*Manager, string) {
	t.Helper()
	home := t.TempDir()
	m := NewManager(
		WithRunner(runner),
		WithEnvironment(Environment{ConfigHome: home}),
		WithFallbackDir(filepath.Join(t.TempDir(), "fallback")),
	)
	return m, filepath.Join(home, "systemd", "user")
}

// RequireTool skips the test if the tool is not available in PATH
func RequireTool(t *testing.T, toolName string) {
	t.Helper()
	if _, err := exec.LookPath(toolName); err != nil {
		t.Skipf("%s not found in PATH, skipping test", toolName)
	}
}
