package usertimer

import (
	"context"
	"fmt"
	"strings"
)

// List returns the manager's listing of timer unit files verbatim. Only a
// failure to run the manager is an error.
func (m *Manager) List(ctx context.Context) (string, error) {
	res, err := m.systemctl(ctx, StepList, "", "list-unit-files", "--type=timer")
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Status returns the manager's property dump for <name>.timer verbatim.
// Only a failure to run the manager is an error.
func (m *Manager) Status(ctx context.Context, name string) (string, error) {
	unit := timerUnit(name)
	res, err := m.systemctl(ctx, StepShow, unit, "show", unit)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Enable enables <name>.timer
func (m *Manager) Enable(ctx context.Context, name string) (string, error) {
	return m.control(ctx, StepEnable, "Enabling", name, "enable")
}

// Disable disables <name>.timer
func (m *Manager) Disable(ctx context.Context, name string) (string, error) {
	return m.control(ctx, StepDisable, "Disabling", name, "disable")
}

// Start starts <name>.timer
func (m *Manager) Start(ctx context.Context, name string) (string, error) {
	return m.control(ctx, StepStart, "Starting", name, "start")
}

// Stop stops <name>.timer
func (m *Manager) Stop(ctx context.Context, name string) (string, error) {
	return m.control(ctx, StepStop, "Stopping", name, "stop")
}

// control runs a single verb against <name>.timer and renders the manager output
func (m *Manager) control(ctx context.Context, step Step, verb, name string, args ...string) (string, error) {
	unit := timerUnit(name)
	res, err := m.invoke(ctx, step, unit, append(args, unit)...)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("%s timer: %s - Success", verb, name)
	if out := strings.TrimSpace(res.Stdout + "\n" + res.Stderr); out != "" {
		msg += ": " + out
	}
	return msg, nil
}

// Promises lists the timers recorded as single-use
func (m *Manager) Promises() ([]string, error) {
	return NewLedger(m.Dir()).Names()
}

// Promised reports whether name was recorded as single-use, so callers can
// avoid re-arming it
func (m *Manager) Promised(name string) (bool, error) {
	return NewLedger(m.Dir()).Contains(name)
}
