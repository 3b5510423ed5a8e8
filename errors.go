package usertimer

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes returned by usertimer operations. Every failure wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	// ErrConfig indicates the descriptor is missing a field required by its other flags
	ErrConfig = errors.New("usertimer: invalid descriptor")

	// ErrResolve indicates the unit directory could not be created
	ErrResolve = errors.New("usertimer: unit directory unavailable")

	// ErrPersist indicates a unit file could not be written, read or removed
	ErrPersist = errors.New("usertimer: unit file persistence")

	// ErrManager indicates the service manager could not be run or exited non-zero
	ErrManager = errors.New("usertimer: manager command failed")

	// ErrLedger indicates the single-use promise ledger could not be updated
	ErrLedger = errors.New("usertimer: promise ledger")
)

// StepError represents a failure of one lifecycle step
type StepError struct {
	// Step is the stage that failed
	Step Step
	// Unit is the unit name or path involved
	Unit string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *StepError) Error() string {
	return fmt.Sprintf("usertimer %s %q: %v", e.Step.String(), e.Unit, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *StepError) Unwrap() error {
	return e.Err
}

// stepErr wraps err with its class sentinel unless it already carries it
func stepErr(step Step, unit string, class, err error) *StepError {
	if !errors.Is(err, class) {
		err = fmt.Errorf("%w: %w", class, err)
	}
	return &StepError{Step: step, Unit: unit, Err: err}
}

// MultiError collects the failures of advisory steps. Its message lists
// every failure in step order.
type MultiError struct {
	// Errors holds the failures in the order the steps ran
	Errors []error
}

func (m *MultiError) Error() string {
	switch len(m.Errors) {
	case 0:
		return "no advisory failures"
	case 1:
		return m.Errors[0].Error()
	}

	msgs := make([]string, len(m.Errors))
	for i, err := range m.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d advisory steps failed: %s", len(m.Errors), strings.Join(msgs, "; "))
}

// Add records err; nil is ignored
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Err returns m, or nil when nothing failed
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

// Unwrap exposes the collected failures to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}
