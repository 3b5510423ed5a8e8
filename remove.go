package usertimer

import (
	"context"
	"fmt"
	"os"
)

// Remove stops, disables and deletes <name>.timer, then reloads the
// manager. With RemoveService it repeats stop, disable and delete for
// <name>.service. The first failure aborts the remaining steps and nothing
// is rolled back; the returned *StepError names the failed step and unit.
//
// The steps are not idempotent: retrying after a partial failure may fail
// at an earlier step with different error text.
func (m *Manager) Remove(ctx context.Context, req DeletionRequest) (string, error) {
	if err := ValidateName(req.Name); err != nil {
		return "", &StepError{Step: StepConfig, Unit: req.Name, Err: err}
	}
	log := m.Logger.With().Str("timer", timerUnit(req.Name)).Logger()

	if err := m.teardown(ctx, timerUnit(req.Name), func(dir string) string {
		return TimerPath(dir, req.Name)
	}); err != nil {
		log.Warn().Err(err).Msg("timer removal aborted")
		return "", err
	}

	if _, err := m.invoke(ctx, StepReload, "", "daemon-reload"); err != nil {
		log.Warn().Err(err).Msg("timer removal aborted")
		return "", err
	}

	if req.RemoveService {
		if err := m.teardown(ctx, serviceUnit(req.Name), func(dir string) string {
			return ServicePath(dir, req.Name)
		}); err != nil {
			log.Warn().Err(err).Msg("service removal aborted")
			return "", err
		}
	}

	log.Info().Bool("service", req.RemoveService).Msg("timer removed")
	return fmt.Sprintf("Successfully removed timer: %s", req.Name), nil
}

// teardown runs stop, disable and delete for one unit. The unit directory
// is resolved only once both manager calls succeeded, so an early failure
// never touches the filesystem.
func (m *Manager) teardown(ctx context.Context, unit string, pathIn func(dir string) string) error {
	if _, err := m.invoke(ctx, StepStop, unit, "stop", unit); err != nil {
		return err
	}
	if _, err := m.invoke(ctx, StepDisable, unit, "disable", unit); err != nil {
		return err
	}

	path := pathIn(m.Resolver.Path())
	if err := os.Remove(path); err != nil {
		return stepErr(StepDelete, path, ErrPersist, err)
	}
	m.Logger.Debug().Str("path", path).Msg("unit file removed")
	return nil
}
