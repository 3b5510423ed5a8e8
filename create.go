package usertimer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/renameio/v2"
)

// StepOutcome records what one creation step did
type StepOutcome struct {
	// Step is the stage
	Step Step
	// Unit is the unit name or path involved
	Unit string
	// Message is a human-readable summary
	Message string
	// Output is the manager's captured output, if any
	Output string
	// Err is set when an advisory step failed
	Err error
}

// CreateResult describes a creation run
type CreateResult struct {
	// Config is the resolved configuration
	Config *TimerConfig
	// Dir is the unit directory
	Dir string
	// ServicePath is the written service file, empty when none was generated
	ServicePath string
	// TimerPath is the written timer file
	TimerPath string
	// Units holds the generated text
	Units Units
	// Steps lists outcomes in execution order
	Steps []StepOutcome
	// ManualStart is true when neither enable nor start was requested
	ManualStart bool

	advisory MultiError
}

// Advisory returns the failures of non-fatal steps (ledger, reload,
// enable/start), or nil when every step succeeded
func (r *CreateResult) Advisory() error {
	return r.advisory.Err()
}

// String renders the outcome log
func (r *CreateResult) String() string {
	var b strings.Builder
	if r.Config != nil {
		fmt.Fprintf(&b, "Adding timer: %s\n", r.Config.Name)
	}
	for _, s := range r.Steps {
		b.WriteString(s.Message)
		b.WriteByte('\n')
		if out := strings.TrimSpace(s.Output); out != "" {
			b.WriteString(out)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *CreateResult) record(s StepOutcome) {
	r.Steps = append(r.Steps, s)
	r.advisory.Add(s.Err)
}

// Create generates the units for d, writes them into the unit directory and
// activates the timer. Resolution and write failures are fatal and returned
// as a *StepError; files already written stay in place. Ledger, reload and
// enable/start failures are advisory and reported in the result.
func (m *Manager) Create(ctx context.Context, d Descriptor) (*CreateResult, error) {
	cfg, err := Normalize(d)
	if err != nil {
		return nil, &StepError{Step: StepConfig, Unit: stringOr(d.Name, DefaultTimerName), Err: err}
	}

	res := &CreateResult{Config: cfg}
	log := m.Logger.With().Str("timer", cfg.TimerUnit()).Logger()

	res.Dir, err = m.Resolver.Ensure()
	if err != nil {
		return res, err
	}

	res.Units = Generate(cfg)

	if res.Units.HasService() {
		path := ServicePath(res.Dir, cfg.ServiceUnit)
		if err := renameio.WriteFile(path, []byte(res.Units.Service), FileMode); err != nil {
			return res, stepErr(StepWriteService, path, ErrPersist, err)
		}
		res.ServicePath = path
		res.record(StepOutcome{Step: StepWriteService, Unit: path, Message: "Wrote " + path})
	}

	path := TimerPath(res.Dir, cfg.Name)
	if err := renameio.WriteFile(path, []byte(res.Units.Timer), FileMode); err != nil {
		return res, stepErr(StepWriteTimer, path, ErrPersist, err)
	}
	res.TimerPath = path
	res.record(StepOutcome{Step: StepWriteTimer, Unit: path, Message: "Wrote " + path})

	if cfg.SingleUse {
		res.record(m.recordPromise(res.Dir, cfg.Name))
	}

	res.record(m.reload(ctx))

	if out, ok := m.activate(ctx, cfg); ok {
		res.record(out)
	} else {
		res.ManualStart = true
		res.record(StepOutcome{Message: "Timer created (manual start required)."})
	}

	if adv := res.Advisory(); adv != nil {
		log.Warn().Err(adv).Msg("timer created with advisory failures")
	} else {
		log.Info().Str("dir", res.Dir).Msg("timer created")
	}
	return res, nil
}

func (m *Manager) recordPromise(dir, name string) StepOutcome {
	ledger := NewLedger(dir)
	out := StepOutcome{Step: StepLedger, Unit: ledger.Path}

	added, err := ledger.Append(name)
	switch {
	case err != nil:
		out.Err = stepErr(StepLedger, ledger.Path, ErrLedger, err)
		out.Message = fmt.Sprintf("Failed to record single-use promise for %s: %v", name, err)
		m.Logger.Warn().Err(err).Str("ledger", ledger.Path).Msg("promise not recorded")
	case added:
		out.Message = "Recorded single-use promise for " + name
	default:
		out.Message = "Single-use promise for " + name + " already recorded"
	}
	return out
}

func (m *Manager) reload(ctx context.Context) StepOutcome {
	out := StepOutcome{Step: StepReload}

	res, err := m.invoke(ctx, StepReload, "", "daemon-reload")
	out.Output = res.Stdout
	if err != nil {
		out.Err = err
		out.Message = fmt.Sprintf("Failed: daemon-reload: %v", err)
		m.Logger.Warn().Err(err).Msg("daemon-reload failed; new units may not be recognized")
		return out
	}
	out.Message = "Reloaded user manager"
	return out
}

// activate issues the enable/start request selected by the config. It
// returns false when neither was requested.
func (m *Manager) activate(ctx context.Context, cfg *TimerConfig) (StepOutcome, bool) {
	unit := cfg.TimerUnit()

	var step Step
	var args []string
	var done string
	switch {
	case cfg.EnableAtLogin && cfg.StartAfterCreate:
		step, args, done = StepEnableNow, []string{"enable", "--now", unit}, "enabled and started"
	case cfg.EnableAtLogin:
		step, args, done = StepEnable, []string{"enable", unit}, "enabled"
	case cfg.StartAfterCreate:
		step, args, done = StepStart, []string{"start", unit}, "started"
	default:
		return StepOutcome{}, false
	}

	out := StepOutcome{Step: step, Unit: unit}
	res, err := m.invoke(ctx, step, unit, args...)
	out.Output = res.Stdout
	if err != nil {
		out.Err = err
		out.Message = fmt.Sprintf("Failed: %s %s: %v", step, unit, err)
		m.Logger.Warn().Err(err).Str("step", step.String()).Msg("timer not activated")
		return out, true
	}
	out.Message = fmt.Sprintf("Success: %s %s", done, unit)
	return out, true
}
