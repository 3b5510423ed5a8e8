package usertimer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/unit"
)

// TimerInfo is what a timer file on disk declares
type TimerInfo struct {
	// Name is the timer name without suffix
	Name string
	// Path is the timer file location
	Path string
	// Description is the [Unit] Description
	Description string
	// Unit is the service unit the timer activates, with suffix
	Unit string
	// Trigger is the trigger kind found in [Timer]
	Trigger Trigger
	// Schedule is the trigger expression
	Schedule string
	// Persistent is the Persistent= flag
	Persistent bool
	// RemainAfterElapse is the RemainAfterElapse= flag
	RemainAfterElapse bool
	// SingleUse is true when the promise ledger records the timer
	SingleUse bool
}

// Describe reads <name>.timer back from the unit directory
func (m *Manager) Describe(name string) (*TimerInfo, error) {
	path := TimerPath(m.Dir(), name)

	f, err := os.Open(path)
	if err != nil {
		return nil, stepErr(StepRead, path, ErrPersist, err)
	}
	defer f.Close()

	info, err := ParseTimer(f)
	if err != nil {
		return nil, stepErr(StepRead, path, ErrPersist, err)
	}
	info.Name = name
	info.Path = path

	promised, err := m.Promised(name)
	if err != nil {
		return nil, stepErr(StepLedger, LedgerPath(m.Dir()), ErrLedger, err)
	}
	info.SingleUse = promised

	return info, nil
}

// ParseTimer decodes timer unit text. The text must name a service in
// [Timer] Unit= and carry exactly one trigger directive.
func ParseTimer(r io.Reader) (*TimerInfo, error) {
	opts, err := unit.DeserializeOptions(r)
	if err != nil {
		return nil, fmt.Errorf("parsing timer unit: %w", err)
	}

	info := &TimerInfo{}
	triggers := 0
	for _, opt := range opts {
		switch opt.Section {
		case "Unit":
			if opt.Name == "Description" {
				info.Description = opt.Value
			}
		case "Timer":
			switch opt.Name {
			case "Unit":
				info.Unit = opt.Value
			case "Persistent":
				info.Persistent = parseYes(opt.Value)
			case "RemainAfterElapse":
				info.RemainAfterElapse = parseYes(opt.Value)
			default:
				if t, ok := triggerForKey(opt.Name); ok {
					info.Trigger = t
					info.Schedule = opt.Value
					triggers++
				}
			}
		}
	}

	if info.Unit == "" {
		return nil, fmt.Errorf("timer unit has no Unit= directive")
	}
	if triggers != 1 {
		return nil, fmt.Errorf("timer unit has %d trigger directives, want 1", triggers)
	}
	return info, nil
}

func parseYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "on", "1":
		return true
	default:
		return false
	}
}
