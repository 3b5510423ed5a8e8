package usertimer

import "fmt"

// Defaults applied when a Descriptor leaves a field unset
const (
	// DefaultTimerName is used when a descriptor has no name
	DefaultTimerName = "default_timer"

	// DefaultSchedule is used when a descriptor has no schedule
	DefaultSchedule = "*:*:*"
)

// Unit directory and file constants
const (
	// SingleUseFile is the promise ledger file name inside the unit directory
	SingleUseFile = ".single_use.txt"

	// ServiceSuffix is the file and unit suffix for service units
	ServiceSuffix = ".service"

	// TimerSuffix is the file and unit suffix for timer units
	TimerSuffix = ".timer"

	// ServiceWantedBy is the install target for generated services
	ServiceWantedBy = "default.target"

	// TimerWantedBy is the install target for generated timers
	TimerWantedBy = "timers.target"

	// DefaultSystemctlPath is the default systemctl binary
	DefaultSystemctlPath = "systemctl"
)

// File modes
const (
	// DirMode is the default mode for created directories
	DirMode = 0o755

	// FileMode is the default mode for written unit files and the ledger
	FileMode = 0o644
)

// Step identifies one stage of a lifecycle operation. It is carried by
// StepError and StepOutcome so callers can tell which stage failed.
type Step int

const (
	// StepUnknown is the zero Step
	StepUnknown Step = iota
	// StepConfig normalizes and validates the descriptor
	StepConfig
	// StepResolve resolves and creates the unit directory
	StepResolve
	// StepWriteService writes the generated service file
	StepWriteService
	// StepWriteTimer writes the generated timer file
	StepWriteTimer
	// StepLedger appends to the single-use promise ledger
	StepLedger
	// StepReload asks the manager to reload unit files
	StepReload
	// StepEnable enables a unit
	StepEnable
	// StepStart starts a unit
	StepStart
	// StepEnableNow enables and starts a unit in one request
	StepEnableNow
	// StepStop stops a unit
	StepStop
	// StepDisable disables a unit
	StepDisable
	// StepDelete removes a unit file from disk
	StepDelete
	// StepList enumerates timer unit files
	StepList
	// StepShow introspects a unit
	StepShow
	// StepRead reads a unit file back from disk
	StepRead
)

// String returns the string representation of the step
func (s Step) String() string {
	switch s {
	case StepConfig:
		return "config"
	case StepResolve:
		return "resolve"
	case StepWriteService:
		return "write-service"
	case StepWriteTimer:
		return "write-timer"
	case StepLedger:
		return "ledger"
	case StepReload:
		return "daemon-reload"
	case StepEnable:
		return "enable"
	case StepStart:
		return "start"
	case StepEnableNow:
		return "enable-now"
	case StepStop:
		return "stop"
	case StepDisable:
		return "disable"
	case StepDelete:
		return "delete"
	case StepList:
		return "list"
	case StepShow:
		return "show"
	case StepRead:
		return "read"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Trigger is the kind of condition that fires a timer. Exactly one is
// active per timer.
type Trigger int

const (
	// TriggerActive fires once, shortly after the timer is activated
	TriggerActive Trigger = iota
	// TriggerCalendar fires on a calendar expression
	TriggerCalendar
	// TriggerBoot fires relative to boot
	TriggerBoot
	// TriggerUnitActive fires relative to the last activation of the service
	TriggerUnitActive
)

// Key returns the [Timer] directive name for the trigger
func (t Trigger) Key() string {
	switch t {
	case TriggerCalendar:
		return "OnCalendar"
	case TriggerBoot:
		return "OnBootSec"
	case TriggerUnitActive:
		return "OnUnitActiveSec"
	default:
		return "OnActiveSec"
	}
}

// String returns the string representation of the trigger
func (t Trigger) String() string {
	switch t {
	case TriggerCalendar:
		return "calendar"
	case TriggerBoot:
		return "boot"
	case TriggerUnitActive:
		return "unit-active"
	default:
		return "active"
	}
}

// triggerForKey maps a [Timer] directive back to its Trigger
func triggerForKey(key string) (Trigger, bool) {
	for _, t := range []Trigger{TriggerCalendar, TriggerBoot, TriggerUnitActive, TriggerActive} {
		if t.Key() == key {
			return t, true
		}
	}
	return TriggerActive, false
}

// timerUnit returns the full timer unit name for name
func timerUnit(name string) string {
	return name + TimerSuffix
}

// serviceUnit returns the full service unit name for name
func serviceUnit(name string) string {
	return name + ServiceSuffix
}
