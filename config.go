package usertimer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TimerConfig is a fully resolved descriptor. Every default has been applied,
// so the generator never sees an optional value.
type TimerConfig struct {
	// Name is the timer unit name without suffix
	Name string `validate:"required,excludes=/,excludesall=\n\r"`
	// Description is the service description, empty to omit
	Description string `validate:"excludesall=\n\r"`
	// Schedule is the trigger expression
	Schedule string `validate:"required,excludesall=\n\r"`
	// Executable is the shell command line, empty when AlreadyMadeService
	Executable string `validate:"required_unless=AlreadyMadeService true,excludesall=\n\r"`
	// ServiceUnit is the service the timer activates, without suffix
	ServiceUnit string `validate:"required,excludes=/,excludesall=\n\r"`
	// Trigger is the single active trigger kind
	Trigger Trigger

	Recurring          bool
	ExecIfMissed       bool
	SingleUse          bool
	NormalService      bool
	AlreadyMadeService bool
	EnableAtLogin      bool
	StartAfterCreate   bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize applies defaults to d and validates the result. A validation
// failure wraps ErrConfig and happens before any I/O.
func Normalize(d Descriptor) (*TimerConfig, error) {
	c := &TimerConfig{
		Name:               stringOr(d.Name, DefaultTimerName),
		Description:        stringOr(d.Description, ""),
		Schedule:           stringOr(d.Schedule, DefaultSchedule),
		Executable:         stringOr(d.Executable, ""),
		Recurring:          boolOr(d.Recurring),
		ExecIfMissed:       boolOr(d.ExecIfMissed),
		SingleUse:          boolOr(d.SingleUse),
		NormalService:      boolOr(d.NormalService),
		AlreadyMadeService: boolOr(d.AlreadyMadeService),
		EnableAtLogin:      boolOr(d.EnableAtLogin),
		StartAfterCreate:   boolOr(d.StartAfterCreate),
	}
	c.ServiceUnit = stringOr(d.Service, c.Name)

	// on_calendar > from_boot > recurring > run once
	switch {
	case boolOr(d.OnCalendar):
		c.Trigger = TriggerCalendar
	case boolOr(d.FromBoot):
		c.Trigger = TriggerBoot
	case c.Recurring:
		c.Trigger = TriggerUnitActive
	default:
		c.Trigger = TriggerActive
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the field constraints of a resolved configuration
func (c *TimerConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(strings.ToLower(fe.Field()), fe))
	}
	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(msgs, "; "))
}

// unitNameRule is the constraint on names that become unit file names
const unitNameRule = "required,excludes=/,excludesall=\n\r"

// ValidateName checks a timer name the way Normalize does, for operations
// that take a bare name
func ValidateName(name string) error {
	err := validate.Var(name, unitNameRule)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return fmt.Errorf("%w: %s", ErrConfig, fieldMessage("name", verrs[0]))
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required_unless":
		return fmt.Sprintf("%s is required unless already_made_service is set", field)
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "excludes":
		return fmt.Sprintf("%s %q must not contain %q", field, fe.Value(), fe.Param())
	case "excludesall":
		return fmt.Sprintf("%s %q must not contain line breaks", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Clone creates a copy of the TimerConfig
func (c *TimerConfig) Clone() *TimerConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// TimerUnit returns the timer unit name, e.g. "backup.timer"
func (c *TimerConfig) TimerUnit() string {
	return timerUnit(c.Name)
}

// ServiceUnitName returns the referenced service unit, e.g. "backup.service"
func (c *TimerConfig) ServiceUnitName() string {
	return serviceUnit(c.ServiceUnit)
}
