package usertimer

// Descriptor is the declarative description of a timer and, optionally, the
// service it runs. Every field is optional; nil means "use the default".
// Normalize turns a Descriptor into a fully resolved TimerConfig.
type Descriptor struct {
	// Name is the timer unit name without suffix (default DefaultTimerName)
	Name *string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	// Description is folded into the service's [Unit] block
	Description *string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	// Schedule is the trigger expression (default DefaultSchedule)
	Schedule *string `yaml:"schedule,omitempty" toml:"schedule,omitempty" json:"schedule,omitempty"`
	// Executable is the shell command line run by the generated service
	Executable *string `yaml:"executable,omitempty" toml:"executable,omitempty" json:"executable,omitempty"`
	// Service names an associated service unit when it differs from Name
	Service *string `yaml:"service,omitempty" toml:"service,omitempty" json:"service,omitempty"`

	Recurring          *bool `yaml:"recurring,omitempty" toml:"recurring,omitempty" json:"recurring,omitempty"`
	OnCalendar         *bool `yaml:"on_calendar,omitempty" toml:"on_calendar,omitempty" json:"on_calendar,omitempty"`
	FromBoot           *bool `yaml:"from_boot,omitempty" toml:"from_boot,omitempty" json:"from_boot,omitempty"`
	ExecIfMissed       *bool `yaml:"exec_if_missed,omitempty" toml:"exec_if_missed,omitempty" json:"exec_if_missed,omitempty"`
	SingleUse          *bool `yaml:"single_use,omitempty" toml:"single_use,omitempty" json:"single_use,omitempty"`
	NormalService      *bool `yaml:"normal_service,omitempty" toml:"normal_service,omitempty" json:"normal_service,omitempty"`
	AlreadyMadeService *bool `yaml:"already_made_service,omitempty" toml:"already_made_service,omitempty" json:"already_made_service,omitempty"`
	EnableAtLogin      *bool `yaml:"enable_at_login,omitempty" toml:"enable_at_login,omitempty" json:"enable_at_login,omitempty"`
	StartAfterCreate   *bool `yaml:"start_after_create,omitempty" toml:"start_after_create,omitempty" json:"start_after_create,omitempty"`
}

// DeletionRequest names a timer to remove
type DeletionRequest struct {
	// Name is the timer unit name without suffix
	Name string `yaml:"name" toml:"name" json:"name"`
	// RemoveService also stops, disables and deletes <Name>.service
	RemoveService bool `yaml:"remove_service" toml:"remove_service" json:"remove_service"`
}

// String returns a pointer to s, for building descriptors in code
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for building descriptors in code
func Bool(b bool) *bool {
	return &b
}

func stringOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func boolOr(p *bool) bool {
	return p != nil && *p
}
