package usertimer

import (
	"fmt"
	"strings"
)

// Units holds the generated unit file contents
type Units struct {
	// Service is the service definition, empty when AlreadyMadeService
	Service string
	// Timer is the timer definition
	Timer string
}

// HasService reports whether a service definition was generated
func (u Units) HasService() bool {
	return u.Service != ""
}

// Generate renders both unit files for c. It performs no I/O.
func Generate(c *TimerConfig) Units {
	u := Units{Timer: GenerateTimer(c)}
	if !c.AlreadyMadeService {
		u.Service = GenerateService(c)
	}
	return u
}

// GenerateService renders the service unit that runs c.Executable
func GenerateService(c *TimerConfig) string {
	var unit strings.Builder

	unit.WriteString("[Unit]\n")
	if c.Description != "" {
		unit.WriteString(fmt.Sprintf("Description=%s\n", c.Description))
	}
	unit.WriteString("\n")

	unit.WriteString("[Service]\n")
	if c.NormalService {
		unit.WriteString("Type=simple\n")
	} else {
		unit.WriteString("Type=oneshot\n")
	}
	unit.WriteString(fmt.Sprintf("ExecStart=/bin/sh -c %s\n", shellSingleQuote(c.Executable)))
	if c.NormalService {
		unit.WriteString("Restart=on-failure\n")
	} else {
		unit.WriteString("Restart=no\n")
	}

	unit.WriteString("\n")
	unit.WriteString("[Install]\n")
	unit.WriteString(fmt.Sprintf("WantedBy=%s\n", ServiceWantedBy))

	return unit.String()
}

// GenerateTimer renders the timer unit. Its Unit= line always names the
// resolved service, generated or pre-existing.
func GenerateTimer(c *TimerConfig) string {
	var unit strings.Builder

	unit.WriteString("[Unit]\n")
	unit.WriteString(fmt.Sprintf("Description=Timer for %s\n", c.Name))
	unit.WriteString("\n")

	unit.WriteString("[Timer]\n")
	unit.WriteString(fmt.Sprintf("Unit=%s\n", c.ServiceUnitName()))
	unit.WriteString(fmt.Sprintf("%s=%s\n", c.Trigger.Key(), c.Schedule))
	unit.WriteString(fmt.Sprintf("Persistent=%s\n", yesNo(c.ExecIfMissed)))
	unit.WriteString(fmt.Sprintf("RemainAfterElapse=%s\n", yesNo(c.Recurring)))

	unit.WriteString("\n")
	unit.WriteString("[Install]\n")
	unit.WriteString(fmt.Sprintf("WantedBy=%s\n", TimerWantedBy))

	return unit.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
