// Package usertimer generates systemd user timer units from a declarative
// description and drives the per-user service manager through their
// lifecycle.
//
// A Descriptor is normalized into a TimerConfig, rendered into a service and
// a timer unit, written into the user's unit directory and activated:
//
//	m := usertimer.NewManager()
//
//	res, err := m.Create(ctx, usertimer.Descriptor{
//	    Name:             usertimer.String("backup"),
//	    Schedule:         usertimer.String("daily"),
//	    Executable:       usertimer.String("/usr/bin/backup.sh"),
//	    Recurring:        usertimer.Bool(true),
//	    EnableAtLogin:    usertimer.Bool(true),
//	    StartAfterCreate: usertimer.Bool(true),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res)
//
// Removal reverses the process and stops at the first failing step:
//
//	msg, err := m.Remove(ctx, usertimer.DeletionRequest{Name: "backup", RemoveService: true})
//
// # Unit directory
//
// Units live in $XDG_CONFIG_HOME/systemd/user, else $HOME/.config/systemd/user,
// else a directory under os.TempDir. The Resolver reads an explicit
// Environment snapshot, never the process environment directly.
//
// # Single-use promises
//
// Timers declared single_use are recorded once in .single_use.txt in the
// unit directory. Promised and Promises read that ledger back.
//
// # Manager access
//
// All manager interaction goes through the CommandRunner interface. The
// default Systemctl runner executes "systemctl --user ..."; tests substitute
// a recorder. Every command is attempted exactly once, with no timeout of
// its own beyond the caller's context.
package usertimer
