package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axondata/go-usertimer"
)

var (
	enableCmd  = controlCommand("enable", "Enable <name>.timer", (*usertimer.Manager).Enable)
	disableCmd = controlCommand("disable", "Disable <name>.timer", (*usertimer.Manager).Disable)
	startCmd   = controlCommand("start", "Start <name>.timer", (*usertimer.Manager).Start)
	stopCmd    = controlCommand("stop", "Stop <name>.timer", (*usertimer.Manager).Stop)
)

// controlCommand builds a single-verb command acting on <name>.timer
func controlCommand(use, short string, op func(*usertimer.Manager, context.Context, string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			msg, err := op(m, ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
