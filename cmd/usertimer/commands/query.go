package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List timer unit files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		out, err := m.List(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <name>",
	Short: "Show the manager's properties for <name>.timer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		out, err := m.Status(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show what the on-disk <name>.timer declares",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}

		info, err := m.Describe(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Timer:             %s\n", info.Name)
		fmt.Fprintf(w, "Path:              %s\n", info.Path)
		fmt.Fprintf(w, "Unit:              %s\n", info.Unit)
		fmt.Fprintf(w, "Trigger:           %s=%s\n", info.Trigger.Key(), info.Schedule)
		fmt.Fprintf(w, "Persistent:        %t\n", info.Persistent)
		fmt.Fprintf(w, "RemainAfterElapse: %t\n", info.RemainAfterElapse)
		fmt.Fprintf(w, "Single-use:        %t\n", info.SingleUse)
		return nil
	},
}

var promisesCmd = &cobra.Command{
	Use:   "promises",
	Short: "List timers recorded as single-use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}

		names, err := m.Promises()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
