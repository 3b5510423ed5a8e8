package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axondata/go-usertimer"
)

var removeService bool

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Stop, disable and delete a timer",
	Long: `Stop and disable <name>.timer, delete its unit file and reload the user
manager. With --service the same is done for <name>.service. The first
failing step aborts the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeService, "service", false, "Also remove <name>.service")
}

func runRemove(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	msg, err := m.Remove(ctx, usertimer.DeletionRequest{Name: args[0], RemoveService: removeService})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
