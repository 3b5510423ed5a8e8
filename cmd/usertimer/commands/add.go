package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axondata/go-usertimer"
)

var (
	addFile string
	addName string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a timer from a descriptor file",
	Long: `Create a timer (and its service unless already_made_service is set) from a
descriptor file, reload the user manager and enable/start it as requested.

Examples:
  # Create from YAML
  usertimer add -f backup.yaml

  # Reuse a descriptor under another name
  usertimer add -f backup.toml --name backup-home`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Descriptor file (.yaml, .yml, .toml or .json)")
	addCmd.Flags().StringVar(&addName, "name", "", "Override the descriptor's name")
	_ = addCmd.MarkFlagRequired("file")
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := usertimer.LoadDescriptor(addFile)
	if err != nil {
		return err
	}
	if addName != "" {
		d.Name = usertimer.String(addName)
	}

	m, err := newManager()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	res, err := m.Create(ctx, d)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), res.String())
	if adv := res.Advisory(); adv != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", adv)
	}
	return nil
}
