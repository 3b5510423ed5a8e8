package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/axondata/go-usertimer"
)

// Build information, set by main
var (
	Version = "dev"
	Commit  = "none"
)

var (
	logLevel      string
	systemctlPath string
	timeout       time.Duration

	// extraOptions are appended to the Manager options; tests use it to
	// substitute the command runner and environment
	extraOptions []usertimer.ManagerOption
)

var rootCmd = &cobra.Command{
	Use:   "usertimer",
	Short: "Manage systemd user timers from declarative descriptors",
	Long: `usertimer writes systemd user timer and service units from a YAML, TOML
or JSON descriptor and drives "systemctl --user" through their lifecycle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&systemctlPath, "systemctl", usertimer.DefaultSystemctlPath, "Path to the systemctl binary")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the operation (0 for none)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(promisesCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := usertimer.GetVersion()
		fmt.Fprintf(cmd.OutOrStdout(), "usertimer %s (commit %s, library %s)\n", Version, Commit, info.Version)
	},
}

// newLogger builds the console logger on stderr
func newLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// newManager builds the Manager from the persistent flags
func newManager() (*usertimer.Manager, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	opts := []usertimer.ManagerOption{
		usertimer.WithSystemctlPath(systemctlPath),
		usertimer.WithLogger(logger),
	}
	opts = append(opts, extraOptions...)
	return usertimer.NewManager(opts...), nil
}
