package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/logger"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/notifier"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var flagVerbose bool

// NewRootCmd creates the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "esports-calendar",
		Short: "Generate esports match calendars and feeds from Liquipedia",
		Long: `Scrapes Liquipedia team pages for upcoming and past matches and
republishes them as ICS calendars, Atom/JSON feeds, per-team JSON data
files, and a static HTML index page.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; real deployments set env vars directly.
			_ = godotenv.Load()

			level := logger.LevelInfo
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newDataCmd())
	cmd.AddCommand(newDiscoverCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

// newNotifier returns the Pushover notifier when configured, otherwise a
// dry-run notifier that only logs.
func newNotifier() notifier.Notifier {
	n, err := notifier.NewPushoverFromEnv()
	if err != nil {
		logger.Warn("pushover not configured, alerts will only be logged", nil)
		return notifier.NewDryRun()
	}
	return n
}
