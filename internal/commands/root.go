package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
)

// options holds the persistent root flags shared by every subcommand.
type options struct {
	home    string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal budget and to-do tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose, os.Getenv("LOG_FORMAT"))
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.home, "home", defaultHome(), "data directory (env TALLY_HOME)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBudgetCommand(opts))
	rootCmd.AddCommand(newTodoCommand(opts))

	return rootCmd
}

func defaultHome() string {
	if home := os.Getenv("TALLY_HOME"); home != "" {
		return home
	}
	return "."
}
