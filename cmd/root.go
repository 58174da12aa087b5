// ABOUTME: Root command for the bookquotes CLI
// ABOUTME: Handles global flags, configuration, and logging setup

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/config"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/logger"
)

var (
	// cfg is resolved before any subcommand runs
	cfg *config.Config

	ephemeral bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "bookquotes",
	Short: "Terminal client for the BookQuotes library API",
	Long: `bookquotes manages your books and quotes from the terminal.

Log in once and the session is kept in your config directory until you log
out or the backend rejects it. Run "bookquotes tui" for the interactive view.

Environment Variables:
  BOOKQUOTES_API_URL     Backend API URL (default: http://localhost:5000/api)
  BOOKQUOTES_CONFIG_DIR  Session and log directory (default: $XDG_CONFIG_HOME/bookquotes)
  BOOKQUOTES_TIMEOUT     Per-request timeout (default: 30s)
  BOOKQUOTES_LOG_LEVEL   debug, info, warn, error (default: info)
  BOOKQUOTES_LOG_FORMAT  text or json (default: text)

Exit codes:
  0 - Success
  1 - Not logged in, session rejected, or access denied
  2 - Any other error`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep session state in memory for this run only")
}

// loadConfig resolves configuration and sets up logging for plain commands.
// The TUI owns the terminal and configures its own log file.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	cfg = c

	if cmd.Name() != "tui" {
		logger.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	}
	return nil
}

// run executes fn with a context cancelled on SIGINT/SIGTERM and exits with
// its code when non-zero
func run(fn func(ctx context.Context) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	exitCode := fn(ctx)
	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
