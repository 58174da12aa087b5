// ABOUTME: TUI command for the bookquotes CLI
// ABOUTME: Starts the interactive interface with logs redirected to a file

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/logger"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive interface",
	Long: `Start the interactive interface. Logs are written to debug.log in the
config directory because the interface owns the terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := logger.OpenFile(cfg.ConfigDir)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger.Init(f, cfg.LogLevel, cfg.LogFormat)

		a := currentApp()
		return tui.Run(a.services(), cfg.Timeout)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
