// ABOUTME: Settings commands for the bookquotes CLI
// ABOUTME: Shows or changes the stored language and theme preferences

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runSettingsShow(os.Stdout, currentApp())
		})
	},
}

var settingsLanguageCmd = &cobra.Command{
	Use:   "language [" + strings.Join(library.Languages, "|") + "]",
	Short: "Show or set the interface language",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runSettingsLanguage(os.Stdout, currentApp(), args)
		})
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [" + strings.Join(library.Themes, "|") + "]",
	Short: "Show or set the colour theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runSettingsTheme(os.Stdout, currentApp(), args)
		})
	},
}

func init() {
	settingsCmd.AddCommand(settingsLanguageCmd, settingsThemeCmd)
	rootCmd.AddCommand(settingsCmd)
}

type settingsView struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// runSettingsShow prints all preferences and returns exit code
func runSettingsShow(w io.Writer, a *app) int {
	v := settingsView{Language: a.preferences.Language(), Theme: a.preferences.Theme()}
	if a.json {
		fmt.Fprintln(w, formatJSON(v))
		return exitOK
	}
	fmt.Fprintf(w, "Language: %s\nTheme:    %s\n", v.Language, v.Theme)
	return exitOK
}

// runSettingsLanguage shows or sets the language and returns exit code
func runSettingsLanguage(w io.Writer, a *app, args []string) int {
	if len(args) == 1 {
		if err := a.preferences.SetLanguage(args[0]); err != nil {
			return fail(w, err)
		}
	}
	fmt.Fprintln(w, a.preferences.Language())
	return exitOK
}

// runSettingsTheme shows or sets the theme and returns exit code
func runSettingsTheme(w io.Writer, a *app, args []string) int {
	if len(args) == 1 {
		if err := a.preferences.SetTheme(args[0]); err != nil {
			return fail(w, err)
		}
	}
	fmt.Fprintln(w, a.preferences.Theme())
	return exitOK
}
