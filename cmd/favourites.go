// ABOUTME: Favourites commands for the bookquotes CLI
// ABOUTME: Keeps a local list of starred quotes that is never sent to the backend

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var favouritesCmd = &cobra.Command{
	Use:     "favourites",
	Aliases: []string{"favorites", "fav"},
	Short:   "Manage favourite quotes",
}

var favouritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favourite quotes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runFavouritesList(os.Stdout, currentApp())
		})
	},
}

var favouritesAddCmd = &cobra.Command{
	Use:   "add QUOTE_ID",
	Short: "Star a quote",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runFavouritesAdd(ctx, os.Stdout, currentApp(), args[0])
		})
	},
}

var favouritesRemoveCmd = &cobra.Command{
	Use:   "remove QUOTE_ID",
	Short: "Unstar a quote",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runFavouritesRemove(os.Stdout, currentApp(), args[0])
		})
	},
}

func init() {
	favouritesCmd.AddCommand(favouritesListCmd, favouritesAddCmd, favouritesRemoveCmd)
	rootCmd.AddCommand(favouritesCmd)
}

// runFavouritesList prints the stored favourites and returns exit code
func runFavouritesList(w io.Writer, a *app) int {
	quotes := a.favourites.List()
	if a.json {
		fmt.Fprintln(w, formatJSON(quotes))
		return exitOK
	}
	if len(quotes) == 0 {
		fmt.Fprintln(w, "No favourites yet.")
		return exitOK
	}
	fmt.Fprintln(w, formatQuotesHuman(quotes, a.favourites))
	return exitOK
}

// runFavouritesAdd stars a quote fetched from the backend and returns exit code
func runFavouritesAdd(ctx context.Context, w io.Writer, a *app, arg string) int {
	id, err := parseID("quote", arg)
	if err != nil {
		return fail(w, err)
	}
	quote, err := findQuote(ctx, a, id)
	if err != nil {
		return fail(w, err)
	}
	added, err := a.favourites.Add(*quote)
	if err != nil {
		return fail(w, err)
	}
	if !added {
		fmt.Fprintf(w, "Quote %d is already a favourite\n", id)
		return exitOK
	}
	fmt.Fprintf(w, "Starred quote %d\n", id)
	return exitOK
}

// runFavouritesRemove unstars a quote and returns exit code
func runFavouritesRemove(w io.Writer, a *app, arg string) int {
	id, err := parseID("quote", arg)
	if err != nil {
		return fail(w, err)
	}
	removed, err := a.favourites.Remove(id)
	if err != nil {
		return fail(w, err)
	}
	if !removed {
		fmt.Fprintf(w, "Quote %d was not a favourite\n", id)
		return exitOK
	}
	fmt.Fprintf(w, "Unstarred quote %d\n", id)
	return exitOK
}
