// ABOUTME: Quotes commands for the bookquotes CLI
// ABOUTME: Lists, adds, updates, and deletes quotes, optionally per book

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
)

var (
	quoteInput  library.Quote
	quoteBookID int
)

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Manage quotes",
}

var quotesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runQuotesList(ctx, os.Stdout, currentApp(), quoteBookID)
		})
	},
}

var quotesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a quote",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runQuotesAdd(ctx, os.Stdout, currentApp(), quoteInput)
		})
	},
}

var quotesUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a quote",
	Long:  `Update a quote. Only the flags given are changed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		changed := quoteChanges(cmd)
		run(func(ctx context.Context) int {
			return runQuotesUpdate(ctx, os.Stdout, currentApp(), args[0], changed)
		})
	},
}

var quotesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a quote",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runQuotesDelete(ctx, os.Stdout, currentApp(), args[0])
		})
	},
}

func init() {
	quotesListCmd.Flags().IntVar(&quoteBookID, "book", 0, "Only quotes attached to this book ID")
	for _, c := range []*cobra.Command{quotesAddCmd, quotesUpdateCmd} {
		c.Flags().StringVar(&quoteInput.Text, "text", "", "Quote text")
		c.Flags().StringVar(&quoteInput.Author, "author", "", "Who said it")
		c.Flags().IntVar(&quoteInput.BookID, "book", 0, "Book ID to attach the quote to")
	}
	quotesCmd.AddCommand(quotesListCmd, quotesAddCmd, quotesUpdateCmd, quotesDeleteCmd)
	rootCmd.AddCommand(quotesCmd)
}

// quoteChanges applies only the flags the user set
func quoteChanges(cmd *cobra.Command) func(*library.Quote) {
	input := quoteInput
	flags := cmd.Flags()
	return func(q *library.Quote) {
		if flags.Changed("text") {
			q.Text = input.Text
		}
		if flags.Changed("author") {
			q.Author = input.Author
		}
		if flags.Changed("book") {
			q.BookID = input.BookID
		}
	}
}

// runQuotesList prints quotes and returns exit code
func runQuotesList(ctx context.Context, w io.Writer, a *app, bookID int) int {
	var (
		quotes []library.Quote
		err    error
	)
	if bookID != 0 {
		quotes, err = a.quotes.ListByBook(ctx, bookID)
	} else {
		quotes, err = a.quotes.List(ctx)
	}
	if err != nil {
		return fail(w, err)
	}
	if a.json {
		fmt.Fprintln(w, formatJSON(quotes))
		return exitOK
	}
	fmt.Fprintln(w, formatQuotesHuman(quotes, a.favourites))
	return exitOK
}

// formatQuotesHuman formats quotes one per line, starring favourites
func formatQuotesHuman(quotes []library.Quote, favourites *library.Favourites) string {
	if len(quotes) == 0 {
		return "No quotes yet."
	}
	var sb strings.Builder
	for _, q := range quotes {
		star := " "
		if favourites != nil && favourites.Contains(q.ID) {
			star = "*"
		}
		fmt.Fprintf(&sb, "%s %-5d “%s”", star, q.ID, q.Text)
		if q.Author != "" {
			fmt.Fprintf(&sb, " — %s", q.Author)
		}
		if q.BookID != 0 {
			fmt.Fprintf(&sb, " [book %d]", q.BookID)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// runQuotesAdd creates a quote and returns exit code
func runQuotesAdd(ctx context.Context, w io.Writer, a *app, quote library.Quote) int {
	created, err := a.quotes.Create(ctx, quote)
	if err != nil {
		return fail(w, err)
	}
	return printQuote(w, a, "Added", created)
}

// runQuotesUpdate changes a quote and returns exit code
func runQuotesUpdate(ctx context.Context, w io.Writer, a *app, arg string, change func(*library.Quote)) int {
	id, err := parseID("quote", arg)
	if err != nil {
		return fail(w, err)
	}
	quote, err := findQuote(ctx, a, id)
	if err != nil {
		return fail(w, err)
	}
	change(quote)

	updated, err := a.quotes.Update(ctx, id, *quote)
	if err != nil {
		return fail(w, err)
	}
	return printQuote(w, a, "Updated", updated)
}

// runQuotesDelete removes a quote and returns exit code
func runQuotesDelete(ctx context.Context, w io.Writer, a *app, arg string) int {
	id, err := parseID("quote", arg)
	if err != nil {
		return fail(w, err)
	}
	if err := a.quotes.Delete(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Deleted quote %d\n", id)
	return exitOK
}

// findQuote looks a quote up in the user's list
func findQuote(ctx context.Context, a *app, id int) (*library.Quote, error) {
	quotes, err := a.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		if quotes[i].ID == id {
			return &quotes[i], nil
		}
	}
	return nil, fmt.Errorf("quote %d: %w", id, client.ErrNotFound)
}

func printQuote(w io.Writer, a *app, verb string, q *library.Quote) int {
	if a.json {
		fmt.Fprintln(w, formatJSON(q))
		return exitOK
	}
	fmt.Fprintf(w, "%s quote %d: “%s”\n", verb, q.ID, q.Text)
	return exitOK
}
