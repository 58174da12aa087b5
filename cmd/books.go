// ABOUTME: Books commands for the bookquotes CLI
// ABOUTME: Lists, adds, updates, and deletes books in the user's collection

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

var bookInput library.Book

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage your books",
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your books",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runBooksList(ctx, os.Stdout, currentApp())
		})
	},
}

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runBooksAdd(ctx, os.Stdout, currentApp(), bookInput)
		})
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a book",
	Long:  `Update a book. Only the flags given are changed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		changed := bookChanges(cmd)
		run(func(ctx context.Context) int {
			return runBooksUpdate(ctx, os.Stdout, currentApp(), args[0], changed)
		})
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runBooksDelete(ctx, os.Stdout, currentApp(), args[0])
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{booksAddCmd, booksUpdateCmd} {
		c.Flags().StringVar(&bookInput.Title, "title", "", "Book title")
		c.Flags().StringVar(&bookInput.Author, "author", "", "Book author")
		c.Flags().StringVar(&bookInput.PublicationDate, "published", "", "Publication date")
		c.Flags().StringVar(&bookInput.Description, "description", "", "Short description")
	}
	booksCmd.AddCommand(booksListCmd, booksAddCmd, booksUpdateCmd, booksDeleteCmd)
	rootCmd.AddCommand(booksCmd)
}

// bookChanges applies only the flags the user set
func bookChanges(cmd *cobra.Command) func(*library.Book) {
	input := bookInput
	flags := cmd.Flags()
	return func(b *library.Book) {
		if flags.Changed("title") {
			b.Title = input.Title
		}
		if flags.Changed("author") {
			b.Author = input.Author
		}
		if flags.Changed("published") {
			b.PublicationDate = input.PublicationDate
		}
		if flags.Changed("description") {
			b.Description = input.Description
		}
	}
}

// runBooksList prints the user's books and returns exit code
func runBooksList(ctx context.Context, w io.Writer, a *app) int {
	books, err := a.books.List(ctx)
	if err != nil {
		return fail(w, err)
	}
	if a.json {
		fmt.Fprintln(w, formatJSON(books))
		return exitOK
	}
	fmt.Fprintln(w, formatBooksHuman(books))
	return exitOK
}

// formatBooksHuman formats books as an aligned table
func formatBooksHuman(books []library.Book) string {
	if len(books) == 0 {
		return "No books yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-5s %-32s %-24s %s\n", "ID", "TITLE", "AUTHOR", "PUBLISHED")
	for _, b := range books {
		fmt.Fprintf(&sb, "%-5d %-32s %-24s %s\n", b.ID, truncate(b.Title, 32), truncate(b.Author, 24), orDash(b.PublicationDate))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// runBooksAdd creates a book and returns exit code
func runBooksAdd(ctx context.Context, w io.Writer, a *app, book library.Book) int {
	created, err := a.books.Create(ctx, book)
	if err != nil {
		return fail(w, err)
	}
	return printBook(w, a, "Added", created)
}

// runBooksUpdate fetches, changes, and saves a book and returns exit code
func runBooksUpdate(ctx context.Context, w io.Writer, a *app, arg string, change func(*library.Book)) int {
	id, err := parseID("book", arg)
	if err != nil {
		return fail(w, err)
	}
	book, err := a.books.Get(ctx, id)
	if err != nil {
		return fail(w, err)
	}
	change(book)

	updated, err := a.books.Update(ctx, id, *book)
	if err != nil {
		return fail(w, err)
	}
	return printBook(w, a, "Updated", updated)
}

// runBooksDelete removes a book and returns exit code
func runBooksDelete(ctx context.Context, w io.Writer, a *app, arg string) int {
	id, err := parseID("book", arg)
	if err != nil {
		return fail(w, err)
	}
	if err := a.books.Delete(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Deleted book %d\n", id)
	return exitOK
}

func printBook(w io.Writer, a *app, verb string, b *library.Book) int {
	if a.json {
		fmt.Fprintln(w, formatJSON(b))
		return exitOK
	}
	fmt.Fprintf(w, "%s book %d: %s by %s\n", verb, b.ID, b.Title, b.Author)
	return exitOK
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
