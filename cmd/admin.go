// ABOUTME: Admin commands for the bookquotes CLI
// ABOUTME: Stats, dashboard, and global management of users, books, and quotes

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

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer users, books, and quotes",
	Long: `Administer users, books, and quotes. Requires a session with the admin role.

A 401 or 403 from the backend clears the stored session.`,
}

// adminAction is the shape of every admin subcommand body
type adminAction func(ctx context.Context, w io.Writer, a *app, args []string) int

func newAdminCmd(use, short string, args cobra.PositionalArgs, action adminAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		Run: func(cmd *cobra.Command, argv []string) {
			run(func(ctx context.Context) int {
				return runAdmin(ctx, os.Stdout, currentApp(), argv, action)
			})
		},
	}
}

func init() {
	adminCmd.AddCommand(
		newAdminCmd("stats", "Show totals", cobra.NoArgs, runAdminStats),
		newAdminCmd("dashboard", "Show totals and every section at once", cobra.NoArgs, runAdminDashboard),
		newAdminCmd("users", "List users", cobra.NoArgs, runAdminUsers),
		newAdminCmd("delete-user ID", "Delete a user", cobra.ExactArgs(1), runAdminDeleteUser),
		newAdminCmd("set-role ID ROLE", "Change a user's role to user or admin", cobra.ExactArgs(2), runAdminSetRole),
		newAdminCmd("books", "List every book", cobra.NoArgs, runAdminBooks),
		newAdminCmd("delete-book ID", "Delete any book", cobra.ExactArgs(1), runAdminDeleteBook),
		newAdminCmd("quotes", "List every quote", cobra.NoArgs, runAdminQuotes),
		newAdminCmd("delete-quote ID", "Delete any quote", cobra.ExactArgs(1), runAdminDeleteQuote),
	)
	rootCmd.AddCommand(adminCmd)
}

// runAdmin refuses non-admin sessions before any request is made
func runAdmin(ctx context.Context, w io.Writer, a *app, args []string, action adminAction) int {
	if !a.session.IsAuthenticated() {
		return fail(w, client.ErrNotAuthenticated)
	}
	if !a.session.IsAdmin() {
		return fail(w, client.ErrAccessDenied)
	}
	return action(ctx, w, a, args)
}

func runAdminStats(ctx context.Context, w io.Writer, a *app, _ []string) int {
	stats, err := a.admin.Stats(ctx)
	if err != nil {
		return fail(w, err)
	}
	if a.json {
		fmt.Fprintln(w, formatJSON(stats))
		return exitOK
	}
	fmt.Fprintln(w, formatStatsHuman(*stats))
	return exitOK
}

// formatStatsHuman formats totals for human readability
func formatStatsHuman(s library.Stats) string {
	return fmt.Sprintf(`Users:  %d
Books:  %d
Quotes: %d`, s.TotalUsers, s.TotalBooks, s.TotalQuotes)
}

// dashboardView is the JSON form of a dashboard load
type dashboardView struct {
	Stats  library.Stats     `json:"stats"`
	Users  []library.User    `json:"users"`
	Books  []library.Book    `json:"books"`
	Quotes []library.Quote   `json:"quotes"`
	Errors map[string]string `json:"errors,omitempty"`
}

func runAdminDashboard(ctx context.Context, w io.Writer, a *app, _ []string) int {
	d, err := a.admin.LoadDashboard(ctx)
	if err != nil {
		return fail(w, err)
	}

	// A 401/403 in any section has already cleared the session
	if !a.session.IsAuthenticated() {
		return fail(w, d.Err())
	}

	if a.json {
		v := dashboardView{Stats: d.Stats, Users: d.Users, Books: d.Books, Quotes: d.Quotes}
		if len(d.Errors) > 0 {
			v.Errors = make(map[string]string, len(d.Errors))
			for section, err := range d.Errors {
				v.Errors[section] = err.Error()
			}
		}
		fmt.Fprintln(w, formatJSON(v))
	} else {
		fmt.Fprintln(w, formatDashboardHuman(d))
	}

	if err := d.Err(); err != nil {
		return exitCode(err)
	}
	return exitOK
}

// formatDashboardHuman summarises a dashboard load, noting failed sections
func formatDashboardHuman(d *library.Dashboard) string {
	var sb strings.Builder
	sb.WriteString(formatStatsHuman(d.Stats))
	fmt.Fprintf(&sb, "\n\nListed: %d users, %d books, %d quotes", len(d.Users), len(d.Books), len(d.Quotes))
	for _, section := range []string{library.SectionStats, library.SectionUsers, library.SectionBooks, library.SectionQuotes} {
		if err, ok := d.Errors[section]; ok {
			fmt.Fprintf(&sb, "\nUnavailable: %s (%v)", section, err)
		}
	}
	return sb.String()
}

func runAdminUsers(ctx context.Context, w io.Writer, a *app, _ []string) int {
	users, err := a.admin.Users(ctx)
	if err != nil {
		return fail(w, err)
	}
	if a.json {
		fmt.Fprintln(w, formatJSON(users))
		return exitOK
	}
	fmt.Fprintln(w, formatUsersHuman(users))
	return exitOK
}

// formatUsersHuman formats users as an aligned table
func formatUsersHuman(users []library.User) string {
	if len(users) == 0 {
		return "No users."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-5s %-24s %-6s %s\n", "ID", "USERNAME", "ROLE", "CREATED")
	for _, u := range users {
		fmt.Fprintf(&sb, "%-5d %-24s %-6s %s\n", u.ID, truncate(u.Username, 24), strings.ToLower(u.Role), orDash(u.CreatedAt))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func runAdminDeleteUser(ctx context.Context, w io.Writer, a *app, args []string) int {
	id, err := parseID("user", args[0])
	if err != nil {
		return fail(w, err)
	}
	if err := a.admin.DeleteUser(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Deleted user %d\n", id)
	return exitOK
}

func runAdminSetRole(ctx context.Context, w io.Writer, a *app, args []string) int {
	id, err := parseID("user", args[0])
	if err != nil {
		return fail(w, err)
	}
	if err := a.admin.UpdateUserRole(ctx, id, args[1]); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "User %d is now %s\n", id, strings.ToLower(args[1]))
	return exitOK
}

func runAdminBooks(ctx context.Context, w io.Writer, a *app, _ []string) int {
	books, err := a.admin.Books(ctx)
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

func runAdminDeleteBook(ctx context.Context, w io.Writer, a *app, args []string) int {
	id, err := parseID("book", args[0])
	if err != nil {
		return fail(w, err)
	}
	if err := a.admin.DeleteBook(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Deleted book %d\n", id)
	return exitOK
}

func runAdminQuotes(ctx context.Context, w io.Writer, a *app, _ []string) int {
	quotes, err := a.admin.Quotes(ctx)
	if err != nil {
		return fail(w, err)
	}
	if a.json {
		fmt.Fprintln(w, formatJSON(quotes))
		return exitOK
	}
	fmt.Fprintln(w, formatQuotesHuman(quotes, nil))
	return exitOK
}

func runAdminDeleteQuote(ctx context.Context, w io.Writer, a *app, args []string) int {
	id, err := parseID("quote", args[0])
	if err != nil {
		return fail(w, err)
	}
	if err := a.admin.DeleteQuote(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Deleted quote %d\n", id)
	return exitOK
}
