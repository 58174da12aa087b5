// ABOUTME: Session commands: login, register, logout, whoami, validate
// ABOUTME: Prompts for missing credentials and reports the stored session

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/session"
)

var (
	authUsername string
	authPassword string
	loginAdmin   bool
	registerRole string
	whoamiRemote bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Log in with a username and password. Missing values are prompted for.

With --admin the login is refused unless the account has the admin role,
and nothing is stored.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		creds := session.Credentials{Username: authUsername, Password: authPassword}
		if err := promptCredentials(&creds.Username, &creds.Password); err != nil {
			os.Exit(fail(os.Stderr, err))
		}
		run(func(ctx context.Context) int {
			return runLogin(ctx, os.Stdout, currentApp(), creds, loginAdmin)
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		req := session.RegisterRequest{Username: authUsername, Password: authPassword, Role: registerRole}
		if err := promptCredentials(&req.Username, &req.Password); err != nil {
			os.Exit(fail(os.Stderr, err))
		}
		run(func(ctx context.Context) int {
			return runRegister(ctx, os.Stdout, currentApp(), req)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Long:  `Clear the stored session. Language, theme, and favourites are kept.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runLogout(os.Stdout, currentApp())
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runWhoami(ctx, os.Stdout, currentApp(), whoamiRemote)
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the stored token with the backend",
	Long: `Check the stored token with the backend. An expired or rejected token
clears the session and exits 1.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(ctx context.Context) int {
			return runValidate(ctx, os.Stdout, currentApp())
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&authUsername, "username", "u", "", "Account username")
		c.Flags().StringVarP(&authPassword, "password", "p", "", "Account password (prompted when omitted)")
	}
	loginCmd.Flags().BoolVar(&loginAdmin, "admin", false, "Require the admin role")
	registerCmd.Flags().StringVar(&registerRole, "role", "", "Requested role (default: User)")
	whoamiCmd.Flags().BoolVar(&whoamiRemote, "remote", false, "Ask the backend who the token belongs to")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd, validateCmd)
}

// promptCredentials asks for whichever of username and password is empty
func promptCredentials(username, password *string) error {
	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Validate(required("username")).
			Value(username))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(password))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// sessionView is the printable form of the stored session. The token is
// never printed.
type sessionView struct {
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	UserID    int        `json:"userId,omitempty"`
	Admin     bool       `json:"admin"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func currentSession(m *session.Manager) sessionView {
	v := sessionView{
		Username: m.CurrentUsername(),
		Role:     m.CurrentRole(),
		Admin:    m.IsAdmin(),
	}
	if id, ok := m.CurrentUserID(); ok {
		v.UserID = id
	}
	if exp, ok := m.TokenExpiry(); ok {
		v.ExpiresAt = &exp
	}
	return v
}

// runLogin authenticates and returns exit code
func runLogin(ctx context.Context, w io.Writer, a *app, creds session.Credentials, admin bool) int {
	login := a.session.Login
	if admin {
		login = a.session.AdminLogin
	}
	if _, err := login(ctx, creds); err != nil {
		return fail(w, err)
	}
	return printSession(w, a, "Logged in")
}

// runRegister creates an account and returns exit code
func runRegister(ctx context.Context, w io.Writer, a *app, req session.RegisterRequest) int {
	resp, err := a.session.Register(ctx, req)
	if err != nil {
		return fail(w, err)
	}
	if resp.Message != "" && !a.json {
		fmt.Fprintln(w, resp.Message)
	}
	return printSession(w, a, "Registered")
}

func printSession(w io.Writer, a *app, verb string) int {
	v := currentSession(a.session)
	if a.json {
		fmt.Fprintln(w, formatJSON(v))
		return exitOK
	}
	fmt.Fprintf(w, "%s as %s (%s)\n", verb, v.Username, v.Role)
	return exitOK
}

// runLogout clears the session and returns exit code
func runLogout(w io.Writer, a *app) int {
	a.session.Logout()
	fmt.Fprintln(w, "Logged out")
	return exitOK
}

// runWhoami prints the stored session and returns exit code
func runWhoami(ctx context.Context, w io.Writer, a *app, remote bool) int {
	if !a.session.IsAuthenticated() {
		return fail(w, client.ErrNotAuthenticated)
	}

	v := currentSession(a.session)
	if remote {
		info, err := a.session.UserInfo(ctx)
		if err != nil {
			return fail(w, err)
		}
		v.Username = info.Username
		v.Role = info.Role
	}

	if a.json {
		fmt.Fprintln(w, formatJSON(v))
		return exitOK
	}
	fmt.Fprintln(w, formatSessionHuman(v))
	return exitOK
}

// formatSessionHuman formats the session for human readability
func formatSessionHuman(v sessionView) string {
	userID := "-"
	if v.UserID > 0 {
		userID = fmt.Sprint(v.UserID)
	}
	expires := "-"
	if v.ExpiresAt != nil {
		expires = v.ExpiresAt.Local().Format(time.RFC1123)
	}
	return fmt.Sprintf(`Username: %s
Role:     %s
User ID:  %s
Expires:  %s`, orDash(v.Username), orDash(v.Role), userID, expires)
}

// runValidate checks the token with the backend and returns exit code
func runValidate(ctx context.Context, w io.Writer, a *app) int {
	if !a.session.IsAuthenticated() {
		return fail(w, client.ErrNotAuthenticated)
	}
	if !a.session.ValidateToken(ctx) {
		if err := ctx.Err(); err != nil {
			return fail(w, err)
		}
		fmt.Fprintln(w, "Token rejected; session cleared")
		return exitAuth
	}
	fmt.Fprintln(w, "Token valid")
	return exitOK
}
