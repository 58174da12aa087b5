// ABOUTME: Output and exit code helpers shared by commands
// ABOUTME: Maps errors onto exit codes and renders JSON output

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

// Exit codes
const (
	exitOK     = 0
	exitAuth   = 1
	exitFailed = 2
)

// exitCode classifies err: session and access problems are 1, the rest 2
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, client.ErrNotAuthenticated),
		errors.Is(err, client.ErrAccessDenied),
		client.IsAuthFailure(err):
		return exitAuth
	}
	return exitFailed
}

// fail prints err and returns its exit code
func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	if errors.Is(err, client.ErrNotAuthenticated) {
		fmt.Fprintln(w, `Run "bookquotes login" first.`)
	}
	return exitCode(err)
}

// formatJSON renders v as indented JSON
func formatJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data)
}

// parseID parses a positive numeric ID argument
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, client.Validationf("invalid %s id %q", kind, arg)
	}
	return id, nil
}

// orDash shows "-" for empty values
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
