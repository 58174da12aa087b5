// ABOUTME: Tests for the admin dashboard component
// ABOUTME: Validates counts, user listing, and partial-failure rendering

package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
)

func TestDashboardView(t *testing.T) {
	data := &library.Dashboard{
		Stats: library.Stats{TotalUsers: 3, TotalBooks: 12, TotalQuotes: 40},
		Users: []library.User{
			{ID: 1, Username: "root", Role: "Admin"},
			{ID: 2, Username: "alice", Role: "User"},
		},
		Errors: map[string]error{},
	}

	view := New(data, 120, 30).View()

	for _, expected := range []string{"Admin Dashboard", "Users", "Books", "Quotes", "12", "40", "root", "alice", "admin"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q", expected)
		}
	}
}

func TestDashboardViewPartialFailure(t *testing.T) {
	data := &library.Dashboard{
		Stats: library.Stats{},
		Errors: map[string]error{
			library.SectionStats: errors.New("stats unavailable"),
			library.SectionUsers: errors.New("users unavailable"),
		},
	}

	view := New(data, 120, 30).View()

	if !strings.Contains(view, "n/a") {
		t.Error("expected failed stats to render as n/a")
	}
	if !strings.Contains(view, "users unavailable") {
		t.Error("expected users error to be shown")
	}
	if strings.Index(view, "stats unavailable") > strings.Index(view, "users unavailable") {
		t.Error("expected section errors in fixed order")
	}
}

func TestDashboardViewLoading(t *testing.T) {
	if !strings.Contains(New(nil, 80, 20).View(), "Loading") {
		t.Error("expected loading placeholder")
	}
}

func TestDashboardTruncatesUsers(t *testing.T) {
	data := &library.Dashboard{Errors: map[string]error{}}
	for i := 0; i < 8; i++ {
		data.Users = append(data.Users, library.User{ID: i + 1, Username: "user", Role: "user"})
	}

	if !strings.Contains(New(data, 120, 30).View(), "and 3 more") {
		t.Error("expected truncation note")
	}
}
