// ABOUTME: Integration tests for the TUI app
// ABOUTME: Tests routing, session transitions, and forced logout handling

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/router"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/session"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

// newTestApp builds an App over a memory store seeded with state. No
// commands are executed, so the API URL is never contacted.
func newTestApp(t *testing.T, state map[string]string) (*App, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	if len(state) > 0 {
		if err := st.SetAll(state); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	c := client.NewAuthorized("http://127.0.0.1:1", st)
	mgr := session.New(c, st)
	svc := Services{
		Session:     mgr,
		Books:       library.NewBookService(c),
		Quotes:      library.NewQuoteService(c),
		Admin:       library.NewAdminService(mgr),
		Favourites:  library.NewFavourites(st),
		Preferences: library.NewPreferences(st),
	}

	app := New(svc, time.Second)
	app.width = 100
	app.height = 40
	return app, st
}

func userState() map[string]string {
	return map[string]string{
		store.KeyToken:    "t1",
		store.KeyUsername: "bob",
		store.KeyRole:     "user",
		store.KeyUserID:   "3",
	}
}

func adminState() map[string]string {
	return map[string]string{
		store.KeyToken:    "t2",
		store.KeyUsername: "alice",
		store.KeyRole:     "admin",
		store.KeyUserID:   "7",
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()
	model, _ := app.Update(msg)
	result, ok := model.(*App)
	if !ok {
		t.Fatalf("expected *App, got %T", model)
	}
	return result
}

func TestAppInitialScreen(t *testing.T) {
	tests := []struct {
		name  string
		state map[string]string
		want  string
	}{
		{"anonymous starts at login", nil, router.PathLogin},
		{"user starts at books", userState(), router.PathBooks},
		{"admin may open books", adminState(), router.PathBooks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, tt.state)
			if got := app.Current(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAppLoginScreenHasForm(t *testing.T) {
	app, _ := newTestApp(t, nil)
	if app.form == nil {
		t.Fatal("expected login form")
	}
	if app.list != nil {
		t.Error("expected no list on login screen")
	}
}

func TestAppLoginShortcuts(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = update(t, app, tea.KeyMsg{Type: tea.KeyCtrlR})
	if app.Current() != router.PathRegister {
		t.Fatalf("expected register, got %s", app.Current())
	}

	app = update(t, app, tea.KeyMsg{Type: tea.KeyCtrlA})
	if app.Current() != router.PathRegister {
		t.Errorf("admin shortcut should only work from login, got %s", app.Current())
	}
}

func TestAppAuthDoneLandsByRole(t *testing.T) {
	tests := []struct {
		name  string
		state map[string]string
		want  string
	}{
		{"user", userState(), router.PathBooks},
		{"admin", adminState(), router.PathAdminDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, st := newTestApp(t, nil)

			// The manager persists the session before the message arrives
			if err := st.SetAll(tt.state); err != nil {
				t.Fatalf("SetAll: %v", err)
			}
			app = update(t, app, authDoneMsg{resp: &session.AuthResponse{Token: "t"}})

			if app.Current() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, app.Current())
			}
			if !strings.Contains(app.status, "Welcome") {
				t.Errorf("expected welcome status, got %q", app.status)
			}
		})
	}
}

func TestAppAuthFailureStaysOnLogin(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = update(t, app, authDoneMsg{err: client.ErrAccessDenied})

	if app.Current() != router.PathLogin {
		t.Errorf("expected login, got %s", app.Current())
	}
	if app.err == nil {
		t.Error("expected error to be shown")
	}
	if app.form == nil {
		t.Error("expected a fresh login form")
	}
}

func TestAppLogoutKey(t *testing.T) {
	app, st := newTestApp(t, userState())
	st.Set(store.KeyTheme, library.ThemeDark)

	app = update(t, app, key("L"))

	if app.Current() != router.PathLogin {
		t.Errorf("expected login after logout, got %s", app.Current())
	}
	if _, ok := st.Get(store.KeyToken); ok {
		t.Error("expected token removed")
	}
	if theme, _ := st.Get(store.KeyTheme); theme != library.ThemeDark {
		t.Errorf("expected theme preference kept, got %q", theme)
	}
}

func TestAppNonAdminCannotOpenDashboard(t *testing.T) {
	app, _ := newTestApp(t, userState())

	app = update(t, app, key("4"))

	if app.Current() != router.PathBooks {
		t.Errorf("expected redirect to books, got %s", app.Current())
	}
	if app.status != "Admins only" {
		t.Errorf("expected admins only status, got %q", app.status)
	}
}

func TestAppAdminOpensDashboard(t *testing.T) {
	app, _ := newTestApp(t, adminState())

	app = update(t, app, key("4"))

	if app.Current() != router.PathAdminDashboard {
		t.Fatalf("expected dashboard, got %s", app.Current())
	}
	if app.dashboard == nil {
		t.Error("expected dashboard model")
	}
	if !app.loading {
		t.Error("expected dashboard to start loading")
	}
}

func TestAppDashboardForcedLogout(t *testing.T) {
	app, st := newTestApp(t, adminState())
	app = update(t, app, key("4"))

	// A 401 inside the fan-out logs the session out before the load settles
	st.Remove(store.SessionKeys...)
	data := &library.Dashboard{Errors: map[string]error{library.SectionUsers: client.ErrUnauthorized}}
	app = update(t, app, dashboardLoadedMsg{data: data})

	if app.Current() != router.PathLogin {
		t.Errorf("expected login after forced logout, got %s", app.Current())
	}
}

func TestAppDashboardPartialData(t *testing.T) {
	app, _ := newTestApp(t, adminState())
	app = update(t, app, key("4"))

	data := &library.Dashboard{
		Stats:  library.Stats{TotalUsers: 2, TotalBooks: 5, TotalQuotes: 9},
		Users:  []library.User{{ID: 1, Username: "carol", Role: "user"}},
		Errors: map[string]error{library.SectionQuotes: client.ErrServer},
	}
	app = update(t, app, dashboardLoadedMsg{data: data})

	if app.Current() != router.PathAdminDashboard {
		t.Fatalf("expected to stay on dashboard, got %s", app.Current())
	}
	view := app.View()
	if !strings.Contains(view, "carol") {
		t.Error("expected user list in dashboard view")
	}
}

func TestAppUnauthorizedLoadLogsOut(t *testing.T) {
	app, st := newTestApp(t, userState())

	err := &client.APIError{StatusCode: 401, Message: "expired"}
	app = update(t, app, booksLoadedMsg{err: err})

	if app.Current() != router.PathLogin {
		t.Errorf("expected login, got %s", app.Current())
	}
	if _, ok := st.Get(store.KeyToken); ok {
		t.Error("expected session cleared")
	}
}

func TestAppBooksLoadedRenders(t *testing.T) {
	app, _ := newTestApp(t, userState())

	books := []library.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert"},
		{ID: 2, Title: "Emma", Author: "Jane Austen"},
	}
	app = update(t, app, booksLoadedMsg{books: books})

	if app.loading {
		t.Error("expected loading cleared")
	}
	if app.list.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", app.list.Len())
	}
	view := app.View()
	for _, want := range []string{"Dune", "Jane Austen", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestAppServerErrorShown(t *testing.T) {
	app, _ := newTestApp(t, userState())

	app = update(t, app, booksLoadedMsg{err: &client.APIError{StatusCode: 500, Message: "db down"}})

	if app.Current() != router.PathBooks {
		t.Errorf("expected to stay on books, got %s", app.Current())
	}
	if !strings.Contains(app.View(), "Error: db down") {
		t.Error("expected backend message in view")
	}
}

func TestAppEditSelectedBook(t *testing.T) {
	app, _ := newTestApp(t, userState())
	app = update(t, app, booksLoadedMsg{books: []library.Book{{ID: 4, Title: "Dune", Author: "Herbert"}}})

	app = update(t, app, key("e"))

	if app.Current() != router.PathBookEdit {
		t.Fatalf("expected edit screen, got %s", app.Current())
	}
	if app.editing == nil || app.editing.ID != 4 {
		t.Errorf("expected book 4 being edited, got %+v", app.editing)
	}
}

func TestAppToggleFavourite(t *testing.T) {
	app, _ := newTestApp(t, userState())
	app = update(t, app, key("2"))
	app = update(t, app, quotesLoadedMsg{quotes: []library.Quote{{ID: 9, Text: "Fear is the mind-killer."}}})

	app = update(t, app, key("s"))
	if !app.svc.Favourites.Contains(9) {
		t.Fatal("expected quote starred")
	}

	app = update(t, app, key("s"))
	if app.svc.Favourites.Contains(9) {
		t.Error("expected quote unstarred")
	}
}

func TestAppToggleTheme(t *testing.T) {
	app, st := newTestApp(t, userState())

	app = update(t, app, key("t"))

	if theme, _ := st.Get(store.KeyTheme); theme != library.ThemeDark {
		t.Errorf("expected dark theme persisted, got %q", theme)
	}
	update(t, app, key("t"))
}

func TestAppQuitKey(t *testing.T) {
	app, _ := newTestApp(t, userState())

	_, cmd := app.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
