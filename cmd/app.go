// ABOUTME: Wiring shared by every command
// ABOUTME: Builds the store, authorized client, session manager, and services from config

package cmd

import (
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/config"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/session"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui"
)

// app holds the collaborators a command needs
type app struct {
	json        bool
	store       store.Store
	session     *session.Manager
	books       *library.BookService
	quotes      *library.QuoteService
	admin       *library.AdminService
	favourites  *library.Favourites
	preferences *library.Preferences
	cfg         *config.Config
}

// newApp wires services over st using c
func newApp(c *config.Config, st store.Store) *app {
	httpClient := client.NewAuthorized(c.APIURL, st, client.WithTimeout(c.Timeout))
	mgr := session.New(httpClient, st)

	return &app{
		json:        c.JSON,
		store:       st,
		session:     mgr,
		books:       library.NewBookService(httpClient),
		quotes:      library.NewQuoteService(httpClient),
		admin:       library.NewAdminService(mgr),
		favourites:  library.NewFavourites(st),
		preferences: library.NewPreferences(st),
		cfg:         c,
	}
}

// currentApp wires services over the file store in the configured
// directory, or over memory with --ephemeral
func currentApp() *app {
	if ephemeral {
		return newApp(cfg, store.NewMemoryStore())
	}
	return newApp(cfg, store.NewFileStore(cfg.ConfigDir))
}

// services exposes the wiring to the TUI
func (a *app) services() tui.Services {
	return tui.Services{
		Session:     a.session,
		Books:       a.books,
		Quotes:      a.quotes,
		Admin:       a.admin,
		Favourites:  a.favourites,
		Preferences: a.preferences,
	}
}
