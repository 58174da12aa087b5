// ABOUTME: Client-only favourite quotes list stored as a JSON array
// ABOUTME: Deduplicated by quote ID; there is no server counterpart

package library

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

// Favourites is the bookmark list of quotes
type Favourites struct {
	store store.Store
}

// NewFavourites creates Favourites over s
func NewFavourites(s store.Store) *Favourites {
	return &Favourites{store: s}
}

// List returns the stored favourites. A corrupt entry reads as empty.
func (f *Favourites) List() []Quote {
	raw, ok := f.store.Get(store.KeyFavourites)
	if !ok || raw == "" {
		return []Quote{}
	}
	var quotes []Quote
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		slog.Warn("Ignoring corrupt favourites", "error", err)
		return []Quote{}
	}
	return quotes
}

// Contains reports whether a quote with id is a favourite
func (f *Favourites) Contains(id int) bool {
	for _, q := range f.List() {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Add stores quote unless one with the same ID is already present. It
// reports whether the list changed.
func (f *Favourites) Add(quote Quote) (bool, error) {
	if err := checkID("quote", quote.ID); err != nil {
		return false, err
	}
	quotes := f.List()
	for _, q := range quotes {
		if q.ID == quote.ID {
			return false, nil
		}
	}
	return true, f.save(append(quotes, quote))
}

// Remove drops the quote with id. It reports whether the list changed.
func (f *Favourites) Remove(id int) (bool, error) {
	quotes := f.List()
	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quotes) {
		return false, nil
	}
	return true, f.save(kept)
}

func (f *Favourites) save(quotes []Quote) error {
	data, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("failed to encode favourites: %w", err)
	}
	if err := f.store.Set(store.KeyFavourites, string(data)); err != nil {
		return fmt.Errorf("failed to save favourites: %w", err)
	}
	return nil
}
