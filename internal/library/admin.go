// ABOUTME: Admin views of users, books, and quotes through the session's admin passthrough
// ABOUTME: Dashboard load fans out four requests and waits for all of them

package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

// AdminRequester issues admin-scoped requests. session.Manager implements it.
type AdminRequester interface {
	IsAuthenticated() bool
	AdminGet(ctx context.Context, endpoint string, out any) error
	AdminPut(ctx context.Context, endpoint string, in, out any) error
	AdminDelete(ctx context.Context, endpoint string) error
}

// AdminService wraps the admin endpoints
type AdminService struct {
	admin AdminRequester
}

// NewAdminService creates an AdminService
func NewAdminService(admin AdminRequester) *AdminService {
	return &AdminService{admin: admin}
}

// Stats returns aggregate counts
func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.admin.AdminGet(ctx, "stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return &stats, nil
}

// Users lists every account
func (s *AdminService) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.admin.AdminGet(ctx, "users", &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// UpdateUserRole changes a user's role to user or admin
func (s *AdminService) UpdateUserRole(ctx context.Context, id int, role string) error {
	if err := checkID("user", id); err != nil {
		return err
	}
	normalized, err := parseRole(role)
	if err != nil {
		return err
	}
	body := map[string]string{"role": normalized}
	if err := s.admin.AdminPut(ctx, fmt.Sprintf("users/%d/role", id), body, nil); err != nil {
		return fmt.Errorf("failed to update role for user %d: %w", id, err)
	}
	return nil
}

// DeleteUser removes an account
func (s *AdminService) DeleteUser(ctx context.Context, id int) error {
	if err := checkID("user", id); err != nil {
		return err
	}
	if err := s.admin.AdminDelete(ctx, fmt.Sprintf("users/%d", id)); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// Books lists every book across users
func (s *AdminService) Books(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := s.admin.AdminGet(ctx, "books", &books); err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	return books, nil
}

// DeleteBook removes any user's book
func (s *AdminService) DeleteBook(ctx context.Context, id int) error {
	if err := checkID("book", id); err != nil {
		return err
	}
	if err := s.admin.AdminDelete(ctx, fmt.Sprintf("books/%d", id)); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

// Quotes lists every quote across users
func (s *AdminService) Quotes(ctx context.Context) ([]Quote, error) {
	var quotes []Quote
	if err := s.admin.AdminGet(ctx, "quotes", &quotes); err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}
	return quotes, nil
}

// DeleteQuote removes any user's quote
func (s *AdminService) DeleteQuote(ctx context.Context, id int) error {
	if err := checkID("quote", id); err != nil {
		return err
	}
	if err := s.admin.AdminDelete(ctx, fmt.Sprintf("quotes/%d", id)); err != nil {
		return fmt.Errorf("failed to delete quote %d: %w", id, err)
	}
	return nil
}

// Dashboard is the joined result of the four dashboard loads. A section
// that failed holds its zero value and has an entry in Errors.
type Dashboard struct {
	Stats  Stats
	Users  []User
	Books  []Book
	Quotes []Quote
	Errors map[string]error
}

// Dashboard sections
const (
	SectionStats  = "stats"
	SectionUsers  = "users"
	SectionBooks  = "books"
	SectionQuotes = "quotes"
)

// Err joins the section errors, or returns nil when every section loaded
func (d *Dashboard) Err() error {
	var errs []error
	for _, section := range []string{SectionStats, SectionUsers, SectionBooks, SectionQuotes} {
		if err, ok := d.Errors[section]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadDashboard fetches stats, users, books, and quotes concurrently. Each
// branch recovers its own failure so one failing endpoint never aborts the
// others; the call returns once all four have settled.
func (s *AdminService) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	if !s.admin.IsAuthenticated() {
		return nil, client.ErrNotAuthenticated
	}

	d := &Dashboard{
		Users:  []User{},
		Books:  []Book{},
		Quotes: []Quote{},
		Errors: map[string]error{},
	}
	var mu sync.Mutex
	record := func(section string, err error) {
		slog.Warn("Dashboard section failed", "section", section, "error", err)
		mu.Lock()
		d.Errors[section] = err
		mu.Unlock()
	}

	// Branches record their own failures in d.Errors and always return nil,
	// so Wait never reports an error.
	var g errgroup.Group
	g.Go(func() error {
		if stats, err := s.Stats(ctx); err != nil {
			record(SectionStats, err)
		} else {
			d.Stats = *stats
		}
		return nil
	})
	g.Go(func() error {
		if users, err := s.Users(ctx); err != nil {
			record(SectionUsers, err)
		} else if users != nil {
			d.Users = users
		}
		return nil
	})
	g.Go(func() error {
		if books, err := s.Books(ctx); err != nil {
			record(SectionBooks, err)
		} else if books != nil {
			d.Books = books
		}
		return nil
	})
	g.Go(func() error {
		if quotes, err := s.Quotes(ctx); err != nil {
			record(SectionQuotes, err)
		} else if quotes != nil {
			d.Quotes = quotes
		}
		return nil
	})
	_ = g.Wait()

	return d, nil
}
