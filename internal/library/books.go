// ABOUTME: Book CRUD against the library API
// ABOUTME: Validates locally before any request is issued

package library

import (
	"context"
	"fmt"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

const booksPath = "/books"

// BookService manages the current user's books
type BookService struct {
	client *client.Client
}

// NewBookService creates a BookService over an authorized client
func NewBookService(c *client.Client) *BookService {
	return &BookService{client: c}
}

// List returns the current user's books
func (s *BookService) List(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := s.client.Get(ctx, booksPath, &books); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Get returns one book
func (s *BookService) Get(ctx context.Context, id int) (*Book, error) {
	if err := checkID("book", id); err != nil {
		return nil, err
	}
	var book Book
	if err := s.client.Get(ctx, itemPath(booksPath, id), &book); err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return &book, nil
}

// Create adds a book and returns it as stored
func (s *BookService) Create(ctx context.Context, book Book) (*Book, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}
	var created Book
	if err := s.client.Post(ctx, booksPath, book, &created); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &created, nil
}

// Update replaces a book's fields
func (s *BookService) Update(ctx context.Context, id int, book Book) (*Book, error) {
	if err := checkID("book", id); err != nil {
		return nil, err
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	book.ID = id
	var updated Book
	if err := s.client.Put(ctx, itemPath(booksPath, id), book, &updated); err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	if updated.ID == 0 {
		updated = book
	}
	return &updated, nil
}

// Delete removes a book
func (s *BookService) Delete(ctx context.Context, id int) error {
	if err := checkID("book", id); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, itemPath(booksPath, id)); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

func itemPath(base string, id int) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func checkID(kind string, id int) error {
	if id <= 0 {
		return validationf("invalid %s id %d", kind, id)
	}
	return nil
}

func validationf(format string, args ...any) error {
	return client.Validationf(format, args...)
}
