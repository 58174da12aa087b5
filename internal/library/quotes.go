// ABOUTME: Quote CRUD against the library API

package library

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

const quotesPath = "/quotes"

// QuoteService manages quotes
type QuoteService struct {
	client *client.Client
}

// NewQuoteService creates a QuoteService over an authorized client
func NewQuoteService(c *client.Client) *QuoteService {
	return &QuoteService{client: c}
}

// List returns all quotes visible to the current user
func (s *QuoteService) List(ctx context.Context) ([]Quote, error) {
	var quotes []Quote
	if err := s.client.Get(ctx, quotesPath, &quotes); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// ListByBook returns the quotes attached to one book
func (s *QuoteService) ListByBook(ctx context.Context, bookID int) ([]Quote, error) {
	if err := checkID("book", bookID); err != nil {
		return nil, err
	}
	query := url.Values{"bookId": {strconv.Itoa(bookID)}}
	var quotes []Quote
	if err := s.client.Get(ctx, quotesPath+"?"+query.Encode(), &quotes); err != nil {
		return nil, fmt.Errorf("failed to list quotes for book %d: %w", bookID, err)
	}
	return quotes, nil
}

// Create adds a quote
func (s *QuoteService) Create(ctx context.Context, quote Quote) (*Quote, error) {
	if err := quote.Validate(); err != nil {
		return nil, err
	}
	var created Quote
	if err := s.client.Post(ctx, quotesPath, quote, &created); err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}
	return &created, nil
}

// Update replaces a quote's fields
func (s *QuoteService) Update(ctx context.Context, id int, quote Quote) (*Quote, error) {
	if err := checkID("quote", id); err != nil {
		return nil, err
	}
	if err := quote.Validate(); err != nil {
		return nil, err
	}
	quote.ID = id
	var updated Quote
	if err := s.client.Put(ctx, itemPath(quotesPath, id), quote, &updated); err != nil {
		return nil, fmt.Errorf("failed to update quote %d: %w", id, err)
	}
	if updated.ID == 0 {
		updated = quote
	}
	return &updated, nil
}

// Delete removes a quote
func (s *QuoteService) Delete(ctx context.Context, id int) error {
	if err := checkID("quote", id); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, itemPath(quotesPath, id)); err != nil {
		return fmt.Errorf("failed to delete quote %d: %w", id, err)
	}
	return nil
}
