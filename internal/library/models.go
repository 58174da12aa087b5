// ABOUTME: Domain types exchanged with the library API
// ABOUTME: Books, quotes, users, and aggregate statistics

package library

import "strings"

// Book is an entry in a user's collection
type Book struct {
	ID              int    `json:"id,omitempty"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationDate string `json:"publicationDate,omitempty"`
	Description     string `json:"description,omitempty"`
	UserID          int    `json:"userId,omitempty"`
}

// Validate checks the fields the backend requires
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return validationf("title is required")
	}
	if strings.TrimSpace(b.Author) == "" {
		return validationf("author is required")
	}
	return nil
}

// Quote is a passage, optionally attached to a book
type Quote struct {
	ID     int    `json:"id,omitempty"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	BookID int    `json:"bookId,omitempty"`
	UserID int    `json:"userId,omitempty"`
}

// Validate checks the fields the backend requires
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return validationf("quote text is required")
	}
	return nil
}

// User is an account as seen by an admin
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Stats are aggregate counts for the admin dashboard
type Stats struct {
	TotalUsers  int `json:"totalUsers"`
	TotalBooks  int `json:"totalBooks"`
	TotalQuotes int `json:"totalQuotes"`
}
