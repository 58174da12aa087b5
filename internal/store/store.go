// ABOUTME: Persisted key-value store holding session and preference state
// ABOUTME: Defines the Store interface and the well-known state keys

package store

// Keys persisted by the client
const (
	KeyToken      = "authToken"
	KeyUsername   = "username"
	KeyRole       = "role"
	KeyUserID     = "userId"
	KeyLanguage   = "language"
	KeyTheme      = "theme"
	KeyFavourites = "favouriteQuotes"
)

// SessionKeys are the keys that together make up an authenticated session
var SessionKeys = []string{KeyToken, KeyUsername, KeyRole, KeyUserID}

// Store is a string key-value store. Implementations must make SetAll
// visible to readers as a single change.
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool)

	// Set stores a single value
	Set(key, value string) error

	// SetAll stores every entry in values and removes every key in remove
	// in one write
	SetAll(values map[string]string, remove ...string) error

	// Remove deletes keys; missing keys are ignored
	Remove(keys ...string) error
}
