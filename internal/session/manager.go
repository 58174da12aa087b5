// ABOUTME: Session manager owning the persisted session and auth transactions
// ABOUTME: Login, admin login, register, logout, and session state queries

package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/router"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

// Roles, lower-cased as stored
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// defaultRegisterRole is sent when a registration names no role
const defaultRegisterRole = "User"

const minPasswordLength = 6

// Credentials are submitted once per login and never persisted
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// validate rejects blank fields before any request is sent
func (c Credentials) validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return client.Validationf("username is required")
	}
	if c.Password == "" {
		return client.Validationf("password is required")
	}
	return nil
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is the server's answer to login and register
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   int    `json:"userId,omitempty"`
	Message  string `json:"message,omitempty"`
}

// UserInfo is the identity reported by /auth/user-info
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   int    `json:"userId,omitempty"`
}

// Navigator moves the user interface to path
type Navigator func(path string)

// Manager is the single authority for reading and writing session state
type Manager struct {
	client   *client.Client
	store    store.Store
	navigate Navigator
	now      func() time.Time
	sfGroup  singleflight.Group
}

var _ router.State = (*Manager)(nil)

// Option configures a Manager
type Option func(*Manager)

// WithNavigator sets the callback invoked on logout
func WithNavigator(n Navigator) Option {
	return func(m *Manager) {
		m.navigate = n
	}
}

// WithClock overrides the clock used for token expiry checks
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// New creates a Manager. The client should be built with
// client.NewAuthorized over the same store.
func New(c *client.Client, s store.Store, opts ...Option) *Manager {
	m := &Manager{
		client:   c,
		store:    s,
		navigate: func(string) {},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login authenticates and persists the session
func (m *Manager) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}
	resp, err := m.authenticate(ctx, "/auth/login", creds)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if err := m.persist(resp); err != nil {
		return nil, err
	}
	slog.Info("Logged in", "username", resp.Username, "role", normalizeRole(resp.Role))
	return resp, nil
}

// AdminLogin authenticates against the admin endpoint and persists the
// session only when the server confirms the admin role
func (m *Manager) AdminLogin(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}
	resp, err := m.authenticate(ctx, "/auth/admin/login", creds)
	if err != nil {
		return nil, fmt.Errorf("admin login failed: %w", err)
	}
	if normalizeRole(resp.Role) != RoleAdmin {
		slog.Warn("Admin login refused", "username", creds.Username, "role", resp.Role)
		return nil, fmt.Errorf("%w: %s is not an administrator", client.ErrAccessDenied, creds.Username)
	}
	if err := m.persist(resp); err != nil {
		return nil, err
	}
	slog.Info("Logged in as admin", "username", resp.Username)
	return resp, nil
}

// Register creates an account and persists the returned session
func (m *Manager) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return nil, client.Validationf("username is required")
	}
	if req.Password == "" {
		return nil, client.Validationf("password is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, client.Validationf("password must be at least %d characters", minPasswordLength)
	}
	if req.Role == "" {
		req.Role = defaultRegisterRole
	}

	resp, err := m.authenticate(ctx, "/auth/register", req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if err := m.persist(resp); err != nil {
		return nil, err
	}
	slog.Info("Registered", "username", resp.Username)
	return resp, nil
}

func (m *Manager) authenticate(ctx context.Context, path string, payload any) (*AuthResponse, error) {
	body, err := m.client.DoRaw(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return parseAuthResponse(body)
}

// persist overwrites the whole session tuple in one store write
func (m *Manager) persist(resp *AuthResponse) error {
	values := map[string]string{
		store.KeyToken: resp.Token,
		store.KeyRole:  normalizeRole(resp.Role),
	}
	var remove []string
	if resp.Username != "" {
		values[store.KeyUsername] = resp.Username
	} else {
		remove = append(remove, store.KeyUsername)
	}
	if resp.UserID > 0 {
		values[store.KeyUserID] = strconv.Itoa(resp.UserID)
	} else {
		remove = append(remove, store.KeyUserID)
	}

	if err := m.store.SetAll(values, remove...); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Logout clears the session and navigates to the login screen. Calling it
// without a session has the same effect.
func (m *Manager) Logout() {
	if err := m.store.Remove(store.SessionKeys...); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	m.navigate(router.PathLogin)
}

// IsAuthenticated reports whether a non-empty token is stored
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// IsAdmin reports whether the stored role is admin
func (m *Manager) IsAdmin() bool {
	return m.HasRole(RoleAdmin)
}

// HasRole compares role against the stored role, ignoring case
func (m *Manager) HasRole(role string) bool {
	current := m.CurrentRole()
	return current != "" && strings.EqualFold(current, role)
}

// Token returns the stored token, or "" when logged out
func (m *Manager) Token() string {
	token, _ := m.store.Get(store.KeyToken)
	return token
}

// CurrentRole returns the stored role lower-cased
func (m *Manager) CurrentRole() string {
	role, _ := m.store.Get(store.KeyRole)
	return strings.ToLower(role)
}

// CurrentUsername returns the stored username
func (m *Manager) CurrentUsername() string {
	username, _ := m.store.Get(store.KeyUsername)
	return username
}

// CurrentUserID returns the stored user ID
func (m *Manager) CurrentUserID() (int, bool) {
	raw, ok := m.store.Get(store.KeyUserID)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// TokenExpiry reads the exp claim of a JWT token without verifying its
// signature. It reports false for opaque tokens.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	token := m.Token()
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ValidateToken asks the backend whether the stored token is still valid.
// Any failure logs out, except the caller giving up: a cancelled ctx
// returns false and leaves the session alone.
func (m *Manager) ValidateToken(ctx context.Context) bool {
	if !m.IsAuthenticated() {
		m.Logout()
		return false
	}
	if exp, ok := m.TokenExpiry(); ok && !m.now().Before(exp) {
		slog.Info("Token expired", "expired_at", exp)
		m.Logout()
		return false
	}

	// Concurrent validations of the same token share one request. It must
	// outlive any single caller; the client timeout still bounds it.
	shared := context.WithoutCancel(ctx)
	ch := m.sfGroup.DoChan(m.Token(), func() (any, error) {
		return m.client.DoRaw(shared, http.MethodPost, "/auth/validate-token", nil)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		slog.Info("Token validation abandoned", "error", ctx.Err())
		return false
	case res = <-ch:
	}
	result, err := res.Val, res.Err
	if err != nil {
		slog.Info("Token validation failed", "error", err)
		m.Logout()
		return false
	}
	body, _ := result.([]byte)
	if valid := gjson.GetBytes(body, "valid"); valid.Exists() && !valid.Bool() {
		slog.Info("Token reported invalid")
		m.Logout()
		return false
	}
	return true
}

// UserInfo fetches the identity the backend associates with the token
func (m *Manager) UserInfo(ctx context.Context) (*UserInfo, error) {
	if !m.IsAuthenticated() {
		return nil, client.ErrNotAuthenticated
	}
	body, err := m.client.DoRaw(ctx, http.MethodGet, "/auth/user-info", nil)
	if err != nil {
		if client.IsAuthFailure(err) {
			m.Logout()
		}
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	return parseUserInfo(body)
}

