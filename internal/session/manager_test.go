// ABOUTME: Tests for the session manager against a fake backend
// ABOUTME: Covers login persistence, admin refusal, logout, and token validation

package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/router"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

type harness struct {
	manager     *Manager
	store       *store.MemoryStore
	navigations []string
}

func newHarness(t *testing.T, handler http.HandlerFunc, opts ...Option) *harness {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	h := &harness{store: store.NewMemoryStore()}
	opts = append([]Option{WithNavigator(func(path string) {
		h.navigations = append(h.navigations, path)
	})}, opts...)
	h.manager = New(client.NewAuthorized(server.URL, h.store), h.store, opts...)
	return h
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestLogin_AdminScenario(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "alice" || creds.Password != "pw" {
			t.Errorf("unexpected credentials %+v", creds)
		}
		respond(w, http.StatusOK, `{"token":"t1","username":"alice","role":"Admin","userId":7}`)
	})
	m := h.manager

	if _, err := m.Login(context.Background(), Credentials{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if !m.IsAuthenticated() {
		t.Error("expected authenticated after login")
	}
	if !m.IsAdmin() {
		t.Error("expected admin after login")
	}
	if m.CurrentRole() != "admin" {
		t.Errorf("expected role admin, got %q", m.CurrentRole())
	}
	if id, ok := m.CurrentUserID(); !ok || id != 7 {
		t.Errorf("expected user ID 7, got %d (%v)", id, ok)
	}

	m.Logout()

	if m.IsAdmin() {
		t.Error("expected non-admin after logout")
	}
	if _, ok := m.CurrentUserID(); ok {
		t.Error("expected no user ID after logout")
	}
	if len(h.navigations) != 1 || h.navigations[0] != router.PathLogin {
		t.Errorf("expected navigation to login, got %v", h.navigations)
	}
}

func TestLogin_RoleIsLowerCased(t *testing.T) {
	roles := []string{"User", "USER", "user", "Admin", "aDmIn"}
	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
				respond(w, http.StatusOK, `{"token":"tok","username":"bob","role":"`+role+`","userId":3}`)
			})
			if _, err := h.manager.Login(context.Background(), Credentials{Username: "bob", Password: "pw"}); err != nil {
				t.Fatalf("Login error: %v", err)
			}
			stored, _ := h.store.Get(store.KeyRole)
			if stored != h.manager.CurrentRole() || stored == "" {
				t.Errorf("stored role %q does not match current role %q", stored, h.manager.CurrentRole())
			}
			if !h.manager.HasRole(role) {
				t.Errorf("HasRole(%q) should be true", role)
			}
		})
	}
}

func TestLogin_AliasedFields(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, `{"accessToken":"t2","user":{"userName":"carol","id":"12"}}`)
	})
	m := h.manager

	if _, err := m.Login(context.Background(), Credentials{Username: "carol", Password: "pw"}); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if m.Token() != "t2" {
		t.Errorf("expected token t2, got %q", m.Token())
	}
	if m.CurrentUsername() != "carol" {
		t.Errorf("expected username carol, got %q", m.CurrentUsername())
	}
	if m.CurrentRole() != RoleUser {
		t.Errorf("expected missing role to default to user, got %q", m.CurrentRole())
	}
	if id, ok := m.CurrentUserID(); !ok || id != 12 {
		t.Errorf("expected user ID 12, got %d", id)
	}
}

func TestLogin_ResponseWithoutTokenPersistsNothing(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, `{"username":"dave","role":"User"}`)
	})

	_, err := h.manager.Login(context.Background(), Credentials{Username: "dave", Password: "pw"})
	if !errors.Is(err, client.ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	for _, key := range store.SessionKeys {
		if _, ok := h.store.Get(key); ok {
			t.Errorf("key %s should not be written", key)
		}
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	})

	_, err := h.manager.Login(context.Background(), Credentials{Username: "eve", Password: "bad"})
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if h.manager.IsAuthenticated() {
		t.Error("expected unauthenticated after failed login")
	}
}

func TestLogin_OverwritesPreviousSession(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, `{"token":"new","username":"frank","role":"User"}`)
	})
	h.store.SetAll(map[string]string{
		store.KeyToken:    "old",
		store.KeyUsername: "previous",
		store.KeyRole:     "admin",
		store.KeyUserID:   "99",
	})

	if _, err := h.manager.Login(context.Background(), Credentials{Username: "frank", Password: "pw"}); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if h.manager.IsAdmin() {
		t.Error("expected old admin role to be replaced")
	}
	if _, ok := h.manager.CurrentUserID(); ok {
		t.Error("expected stale user ID to be removed")
	}
	if h.manager.CurrentUsername() != "frank" {
		t.Errorf("expected username frank, got %q", h.manager.CurrentUsername())
	}
}

func TestAdminLogin_NonAdminDenied(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/admin/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		respond(w, http.StatusOK, `{"token":"t3","username":"gina","role":"user","userId":4}`)
	})

	_, err := h.manager.AdminLogin(context.Background(), Credentials{Username: "gina", Password: "pw"})
	if !errors.Is(err, client.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if _, ok := h.store.Get(store.KeyToken); ok {
		t.Error("token must not be persisted for a non-admin")
	}
}

func TestAdminLogin_Admin(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, `{"token":"t4","username":"root","role":"Admin","userId":1}`)
	})

	if _, err := h.manager.AdminLogin(context.Background(), Credentials{Username: "root", Password: "pw"}); err != nil {
		t.Fatalf("AdminLogin error: %v", err)
	}
	if !h.manager.IsAdmin() {
		t.Error("expected admin session")
	}
}

func TestRegister(t *testing.T) {
	var got RegisterRequest
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		respond(w, http.StatusCreated, `{"token":"t5","username":"hana","role":"User","userId":5,"msg":"welcome"}`)
	})

	resp, err := h.manager.Register(context.Background(), RegisterRequest{Username: " hana ", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if got.Role != "User" {
		t.Errorf("expected default role User, got %q", got.Role)
	}
	if got.Username != "hana" {
		t.Errorf("expected trimmed username, got %q", got.Username)
	}
	if resp.Message != "welcome" {
		t.Errorf("expected message from msg alias, got %q", resp.Message)
	}
	if !h.manager.IsAuthenticated() {
		t.Error("expected authenticated after register")
	}
}

func TestRegister_ValidationBeforeNetwork(t *testing.T) {
	called := false
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Password: "secret1"}},
		{"blank username", RegisterRequest{Username: "   ", Password: "secret1"}},
		{"missing password", RegisterRequest{Username: "ivan"}},
		{"short password", RegisterRequest{Username: "ivan", Password: "123"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.manager.Register(context.Background(), tc.req)
			if !errors.Is(err, client.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
	if called {
		t.Error("validation failures must not reach the backend")
	}
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	called := false
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tests := []struct {
		name  string
		creds Credentials
		admin bool
	}{
		{"missing username", Credentials{Password: "pw"}, false},
		{"blank username", Credentials{Username: "  ", Password: "pw"}, false},
		{"missing password", Credentials{Username: "ivan"}, false},
		{"admin missing username", Credentials{Password: "pw"}, true},
		{"admin missing password", Credentials{Username: "root"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.admin {
				_, err = h.manager.AdminLogin(context.Background(), tc.creds)
			} else {
				_, err = h.manager.Login(context.Background(), tc.creds)
			}
			if !errors.Is(err, client.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
	if called {
		t.Error("validation failures must not reach the backend")
	}
	if h.manager.IsAuthenticated() {
		t.Error("expected no session")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	h.manager.Logout()
	h.manager.Logout()

	if h.manager.IsAuthenticated() {
		t.Error("expected unauthenticated")
	}
	if len(h.navigations) != 2 {
		t.Errorf("expected a navigation per logout, got %v", h.navigations)
	}
}

func TestLogout_KeepsPreferences(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})
	h.store.SetAll(map[string]string{
		store.KeyToken:    "t",
		store.KeyUsername: "u",
		store.KeyRole:     "user",
		store.KeyUserID:   "1",
		store.KeyTheme:    "dark",
	})

	h.manager.Logout()

	for _, key := range store.SessionKeys {
		if _, ok := h.store.Get(key); ok {
			t.Errorf("key %s should be removed", key)
		}
	}
	if theme, _ := h.store.Get(store.KeyTheme); theme != "dark" {
		t.Errorf("expected theme to survive logout, got %q", theme)
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"valid", http.StatusOK, `{"valid":true}`, true},
		{"empty body", http.StatusOK, ``, true},
		{"reported invalid", http.StatusOK, `{"valid":false}`, false},
		{"rejected", http.StatusUnauthorized, `{"message":"expired"}`, false},
		{"server error", http.StatusInternalServerError, ``, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotAuth string
			h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				respond(w, tc.status, tc.body)
			})
			h.store.Set(store.KeyToken, "opaque")

			if got := h.manager.ValidateToken(context.Background()); got != tc.want {
				t.Errorf("ValidateToken() = %v, want %v", got, tc.want)
			}
			if gotAuth != "Bearer opaque" {
				t.Errorf("expected bearer header, got %q", gotAuth)
			}
			if h.manager.IsAuthenticated() != tc.want {
				t.Errorf("expected authenticated=%v after validation", tc.want)
			}
		})
	}
}

func TestValidateToken_NetworkFailureLogsOut(t *testing.T) {
	s := store.NewMemoryStore()
	s.Set(store.KeyToken, "opaque")
	m := New(client.NewAuthorized("http://localhost:99999", s), s)

	if m.ValidateToken(context.Background()) {
		t.Fatal("expected validation to fail")
	}
	if m.IsAuthenticated() {
		t.Error("expected logout after network failure")
	}
}

func TestValidateToken_CancelledCallerKeepsSession(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	var requests atomic.Int32
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(arrived)
		}
		<-release
		respond(w, http.StatusOK, `{"valid":true}`)
	})
	h.store.Set(store.KeyToken, "opaque")

	ctxA, cancelA := context.WithCancel(context.Background())
	resultA := make(chan bool, 1)
	go func() { resultA <- h.manager.ValidateToken(ctxA) }()
	<-arrived

	resultB := make(chan bool, 1)
	go func() { resultB <- h.manager.ValidateToken(context.Background()) }()

	cancelA()
	if <-resultA {
		t.Error("cancelled caller should report false")
	}
	if !h.manager.IsAuthenticated() {
		t.Fatal("cancelling one caller must not clear the session")
	}

	close(release)
	if !<-resultB {
		t.Error("live caller should see the valid answer")
	}
	if !h.manager.IsAuthenticated() {
		t.Error("expected session to survive validation")
	}
	if len(h.navigations) != 0 {
		t.Errorf("expected no logout navigation, got %v", h.navigations)
	}
}

func TestValidateToken_CancelledSingleCaller(t *testing.T) {
	release := make(chan struct{})
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		respond(w, http.StatusOK, `{"valid":true}`)
	})
	t.Cleanup(func() { close(release) })
	h.store.Set(store.KeyToken, "opaque")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if h.manager.ValidateToken(ctx) {
		t.Error("expected false for a cancelled context")
	}
	if !h.manager.IsAuthenticated() {
		t.Error("expected session to be kept")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestValidateToken_ExpiredJWTSkipsNetwork(t *testing.T) {
	called := false
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		respond(w, http.StatusOK, `{"valid":true}`)
	}, WithClock(func() time.Time { return now }))
	h.store.Set(store.KeyToken, signedToken(t, now.Add(-time.Minute)))

	if h.manager.ValidateToken(context.Background()) {
		t.Error("expected expired token to be invalid")
	}
	if called {
		t.Error("expired token should not be sent to the backend")
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	s := store.NewMemoryStore()
	m := New(client.New("http://unused"), s)

	if _, ok := m.TokenExpiry(); ok {
		t.Error("expected no expiry without a token")
	}

	s.Set(store.KeyToken, "not-a-jwt")
	if _, ok := m.TokenExpiry(); ok {
		t.Error("expected no expiry for an opaque token")
	}

	s.Set(store.KeyToken, signedToken(t, exp))
	got, ok := m.TokenExpiry()
	if !ok || !got.Equal(exp) {
		t.Errorf("TokenExpiry() = %v, %v; want %v", got, ok, exp)
	}
}

func TestUserInfo(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/user-info" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		respond(w, http.StatusOK, `{"userName":"alice","userRole":"Admin","user_id":7}`)
	})

	if _, err := h.manager.UserInfo(context.Background()); !errors.Is(err, client.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	h.store.Set(store.KeyToken, "t1")
	info, err := h.manager.UserInfo(context.Background())
	if err != nil {
		t.Fatalf("UserInfo error: %v", err)
	}
	if info.Username != "alice" || info.Role != RoleAdmin || info.UserID != 7 {
		t.Errorf("unexpected user info %+v", info)
	}
}
