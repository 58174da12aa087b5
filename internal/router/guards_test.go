// ABOUTME: Tests for the auth and admin route guards
// ABOUTME: Covers guest-only redirects by role and admin-only denial paths

package router

import "testing"

type fakeState struct {
	authenticated bool
	admin         bool
}

func (f fakeState) IsAuthenticated() bool { return f.authenticated }
func (f fakeState) IsAdmin() bool         { return f.admin }

var (
	anonymous = fakeState{}
	user      = fakeState{authenticated: true}
	admin     = fakeState{authenticated: true, admin: true}
)

func mustRoute(t *testing.T, path string) Route {
	t.Helper()
	r, ok := Lookup(path)
	if !ok {
		t.Fatalf("route %s not found", path)
	}
	return r
}

func TestAuthGuard(t *testing.T) {
	tests := []struct {
		name  string
		state fakeState
		path  string
		want  Decision
	}{
		{"guest route as admin", admin, PathLogin, Decision{Redirect: PathAdminDashboard}},
		{"guest route as user", user, PathLogin, Decision{Redirect: PathBooks}},
		{"guest route anonymous", anonymous, PathLogin, Decision{Allow: true}},
		{"register as user", user, PathRegister, Decision{Redirect: PathBooks}},
		{"protected route anonymous", anonymous, PathBooks, Decision{Redirect: PathLogin}},
		{"protected route as user", user, PathQuotes, Decision{Allow: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AuthGuard(tc.state, mustRoute(t, tc.path))
			if got != tc.want {
				t.Errorf("AuthGuard() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAdminGuard(t *testing.T) {
	route := mustRoute(t, PathAdminDashboard)

	tests := []struct {
		name  string
		state fakeState
		want  Decision
	}{
		{"anonymous", anonymous, Decision{Redirect: PathLogin}},
		{"non-admin", user, Decision{Redirect: PathBooks}},
		{"admin", admin, Decision{Allow: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AdminGuard(tc.state, route); got != tc.want {
				t.Errorf("AdminGuard() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCheckAdminRouteRunsAuthGuardFirst(t *testing.T) {
	for _, path := range []string{PathAdminDashboard, PathAdminUsers, PathAdminBooks, PathAdminQuotes} {
		if d := Check(anonymous, mustRoute(t, path)); d.Redirect != PathLogin {
			t.Errorf("%s: expected redirect to login, got %+v", path, d)
		}
		if d := Check(user, mustRoute(t, path)); d.Redirect != PathBooks {
			t.Errorf("%s: expected redirect to books, got %+v", path, d)
		}
		if d := Check(admin, mustRoute(t, path)); !d.Allow {
			t.Errorf("%s: expected admin allowed, got %+v", path, d)
		}
	}
}

func TestGuardsReevaluateState(t *testing.T) {
	s := &mutableState{}
	route := mustRoute(t, PathBooks)

	if AuthGuard(s, route).Allow {
		t.Fatal("expected deny before login")
	}
	s.authenticated = true
	if !AuthGuard(s, route).Allow {
		t.Fatal("expected allow after login")
	}
	s.authenticated = false
	if AuthGuard(s, route).Allow {
		t.Fatal("expected deny after logout")
	}
}

type mutableState struct {
	authenticated bool
	admin         bool
}

func (m *mutableState) IsAuthenticated() bool { return m.authenticated }
func (m *mutableState) IsAdmin() bool         { return m.admin }
