// ABOUTME: Route guards deciding whether navigation may proceed
// ABOUTME: Pure functions of the current session state, evaluated on every navigation

package router

// State is the session state the guards consult
type State interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is a guard's verdict. When Allow is false, Redirect names the
// path to navigate to instead.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(path string) Decision {
	return Decision{Redirect: path}
}

// LandingPath is where an authenticated user goes by default
func LandingPath(s State) string {
	if s.IsAdmin() {
		return PathAdminDashboard
	}
	return PathBooks
}

// AuthGuard keeps authenticated users off guest-only routes and
// unauthenticated users off everything else
func AuthGuard(s State, r Route) Decision {
	authenticated := s.IsAuthenticated()

	if r.RequiresGuest {
		if authenticated {
			return redirect(LandingPath(s))
		}
		return allow()
	}

	if !authenticated {
		return redirect(PathLogin)
	}
	return allow()
}

// AdminGuard admits only authenticated admins
func AdminGuard(s State, r Route) Decision {
	if !s.IsAuthenticated() {
		return redirect(PathLogin)
	}
	if !s.IsAdmin() {
		return redirect(PathBooks)
	}
	return allow()
}

// Check runs the guards that apply to r, auth before admin
func Check(s State, r Route) Decision {
	if r.RequiresGuest || r.RequiresAuth {
		if d := AuthGuard(s, r); !d.Allow {
			return d
		}
	}
	if r.RequiresAdmin {
		if d := AdminGuard(s, r); !d.Allow {
			return d
		}
	}
	return allow()
}
