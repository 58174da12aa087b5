// ABOUTME: Router resolving navigation requests through the route guards
// ABOUTME: Tracks the current path and follows guard redirects

package router

import "log/slog"

// maxRedirects bounds redirect chains; the guards settle within two hops
const maxRedirects = 4

// Router resolves navigation against the route table
type Router struct {
	state   State
	current string
}

// New creates a Router with no current path
func New(state State) *Router {
	return &Router{state: state}
}

// Current returns the path of the screen currently shown
func (r *Router) Current() string {
	return r.current
}

// Navigate attempts to move to path. The returned Decision reports whether
// the requested path was allowed; when it was not, Redirect is the path the
// router settled on instead. Current is updated either way.
func (r *Router) Navigate(path string) Decision {
	target := path
	for i := 0; i < maxRedirects; i++ {
		d := r.resolve(target)
		if d.Allow {
			r.current = target
			if target == path {
				return d
			}
			return Decision{Redirect: target}
		}
		slog.Debug("Navigation redirected", "from", target, "to", d.Redirect)
		target = d.Redirect
	}

	// Guards disagree with each other; fall back to login
	r.current = PathLogin
	return Decision{Redirect: PathLogin}
}

func (r *Router) resolve(path string) Decision {
	route, ok := Lookup(path)
	if !ok {
		if r.state.IsAuthenticated() {
			return redirect(LandingPath(r.state))
		}
		return redirect(PathLogin)
	}
	return Check(r.state, route)
}
