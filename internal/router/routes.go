// ABOUTME: Route table for the client's screens
// ABOUTME: Each route declares whether it is guest-only, authenticated, or admin-only

package router

// Route paths
const (
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathAdminLogin     = "/admin/login"
	PathBooks          = "/books"
	PathBookNew        = "/books/new"
	PathBookEdit       = "/books/edit"
	PathQuotes         = "/quotes"
	PathQuoteNew       = "/quotes/new"
	PathFavourites     = "/favourites"
	PathAdminDashboard = "/admin/dashboard"
	PathAdminUsers     = "/admin/users"
	PathAdminBooks     = "/admin/books"
	PathAdminQuotes    = "/admin/quotes"
)

// Route describes a navigable screen and its access requirements
type Route struct {
	Path          string
	Title         string
	RequiresGuest bool
	RequiresAuth  bool
	RequiresAdmin bool
}

// Routes is the full route table
var Routes = []Route{
	{Path: PathLogin, Title: "Log in", RequiresGuest: true},
	{Path: PathRegister, Title: "Register", RequiresGuest: true},
	{Path: PathAdminLogin, Title: "Admin log in", RequiresGuest: true},
	{Path: PathBooks, Title: "My Books", RequiresAuth: true},
	{Path: PathBookNew, Title: "Add Book", RequiresAuth: true},
	{Path: PathBookEdit, Title: "Edit Book", RequiresAuth: true},
	{Path: PathQuotes, Title: "Quotes", RequiresAuth: true},
	{Path: PathQuoteNew, Title: "Add Quote", RequiresAuth: true},
	{Path: PathFavourites, Title: "Favourite Quotes", RequiresAuth: true},
	{Path: PathAdminDashboard, Title: "Admin Dashboard", RequiresAuth: true, RequiresAdmin: true},
	{Path: PathAdminUsers, Title: "Manage Users", RequiresAuth: true, RequiresAdmin: true},
	{Path: PathAdminBooks, Title: "Manage Books", RequiresAuth: true, RequiresAdmin: true},
	{Path: PathAdminQuotes, Title: "Manage Quotes", RequiresAuth: true, RequiresAdmin: true},
}

// Lookup finds the route for path
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
