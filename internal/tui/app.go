// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Every screen change goes through the guarded router; network work runs as commands

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/router"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/session"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/dashboard"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/forms"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/icons"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/listview"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/styles"
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4
)

// Services are the collaborators the TUI drives
type Services struct {
	Session     *session.Manager
	Books       *library.BookService
	Quotes      *library.QuoteService
	Admin       *library.AdminService
	Favourites  *library.Favourites
	Preferences *library.Preferences
}

// authDoneMsg is sent when a login or registration completes
type authDoneMsg struct {
	resp *session.AuthResponse
	err  error
}

// booksLoadedMsg is sent when the user's books are fetched
type booksLoadedMsg struct {
	books []library.Book
	err   error
}

// quotesLoadedMsg is sent when quotes are fetched
type quotesLoadedMsg struct {
	quotes []library.Quote
	err    error
}

// dashboardLoadedMsg is sent when the admin dashboard load settles
type dashboardLoadedMsg struct {
	data *library.Dashboard
	err  error
}

// actionDoneMsg is sent when a create, update, or delete finishes
type actionDoneMsg struct {
	status string
	next   string
	err    error
}

// App is the root model for the TUI
type App struct {
	svc     Services
	router  *router.Router
	timeout time.Duration

	width      int
	height     int
	err        error
	status     string
	loading    bool
	spinner    spinner.Model
	lastUpdate time.Time

	form      *forms.Form
	list      *listview.List
	dashboard *dashboard.Dashboard

	books     []library.Book
	quotes    []library.Quote
	adminData *library.Dashboard
	editing   *library.Book
	quoteBook *library.Book
}

// New creates the TUI application and resolves its first screen
func New(svc Services, timeout time.Duration) *App {
	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}
	styles.Apply(svc.Preferences.Theme())

	a := &App{
		svc:     svc,
		router:  router.New(svc.Session),
		timeout: timeout,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	a.navigate(router.PathBooks)
	return a
}

// Current returns the path of the screen being shown
func (a *App) Current() string {
	return a.router.Current()
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.enter())
}

// navigate moves to path through the guards and prepares the screen it
// settles on. The returned command starts any loading the screen needs.
func (a *App) navigate(path string) tea.Cmd {
	a.err = nil
	d := a.router.Navigate(path)
	if !d.Allow && path != router.PathBooks {
		route, _ := router.Lookup(path)
		if route.RequiresAdmin && a.svc.Session.IsAuthenticated() {
			a.status = "Admins only"
		}
	}
	return a.enter()
}

// enter builds the current screen
func (a *App) enter() tea.Cmd {
	a.form = nil
	a.list = nil

	switch a.router.Current() {
	case router.PathLogin:
		return a.openForm(forms.NewLogin(false))
	case router.PathAdminLogin:
		return a.openForm(forms.NewLogin(true))
	case router.PathRegister:
		return a.openForm(forms.NewRegister())
	case router.PathBookNew:
		return a.openForm(forms.NewBook(nil))
	case router.PathBookEdit:
		return a.openForm(forms.NewBook(a.editing))
	case router.PathQuoteNew:
		bookID := 0
		if a.quoteBook != nil {
			bookID = a.quoteBook.ID
		}
		return a.openForm(forms.NewQuote(a.books, bookID))
	case router.PathBooks:
		a.list = listview.New(icons.Book.String()+" My Books", "No books yet. Press n to add one.")
		a.list.SetItems(bookItems(a.books))
		return a.load(a.loadBooks())
	case router.PathQuotes:
		a.list = listview.New(a.quotesTitle(), "No quotes yet. Press n to add one.")
		a.list.SetItems(a.quoteItems(a.quotes))
		return a.load(a.loadQuotes())
	case router.PathFavourites:
		a.list = listview.New(icons.Favourite.String()+" Favourite Quotes", "No favourites yet. Press s on a quote to star it.")
		a.list.SetItems(a.quoteItems(a.svc.Favourites.List()))
		return nil
	case router.PathAdminDashboard:
		a.dashboard = dashboard.New(a.adminData, a.contentWidth(), a.contentHeight())
		return a.load(a.loadDashboard())
	case router.PathAdminUsers, router.PathAdminBooks, router.PathAdminQuotes:
		a.list = listview.New(a.adminTitle(), "Nothing here.")
		a.list.SetItems(a.adminItems())
		return a.load(a.loadDashboard())
	}
	return nil
}

func (a *App) openForm(f *forms.Form) tea.Cmd {
	a.form = f
	a.form.Update(tea.WindowSizeMsg{Width: a.contentWidth(), Height: a.contentHeight()})
	return a.form.Init()
}

// load marks the screen busy and runs cmd
func (a *App) load(cmd tea.Cmd) tea.Cmd {
	a.loading = true
	return cmd
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashboard != nil {
			a.dashboard.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.form != nil {
			_, cmd := a.form.Update(msg)
			return a, cmd
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)

	case forms.SubmittedMsg:
		return a, a.submit(msg.Form)

	case forms.CancelledMsg:
		return a.handleCancelled(msg)

	case authDoneMsg:
		a.loading = false
		if msg.err != nil {
			cmd := a.enter()
			a.err = msg.err
			return a, cmd
		}
		a.status = "Welcome, " + a.svc.Session.CurrentUsername()
		return a, a.navigate(router.LandingPath(a.svc.Session))

	case booksLoadedMsg:
		a.loading = false
		if cmd, handled := a.handleFailure(msg.err); handled {
			return a, cmd
		}
		a.books = msg.books
		a.lastUpdate = time.Now()
		if a.list != nil && a.router.Current() == router.PathBooks {
			a.list.SetItems(bookItems(a.books))
		}
		return a, nil

	case quotesLoadedMsg:
		a.loading = false
		if cmd, handled := a.handleFailure(msg.err); handled {
			return a, cmd
		}
		a.quotes = msg.quotes
		a.lastUpdate = time.Now()
		if a.list != nil && a.router.Current() == router.PathQuotes {
			a.list.SetTitle(a.quotesTitle())
			a.list.SetItems(a.quoteItems(a.quotes))
		}
		return a, nil

	case dashboardLoadedMsg:
		a.loading = false
		if cmd, handled := a.handleFailure(msg.err); handled {
			return a, cmd
		}
		// Branches that hit 401/403 have already logged the session out
		if !a.svc.Session.IsAuthenticated() {
			a.status = "Session expired, please log in again"
			return a, a.navigate(router.PathLogin)
		}
		a.adminData = msg.data
		a.lastUpdate = time.Now()
		if a.dashboard != nil {
			a.dashboard.SetData(msg.data)
		}
		if a.list != nil {
			a.list.SetItems(a.adminItems())
		}
		return a, nil

	case actionDoneMsg:
		a.loading = false
		if cmd, handled := a.handleFailure(msg.err); handled {
			return a, cmd
		}
		a.status = msg.status
		next := msg.next
		if next == "" {
			next = a.router.Current()
		}
		return a, a.navigate(next)

	default:
		// huh form internals need their own messages
		if a.form != nil {
			_, cmd := a.form.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// handleFailure shows err and returns to login when the session is gone
func (a *App) handleFailure(err error) (tea.Cmd, bool) {
	if err == nil {
		return nil, false
	}
	if errors.Is(err, client.ErrNotAuthenticated) || errors.Is(err, client.ErrUnauthorized) {
		if a.svc.Session.IsAuthenticated() {
			a.svc.Session.Logout()
		}
		a.status = "Session expired, please log in again"
		return a.navigate(router.PathLogin), true
	}
	if client.IsAuthFailure(err) && !a.svc.Session.IsAuthenticated() {
		a.status = "Session expired, please log in again"
		return a.navigate(router.PathLogin), true
	}
	a.err = err
	if a.form != nil {
		// A completed form cannot be resubmitted; offer a fresh one
		return a.enter(), true
	}
	return nil, true
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.router.Current() {
	case router.PathLogin:
		switch msg.String() {
		case "ctrl+r":
			return a, a.navigate(router.PathRegister)
		case "ctrl+a":
			return a, a.navigate(router.PathAdminLogin)
		}
	}
	a.err = nil
	_, cmd := a.form.Update(msg)
	return a, cmd
}

func (a *App) handleCancelled(msg forms.CancelledMsg) (tea.Model, tea.Cmd) {
	switch msg.Kind {
	case forms.KindLogin:
		return a, tea.Quit
	case forms.KindAdminLogin, forms.KindRegister:
		return a, a.navigate(router.PathLogin)
	case forms.KindBook:
		return a, a.navigate(router.PathBooks)
	case forms.KindQuote:
		return a, a.navigate(router.PathQuotes)
	}
	return a, nil
}

// updateKeys handles keys on list and dashboard screens
func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.list != nil && a.list.Update(msg) {
		return a, nil
	}

	key := msg.String()
	switch key {
	case "q":
		return a, tea.Quit
	case "L":
		a.svc.Session.Logout()
		a.status = "Logged out"
		a.books, a.quotes, a.adminData = nil, nil, nil
		return a, a.navigate(router.PathLogin)
	case "t":
		theme, err := a.svc.Preferences.ToggleTheme()
		if err != nil {
			a.err = err
			return a, nil
		}
		styles.Apply(theme)
		return a, nil
	case "l":
		lang := library.LanguageSwedish
		if a.svc.Preferences.Language() == library.LanguageSwedish {
			lang = library.LanguageEnglish
		}
		if err := a.svc.Preferences.SetLanguage(lang); err != nil {
			a.err = err
		}
		return a, nil
	case "1":
		return a, a.navigate(router.PathBooks)
	case "2":
		a.quoteBook = nil
		return a, a.navigate(router.PathQuotes)
	case "3":
		return a, a.navigate(router.PathFavourites)
	case "4":
		return a, a.navigate(router.PathAdminDashboard)
	case "5":
		return a, a.navigate(router.PathAdminUsers)
	case "6":
		return a, a.navigate(router.PathAdminBooks)
	case "7":
		return a, a.navigate(router.PathAdminQuotes)
	}

	switch a.router.Current() {
	case router.PathBooks:
		return a.updateBooks(key)
	case router.PathQuotes:
		return a.updateQuotes(key)
	case router.PathFavourites:
		return a.updateFavourites(key)
	case router.PathAdminDashboard:
		if key == "r" {
			return a, a.load(a.loadDashboard())
		}
	case router.PathAdminUsers, router.PathAdminBooks, router.PathAdminQuotes:
		return a.updateAdminList(key)
	}
	return a, nil
}

func (a *App) updateBooks(key string) (tea.Model, tea.Cmd) {
	item, selected := a.list.Selected()
	switch key {
	case "r":
		return a, a.load(a.loadBooks())
	case "n":
		a.editing = nil
		return a, a.navigate(router.PathBookNew)
	case "e":
		if book := a.findBook(item.ID); selected && book != nil {
			a.editing = book
			return a, a.navigate(router.PathBookEdit)
		}
	case "enter":
		if book := a.findBook(item.ID); selected && book != nil {
			a.quoteBook = book
			return a, a.navigate(router.PathQuotes)
		}
	case "d":
		if selected {
			id := item.ID
			return a, a.load(a.run(func(ctx context.Context) error {
				return a.svc.Books.Delete(ctx, id)
			}, "Book deleted", ""))
		}
	}
	return a, nil
}

func (a *App) updateQuotes(key string) (tea.Model, tea.Cmd) {
	item, selected := a.list.Selected()
	switch key {
	case "r":
		return a, a.load(a.loadQuotes())
	case "n":
		return a, a.navigate(router.PathQuoteNew)
	case "b", "esc":
		return a, a.navigate(router.PathBooks)
	case "s":
		if selected {
			a.toggleFavourite(item.ID)
			a.list.SetItems(a.quoteItems(a.quotes))
		}
	case "d":
		if selected {
			id := item.ID
			return a, a.load(a.run(func(ctx context.Context) error {
				return a.svc.Quotes.Delete(ctx, id)
			}, "Quote deleted", ""))
		}
	}
	return a, nil
}

func (a *App) updateFavourites(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "s", "d":
		if item, ok := a.list.Selected(); ok {
			if _, err := a.svc.Favourites.Remove(item.ID); err != nil {
				a.err = err
			}
			a.list.SetItems(a.quoteItems(a.svc.Favourites.List()))
		}
	case "b", "esc":
		return a, a.navigate(router.PathBooks)
	}
	return a, nil
}

func (a *App) updateAdminList(key string) (tea.Model, tea.Cmd) {
	item, selected := a.list.Selected()
	switch key {
	case "r":
		return a, a.load(a.loadDashboard())
	case "b", "esc":
		return a, a.navigate(router.PathAdminDashboard)
	case "d":
		if !selected {
			return a, nil
		}
		id := item.ID
		switch a.router.Current() {
		case router.PathAdminUsers:
			return a, a.load(a.run(func(ctx context.Context) error {
				return a.svc.Admin.DeleteUser(ctx, id)
			}, "User deleted", ""))
		case router.PathAdminBooks:
			return a, a.load(a.run(func(ctx context.Context) error {
				return a.svc.Admin.DeleteBook(ctx, id)
			}, "Book deleted", ""))
		case router.PathAdminQuotes:
			return a, a.load(a.run(func(ctx context.Context) error {
				return a.svc.Admin.DeleteQuote(ctx, id)
			}, "Quote deleted", ""))
		}
	case "p":
		if selected && a.router.Current() == router.PathAdminUsers {
			id := item.ID
			role := session.RoleAdmin
			if strings.EqualFold(item.Detail, session.RoleAdmin) {
				role = session.RoleUser
			}
			return a, a.load(a.run(func(ctx context.Context) error {
				return a.svc.Admin.UpdateUserRole(ctx, id, role)
			}, "Role updated", ""))
		}
	}
	return a, nil
}

func (a *App) toggleFavourite(id int) {
	if a.svc.Favourites.Contains(id) {
		if _, err := a.svc.Favourites.Remove(id); err != nil {
			a.err = err
		}
		a.status = "Removed from favourites"
		return
	}
	for _, q := range a.quotes {
		if q.ID == id {
			if _, err := a.svc.Favourites.Add(q); err != nil {
				a.err = err
			}
			a.status = "Added to favourites"
			return
		}
	}
}

// submit turns a completed form into the matching request
func (a *App) submit(f *forms.Form) tea.Cmd {
	a.loading = true
	switch f.Kind() {
	case forms.KindLogin:
		creds := f.Credentials()
		return a.authenticate(func(ctx context.Context) (*session.AuthResponse, error) {
			return a.svc.Session.Login(ctx, creds)
		})
	case forms.KindAdminLogin:
		creds := f.Credentials()
		return a.authenticate(func(ctx context.Context) (*session.AuthResponse, error) {
			return a.svc.Session.AdminLogin(ctx, creds)
		})
	case forms.KindRegister:
		req := f.RegisterRequest()
		return a.authenticate(func(ctx context.Context) (*session.AuthResponse, error) {
			return a.svc.Session.Register(ctx, req)
		})
	case forms.KindBook:
		book := f.Book()
		if book.ID > 0 {
			return a.run(func(ctx context.Context) error {
				_, err := a.svc.Books.Update(ctx, book.ID, book)
				return err
			}, "Book updated", router.PathBooks)
		}
		return a.run(func(ctx context.Context) error {
			_, err := a.svc.Books.Create(ctx, book)
			return err
		}, "Book added", router.PathBooks)
	case forms.KindQuote:
		quote := f.Quote()
		return a.run(func(ctx context.Context) error {
			_, err := a.svc.Quotes.Create(ctx, quote)
			return err
		}, "Quote added", router.PathQuotes)
	}
	a.loading = false
	return nil
}

func (a *App) authenticate(fn func(ctx context.Context) (*session.AuthResponse, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		resp, err := fn(ctx)
		return authDoneMsg{resp: resp, err: err}
	}
}

// run executes a mutation and reports status, then navigates to next
func (a *App) run(fn func(ctx context.Context) error, status, next string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: status, next: next}
	}
}

func (a *App) loadBooks() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		books, err := a.svc.Books.List(ctx)
		return booksLoadedMsg{books: books, err: err}
	}
}

func (a *App) loadQuotes() tea.Cmd {
	book := a.quoteBook
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		var (
			quotes []library.Quote
			err    error
		)
		if book != nil {
			quotes, err = a.svc.Quotes.ListByBook(ctx, book.ID)
		} else {
			quotes, err = a.svc.Quotes.List(ctx)
		}
		return quotesLoadedMsg{quotes: quotes, err: err}
	}
}

func (a *App) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		data, err := a.svc.Admin.LoadDashboard(ctx)
		return dashboardLoadedMsg{data: data, err: err}
	}
}

func (a *App) findBook(id int) *library.Book {
	for i := range a.books {
		if a.books[i].ID == id {
			return &a.books[i]
		}
	}
	return nil
}

func bookItems(books []library.Book) []listview.Item {
	items := make([]listview.Item, 0, len(books))
	for _, b := range books {
		detail := b.Author
		if b.PublicationDate != "" {
			detail += " · " + b.PublicationDate
		}
		items = append(items, listview.Item{ID: b.ID, Title: b.Title, Detail: detail})
	}
	return items
}

func (a *App) quoteItems(quotes []library.Quote) []listview.Item {
	items := make([]listview.Item, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, listview.Item{
			ID:     q.ID,
			Title:  "“" + q.Text + "”",
			Detail: q.Author,
			Marked: a.svc.Favourites.Contains(q.ID),
		})
	}
	return items
}

func (a *App) adminItems() []listview.Item {
	if a.adminData == nil {
		return nil
	}
	switch a.router.Current() {
	case router.PathAdminUsers:
		items := make([]listview.Item, 0, len(a.adminData.Users))
		for _, u := range a.adminData.Users {
			items = append(items, listview.Item{ID: u.ID, Title: u.Username, Detail: strings.ToLower(u.Role)})
		}
		return items
	case router.PathAdminBooks:
		return bookItems(a.adminData.Books)
	case router.PathAdminQuotes:
		return a.quoteItems(a.adminData.Quotes)
	}
	return nil
}

func (a *App) quotesTitle() string {
	if a.quoteBook != nil {
		return fmt.Sprintf("%s Quotes from %s", icons.Quote.String(), a.quoteBook.Title)
	}
	return icons.Quote.String() + " Quotes"
}

func (a *App) adminTitle() string {
	route, _ := router.Lookup(a.router.Current())
	return icons.Admin.String() + " " + route.Title
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch {
	case a.form != nil:
		content = a.viewForm()
	case a.router.Current() == router.PathAdminDashboard && a.dashboard != nil:
		content = styles.ActivePanel.Width(a.contentWidth()).Render(a.dashboard.View())
	case a.list != nil:
		content = styles.ActivePanel.Width(a.contentWidth()).Render(a.list.View(a.contentWidth()-panelPadding, a.contentHeight()-2))
	}

	if line := a.statusLine(); line != "" {
		content += "\n" + line
	}
	return a.wrapWithFrame(content)
}

func (a *App) viewForm() string {
	view := a.form.View()
	if a.loading {
		view += "\n" + a.spinner.View() + " Working..."
	}
	return styles.Panel.Width(a.contentWidth()).Render(view)
}

// statusLine shows the error, spinner, or last status message
func (a *App) statusLine() string {
	switch {
	case a.err != nil:
		return styles.StatusCritical.Render("Error: " + errorText(a.err))
	case a.loading && a.form == nil:
		return a.spinner.View() + " Loading..."
	case a.status != "":
		return styles.StatusOK.Render(a.status)
	}
	return ""
}

// errorText prefers the backend's own message
func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// frameWidth is the terminal width, clamped to a usable minimum
func (a *App) frameWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth
	}
	return a.width
}

// contentWidth is the width available inside the frame
func (a *App) contentWidth() int {
	return a.frameWidth() - panelPadding
}

// contentHeight is the height available between header and footer
func (a *App) contentHeight() int {
	// header, blank, panel border+padding (4), status, footer
	h := a.height - 8
	if h < 5 {
		return 5
	}
	return h
}

// renderHeader creates the header bar with app branding and identity
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("BookQuotes"))

	rightText := ""
	if a.svc.Session.IsAuthenticated() {
		who := a.svc.Session.CurrentUsername()
		if who == "" {
			who = "signed in"
		}
		icon := icons.User
		if a.svc.Session.IsAdmin() {
			icon = icons.Admin
		}
		rightText = " " + contextStyle.Render(icon.String()+" "+who) + " "
	}
	rightText += "[" + a.svc.Preferences.Language() + "] "

	fillWidth := width - 4 - lipgloss.Width(leftText) - lipgloss.Width(rightText)
	if fillWidth < 0 {
		fillWidth = 0
	}

	return borderStyle.Render("╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮")
}

// shortcuts lists the keys for the current screen
func (a *App) shortcuts() []string {
	if a.form != nil {
		switch a.router.Current() {
		case router.PathLogin:
			return []string{"Enter Next", "^R Register", "^A Admin", "Esc Quit"}
		default:
			return []string{"Enter Next", "Esc Back"}
		}
	}

	var keys []string
	switch a.router.Current() {
	case router.PathBooks:
		keys = []string{"n New", "e Edit", "Enter Quotes", "d Delete"}
	case router.PathQuotes:
		keys = []string{"n New", "s Star", "d Delete", "b Back"}
	case router.PathFavourites:
		keys = []string{"s Unstar", "b Back"}
	case router.PathAdminDashboard:
		keys = []string{"5 Users", "6 Books", "7 Quotes", "r Refresh"}
	case router.PathAdminUsers:
		keys = []string{"p Role", "d Delete", "b Back"}
	case router.PathAdminBooks, router.PathAdminQuotes:
		keys = []string{"d Delete", "b Back"}
	}
	return append(keys, "t Theme", "l Lang", "L Logout", "q Quit")
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := styles.KeyStyle
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	shortcuts := a.shortcuts()
	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
	}

	leftText := " " + strings.Join(styled, "  ") + " "
	leftPlain := " " + strings.Join(shortcuts, "  ") + " "

	rightText, rightPlain := "", ""
	if !a.lastUpdate.IsZero() && a.form == nil {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlain = "Updated " + elapsed + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlain) - lipgloss.Width(rightPlain)
	if fillWidth < 0 && rightPlain != "" {
		fillWidth += lipgloss.Width(rightPlain)
		rightText = ""
	}
	if fillWidth < 0 {
		fillWidth = 0
	}

	return borderStyle.Render("╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯")
}

// formatTimeSince formats a duration since t in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(svc Services, timeout time.Duration) error {
	p := tea.NewProgram(
		New(svc, timeout),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
