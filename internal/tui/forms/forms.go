// ABOUTME: Login, registration, book, and quote forms as bubbletea models
// ABOUTME: Wraps huh forms and reports completion or cancellation as messages

package forms

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/session"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/styles"
)

// Kind identifies what a form collects
type Kind int

const (
	KindLogin Kind = iota
	KindAdminLogin
	KindRegister
	KindBook
	KindQuote
)

// SubmittedMsg is sent when a form completes
type SubmittedMsg struct {
	Form *Form
}

// CancelledMsg is sent when the user leaves a form with esc
type CancelledMsg struct {
	Kind Kind
}

// Form is one data-entry screen
type Form struct {
	kind  Kind
	form  *huh.Form
	width int

	// Field values (strings for huh)
	username        string
	password        string
	confirm         string
	title           string
	author          string
	publicationDate string
	description     string
	text            string
	bookID          string

	id int
}

// NewLogin creates the login form; admin selects the admin login variant
func NewLogin(admin bool) *Form {
	f := &Form{kind: KindLogin}
	title := "Log in"
	if admin {
		f.kind = KindAdminLogin
		title = "Admin log in"
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&f.username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(required("password")),
		).Title(title),
	).WithTheme(createTheme())
	return f
}

// NewRegister creates the registration form
func NewRegister() *Form {
	f := &Form{kind: KindRegister}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&f.username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				Description("At least 6 characters").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validatePassword),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&f.confirm).
				Validate(func(s string) error {
					if s != f.password {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		).Title("Register").
			Description("Create an account"),
	).WithTheme(createTheme())
	return f
}

// NewBook creates the book form. A non-nil existing book is edited in place.
func NewBook(existing *library.Book) *Form {
	f := &Form{kind: KindBook}
	groupTitle := "Add Book"
	if existing != nil {
		groupTitle = "Edit Book"
		f.id = existing.ID
		f.title = existing.Title
		f.author = existing.Author
		f.publicationDate = existing.PublicationDate
		f.description = existing.Description
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.title).
				Validate(required("title")),
			huh.NewInput().
				Title("Author").
				Value(&f.author).
				Validate(required("author")),
			huh.NewInput().
				Title("Publication date").
				Placeholder("YYYY-MM-DD").
				CharLimit(10).
				Value(&f.publicationDate),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&f.description),
		).Title(groupTitle),
	).WithTheme(createTheme())
	return f
}

// NewQuote creates the quote form with books offered for attachment
func NewQuote(books []library.Book, bookID int) *Form {
	f := &Form{kind: KindQuote, bookID: strconv.Itoa(bookID)}

	options := []huh.Option[string]{huh.NewOption("No book", "0")}
	for _, b := range books {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", b.Title, b.Author), strconv.Itoa(b.ID)))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Quote").
				Lines(3).
				Value(&f.text).
				Validate(required("quote text")),
			huh.NewInput().
				Title("Author").
				Value(&f.author),
			huh.NewSelect[string]().
				Title("Book").
				Options(options...).
				Value(&f.bookID),
		).Title("Add Quote"),
	).WithTheme(createTheme())
	return f
}

// Kind returns what the form collects
func (f *Form) Kind() Kind {
	return f.kind
}

// Credentials returns the login values
func (f *Form) Credentials() session.Credentials {
	return session.Credentials{Username: strings.TrimSpace(f.username), Password: f.password}
}

// RegisterRequest returns the registration values
func (f *Form) RegisterRequest() session.RegisterRequest {
	return session.RegisterRequest{Username: strings.TrimSpace(f.username), Password: f.password}
}

// Book returns the book values; ID is set when editing
func (f *Form) Book() library.Book {
	return library.Book{
		ID:              f.id,
		Title:           strings.TrimSpace(f.title),
		Author:          strings.TrimSpace(f.author),
		PublicationDate: strings.TrimSpace(f.publicationDate),
		Description:     strings.TrimSpace(f.description),
	}
}

// Quote returns the quote values
func (f *Form) Quote() library.Quote {
	bookID, _ := strconv.Atoi(f.bookID)
	return library.Quote{
		Text:   strings.TrimSpace(f.text),
		Author: strings.TrimSpace(f.author),
		BookID: bookID,
	}
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.form.State != huh.StateNormal {
		return f, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			kind := f.kind
			return f, func() tea.Msg { return CancelledMsg{Kind: kind} }
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		return f, func() tea.Msg { return SubmittedMsg{Form: f} }
	case huh.StateAborted:
		kind := f.kind
		return f, func() tea.Msg { return CancelledMsg{Kind: kind} }
	}
	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	return f.form.View()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePassword(s string) error {
	if len(s) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

// createTheme returns a huh theme built from the active palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("  ")

	return t
}
