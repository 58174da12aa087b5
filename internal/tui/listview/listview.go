// ABOUTME: Cursor-driven list for books, quotes, favourites, and users
// ABOUTME: Scrolls to keep the selection visible within the available height

package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/icons"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/styles"
)

// Item is one row
type Item struct {
	ID     int
	Title  string
	Detail string
	Marked bool
}

// List is a selectable list of items
type List struct {
	title  string
	empty  string
	items  []Item
	cursor int
}

// New creates an empty list. empty is shown when there are no items.
func New(title, empty string) *List {
	return &List{title: title, empty: empty}
}

// SetItems replaces the items, keeping the cursor in range
func (l *List) SetItems(items []Item) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// SetTitle replaces the heading
func (l *List) SetTitle(title string) {
	l.title = title
}

// Len returns the number of items
func (l *List) Len() int {
	return len(l.items)
}

// Cursor returns the selected index
func (l *List) Cursor() int {
	return l.cursor
}

// Selected returns the item under the cursor
func (l *List) Selected() (Item, bool) {
	if len(l.items) == 0 {
		return Item{}, false
	}
	return l.items[l.cursor], true
}

// Update moves the cursor. It reports whether the key was handled.
func (l *List) Update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.items)-1 {
			l.cursor++
		}
	case "home", "g":
		l.cursor = 0
	case "end", "G":
		if len(l.items) > 0 {
			l.cursor = len(l.items) - 1
		}
	default:
		return false
	}
	return true
}

// View renders at most height rows of items
func (l *List) View(width, height int) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(l.title))
	sb.WriteString("\n")

	if len(l.items) == 0 {
		sb.WriteString(styles.Subtitle.Render(l.empty))
		return sb.String()
	}

	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	start := 0
	if l.cursor >= rows {
		start = l.cursor - rows + 1
	}
	end := start + rows
	if end > len(l.items) {
		end = len(l.items)
	}

	for i := start; i < end; i++ {
		sb.WriteString(l.renderItem(i, width))
		sb.WriteString("\n")
	}
	if end < len(l.items) {
		sb.WriteString(styles.Subtitle.Render("  ↓ more"))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (l *List) renderItem(i, width int) string {
	item := l.items[i]
	prefix := "  "
	titleStyle := styles.Normal
	if i == l.cursor {
		prefix = "> "
		titleStyle = styles.Selected
	}
	mark := "  "
	if item.Marked {
		mark = lipgloss.NewStyle().Foreground(styles.Warning).Render(icons.Favourite.String()) + " "
	}

	line := prefix + mark + titleStyle.Render(item.Title)
	if item.Detail != "" {
		line += "  " + lipgloss.NewStyle().Foreground(styles.Muted).Render(item.Detail)
	}
	if width > 0 && lipgloss.Width(line) > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
