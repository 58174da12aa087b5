// ABOUTME: Admin dashboard component showing aggregate counts and section health
// ABOUTME: Renders whatever loaded and flags the sections that failed

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/library"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/icons"
	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/tui/styles"
)

const blockWidth = 22

// recentLimit caps the users listed under the stats
const recentLimit = 5

// Dashboard displays the admin overview
type Dashboard struct {
	data   *library.Dashboard
	width  int
	height int
}

// New creates a dashboard over loaded data
func New(data *library.Dashboard, width, height int) *Dashboard {
	return &Dashboard{data: data, width: width, height: height}
}

// SetData replaces the dashboard data
func (d *Dashboard) SetData(data *library.Dashboard) {
	d.data = data
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.data == nil {
		return styles.Subtitle.Render("Loading dashboard...")
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Admin.String() + " Admin Dashboard"))
	sb.WriteString("\n")

	blocks := []string{
		statBlock(icons.User, "Users", d.data.Stats.TotalUsers, len(d.data.Users), d.failed(library.SectionStats)),
		statBlock(icons.Book, "Books", d.data.Stats.TotalBooks, len(d.data.Books), d.failed(library.SectionStats)),
		statBlock(icons.Quote, "Quotes", d.data.Stats.TotalQuotes, len(d.data.Quotes), d.failed(library.SectionStats)),
	}
	if d.width > 0 && d.width < blockWidth*3+2 {
		sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	} else {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	sb.WriteString("\n\n")

	sb.WriteString(styles.ValueStyle.Render("Recent users"))
	sb.WriteString("\n")
	if len(d.data.Users) == 0 {
		sb.WriteString(styles.Subtitle.Render("  none"))
		sb.WriteString("\n")
	}
	for i, u := range d.data.Users {
		if i == recentLimit {
			sb.WriteString(fmt.Sprintf("  … and %d more\n", len(d.data.Users)-recentLimit))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s %-20s %s\n", icons.User.String(), u.Username, roleBadge(u.Role)))
	}

	if errs := d.sectionErrors(); errs != "" {
		sb.WriteString("\n")
		sb.WriteString(errs)
	}

	return lipgloss.NewStyle().
		Width(d.width).
		Render(strings.TrimRight(sb.String(), "\n"))
}

func (d *Dashboard) failed(section string) bool {
	_, ok := d.data.Errors[section]
	return ok
}

// sectionErrors lists failed sections in a fixed order
func (d *Dashboard) sectionErrors() string {
	var lines []string
	for _, section := range []string{library.SectionStats, library.SectionUsers, library.SectionBooks, library.SectionQuotes} {
		err, ok := d.data.Errors[section]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s: %v",
			styles.StatusCritical.Render(icons.Critical.String()), section, err))
	}
	return strings.Join(lines, "\n")
}

// statBlock renders a compact titled count. The listed count is shown
// beneath when it is known.
func statBlock(icon icons.Icon, title string, total, listed int, failed bool) string {
	innerWidth := blockWidth - 4

	titleStr := fmt.Sprintf("%s %s", icon.String(), title)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	topBorder := fmt.Sprintf("┌─ %s %s┐",
		titleStyle.Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1)))

	value := fmt.Sprintf("%d", total)
	valueStyle := styles.ValueStyle
	if failed {
		value = "n/a"
		valueStyle = styles.StatusWarning
	}
	subtitle := fmt.Sprintf("%d listed", listed)

	valueLine := "│  " + pad(valueStyle.Render(value), innerWidth) + "│"
	subtitleLine := "│  " + pad(lipgloss.NewStyle().Foreground(styles.Muted).Render(subtitle), innerWidth) + "│"
	bottomBorder := fmt.Sprintf("└%s┘", strings.Repeat("─", blockWidth-2))

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	return strings.Join([]string{
		borderStyle.Render(topBorder),
		borderStyle.Render(valueLine),
		borderStyle.Render(subtitleLine),
		borderStyle.Render(bottomBorder),
	}, "\n")
}

// pad right-pads a styled string to width visible cells
func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// roleBadge renders a colored inline role label
func roleBadge(role string) string {
	bg := styles.Muted
	if strings.EqualFold(role, "admin") {
		bg = styles.Primary
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Bold(true).
		Render(strings.ToLower(role))
}
