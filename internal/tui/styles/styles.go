// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Light and dark palettes; Apply rebuilds every style for the chosen theme

package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Accent    lipgloss.Color
}

// DarkPalette suits dark terminal backgrounds
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#10B981"), // Green
	Warning:   lipgloss.Color("#F59E0B"), // Amber
	Danger:    lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#6B7280"), // Gray
	Text:      lipgloss.Color("#F9FAFB"), // Light
	Surface:   lipgloss.Color("#374151"),
	Accent:    lipgloss.Color("#8B5CF6"),
}

// LightPalette suits light terminal backgrounds
var LightPalette = Palette{
	Primary:   lipgloss.Color("#6D28D9"),
	Secondary: lipgloss.Color("#047857"),
	Warning:   lipgloss.Color("#B45309"),
	Danger:    lipgloss.Color("#B91C1C"),
	Muted:     lipgloss.Color("#4B5563"),
	Text:      lipgloss.Color("#111827"),
	Surface:   lipgloss.Color("#E5E7EB"),
	Accent:    lipgloss.Color("#7C3AED"),
}

var (
	current = "light"

	// Colors of the active palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Accent    lipgloss.Color

	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	StatusOK       lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusCritical lipgloss.Style
	Panel          lipgloss.Style
	ActivePanel    lipgloss.Style
	Help           lipgloss.Style
	KeyStyle       lipgloss.Style
	ValueStyle     lipgloss.Style
	Selected       lipgloss.Style
	Normal         lipgloss.Style
)

func init() {
	Apply("light")
}

// Apply switches every style to the light or dark palette. Unknown themes
// fall back to light.
func Apply(theme string) {
	p := LightPalette
	current = "light"
	if theme == "dark" {
		p = DarkPalette
		current = "dark"
	}

	Primary, Secondary, Warning, Danger = p.Primary, p.Secondary, p.Warning, p.Danger
	Muted, Text, Surface, Accent = p.Muted, p.Text, p.Surface, p.Accent

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(Muted).
		MarginBottom(1)

	StatusOK = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	StatusCritical = lipgloss.NewStyle().
		Foreground(Danger).
		Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Normal = lipgloss.NewStyle().
		Foreground(Text)
}

// Current returns the active theme name
func Current() string {
	return current
}
