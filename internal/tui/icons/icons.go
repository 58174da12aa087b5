// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	if env := os.Getenv("BOOKQUOTES_NERD_FONTS"); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range []string{"iTerm.app", "alacritty", "WezTerm", "kitty", "ghostty"} {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	return os.Getenv("NERD_FONTS") == "1"
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

var (
	// Content
	Book      = Icon{"󰂺", "▤"} // nf-md-book_open_variant
	Quote     = Icon{"󰝗", "❝"} // nf-md-format_quote_open
	Favourite = Icon{"󰓎", "★"} // nf-md-star
	User      = Icon{"󰀄", "☺"} // nf-md-account
	Admin     = Icon{"󰒃", "⛊"} // nf-md-shield_check

	// Status
	CheckOK  = Icon{"", "✓"}
	Critical = Icon{"", "✗"}
	Info     = Icon{"", "ℹ"}

	// Actions
	Add     = Icon{"󰐕", "+"}
	Edit    = Icon{"󰏫", "✎"}
	Delete  = Icon{"󰆴", "−"}
	Refresh = Icon{"󰑓", "↻"}
	Back    = Icon{"󰁍", "←"}
	Logout  = Icon{"󰍃", "⏻"}
	Quit    = Icon{"󰗼", "×"}

	// Application
	App      = Icon{"󱉟", "◈"} // nf-md-bookshelf
	Settings = Icon{"󰒓", "⚙"}
)
