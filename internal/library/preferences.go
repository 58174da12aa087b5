// ABOUTME: Client-side preferences persisted beside the session
// ABOUTME: Language and theme with enum validation and defaults

package library

import (
	"fmt"
	"strings"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

// Supported languages
const (
	LanguageEnglish = "en"
	LanguageSwedish = "sv"
)

// Supported themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Languages lists the accepted language codes
var Languages = []string{LanguageEnglish, LanguageSwedish}

// Themes lists the accepted themes
var Themes = []string{ThemeLight, ThemeDark}

// Preferences reads and writes language and theme
type Preferences struct {
	store store.Store
}

// NewPreferences creates Preferences over s
func NewPreferences(s store.Store) *Preferences {
	return &Preferences{store: s}
}

// Language returns the stored language, defaulting to English
func (p *Preferences) Language() string {
	return p.get(store.KeyLanguage, Languages, LanguageEnglish)
}

// SetLanguage stores lang if it is supported
func (p *Preferences) SetLanguage(lang string) error {
	return p.set(store.KeyLanguage, "language", lang, Languages)
}

// Theme returns the stored theme, defaulting to light
func (p *Preferences) Theme() string {
	return p.get(store.KeyTheme, Themes, ThemeLight)
}

// SetTheme stores theme if it is supported
func (p *Preferences) SetTheme(theme string) error {
	return p.set(store.KeyTheme, "theme", theme, Themes)
}

// ToggleTheme flips between light and dark and returns the new theme
func (p *Preferences) ToggleTheme() (string, error) {
	next := ThemeDark
	if p.Theme() == ThemeDark {
		next = ThemeLight
	}
	if err := p.SetTheme(next); err != nil {
		return "", err
	}
	return next, nil
}

func (p *Preferences) get(key string, allowed []string, fallback string) string {
	value, ok := p.store.Get(key)
	if !ok || !contains(allowed, value) {
		return fallback
	}
	return value
}

func (p *Preferences) set(key, name, value string, allowed []string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if !contains(allowed, value) {
		return validationf("unsupported %s %q (want one of %s)", name, value, strings.Join(allowed, ", "))
	}
	if err := p.store.Set(key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func parseRole(role string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	switch normalized {
	case "user", "admin":
		return normalized, nil
	}
	return "", validationf("unsupported role %q (want user or admin)", role)
}
