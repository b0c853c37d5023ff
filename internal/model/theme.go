package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidThemePreference is returned for a theme setting other than
// auto, dark or light.
var ErrInvalidThemePreference = errors.New("invalid theme preference")

// Theme is the dark-mode flag. It is set once at startup and afterwards
// changed only by Toggle.
type Theme struct {
	dark bool
}

// NewTheme creates a Theme from the host's reported color preference.
func NewTheme(prefersDark bool) Theme {
	return Theme{dark: prefersDark}
}

// Dark reports whether dark mode is on.
func (t Theme) Dark() bool {
	return t.dark
}

// Toggle flips dark mode.
func (t *Theme) Toggle() {
	t.dark = !t.dark
}

// String returns "dark" or "light".
func (t Theme) String() string {
	if t.dark {
		return "dark"
	}
	return "light"
}

// ThemePreference selects how the initial theme is chosen.
type ThemePreference string

const (
	ThemeAuto  ThemePreference = "auto"  // ask the terminal
	ThemeDark  ThemePreference = "dark"  // always start dark
	ThemeLight ThemePreference = "light" // always start light
)

// ParseThemePreference parses a config or flag value. Empty means auto.
func ParseThemePreference(s string) (ThemePreference, error) {
	switch p := ThemePreference(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ThemeAuto, nil
	case ThemeAuto, ThemeDark, ThemeLight:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, dark or light)", ErrInvalidThemePreference, s)
	}
}

// Resolve returns the initial dark-mode value. detect is only called for
// ThemeAuto.
func (p ThemePreference) Resolve(detect func() bool) bool {
	switch p {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return detect != nil && detect()
	}
}
