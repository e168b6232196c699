// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Block fill, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, hover slot
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Hour ruler, secondary text
	Accent      string `toml:"accent"`       // Title, borders
	Class       string `toml:"class"`        // Class blocks
	Habit       string `toml:"habit"`        // Habit blocks
	Task        string `toml:"task"`         // Task blocks
	Now         string `toml:"now"`          // Now marker
	Warning     string `toml:"warning"`      // Warnings, confirms
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return &t, nil
}

// KindColor returns the block color for a kind name.
func (t *Theme) KindColor(kind string) lipgloss.Color {
	switch kind {
	case "class":
		return Color(t.Class)
	case "habit":
		return Color(t.Habit)
	default:
		return Color(t.Task)
	}
}

// Available returns the list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
