package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Alienware2000/intentionality/internal/tui/theme"
)

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Ruler    lipgloss.Style

	Class lipgloss.Style
	Habit lipgloss.Style
	Task  lipgloss.Style

	SelectedClass lipgloss.Style
	SelectedHabit lipgloss.Style
	SelectedTask  lipgloss.Style

	Completed lipgloss.Style
	Hover     lipgloss.Style
	Now       lipgloss.Style

	Help    lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	FormLabel  lipgloss.Style
	FormActive lipgloss.Style
	FormBox    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	base := lipgloss.NewStyle().Foreground(theme.Color(t.Fg))

	kind := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(theme.Color(hex))
	}
	selected := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(theme.Color(t.Bg)).Background(theme.Color(hex))
	}

	return &Styles{
		Title:    base.Bold(true).Foreground(theme.Color(t.Accent)),
		Subtitle: base.Foreground(theme.Color(t.FgMuted)),
		Ruler:    base.Foreground(theme.Color(t.FgMuted)),

		Class: kind(t.Class),
		Habit: kind(t.Habit),
		Task:  kind(t.Task),

		SelectedClass: selected(t.Class),
		SelectedHabit: selected(t.Habit),
		SelectedTask:  selected(t.Task),

		Completed: base.Foreground(theme.Color(t.FgMuted)).Strikethrough(true),
		Hover:     base.Background(theme.Color(t.BgSelection)),
		Now:       base.Foreground(theme.Color(t.Now)),

		Help:    base.Foreground(theme.Color(t.FgMuted)),
		Status:  base.Foreground(theme.Color(t.Habit)),
		Error:   base.Foreground(theme.Color(t.Now)),
		Warning: base.Foreground(theme.Color(t.Warning)),

		FormLabel:  base.Foreground(theme.Color(t.FgMuted)),
		FormActive: base.Bold(true).Foreground(theme.Color(t.Accent)),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(t.Accent)).
			Background(theme.Color(t.BgHighlight)).
			Padding(0, 1),
	}
}
