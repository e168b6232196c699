package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Alienware2000/intentionality/internal/block"
)

// Color definitions for consistent styling across the UI.
var (
	// Classes: blue, fixed commitments
	colorClass = color.New(color.FgBlue, color.Bold)

	// Habits: green, routines
	colorHabit = color.New(color.FgGreen)

	// Tasks: yellow, one-off work
	colorTask = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatKind colors a string by block kind.
func formatKind(k block.Kind, s string) string {
	switch k {
	case block.KindClass:
		return colorClass.Sprint(s)
	case block.KindHabit:
		return colorHabit.Sprint(s)
	default:
		return colorTask.Sprint(s)
	}
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
