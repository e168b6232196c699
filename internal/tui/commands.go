package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/dateutil"
)

// DayLoadedMsg is sent when a day's blocks are loaded.
type DayLoadedMsg struct {
	Date   time.Time
	Blocks []*block.Block
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg clears the status line.
type ClearStatusMsg struct{}

// TickMsg fires on minute boundaries to move the now marker.
type TickMsg time.Time

// LoadDay loads the blocks for a single day.
func LoadDay(repo block.Repository, day time.Time) tea.Cmd {
	return func() tea.Msg {
		return reloadDay(repo, day)
	}
}

// reloadDay fetches a day's blocks synchronously. Mutation commands call it
// so the view refreshes in the same message.
func reloadDay(repo block.Repository, day time.Time) tea.Msg {
	day = dateutil.TruncateToDay(day)
	blocks, err := repo.ListBlocksByDate(context.Background(), day)
	if err != nil {
		return ErrMsg{Err: err}
	}
	return DayLoadedMsg{Date: day, Blocks: blocks}
}

// TickOnMinute schedules a TickMsg at the next minute boundary.
func TickOnMinute() tea.Cmd {
	now := time.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Msg: msg}
	}
}
