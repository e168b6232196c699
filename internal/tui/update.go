package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		debugKey(msg.String(), int(m.mode))
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case DayLoadedMsg:
		m.day = msg.Date
		m.blocks = msg.Blocks
		m.loading = false
		if m.selected >= len(m.blocks) {
			m.selected = len(m.blocks) - 1
		}
		m.clampCursor()
		debugEvent("day_loaded", map[string]any{
			"date":   msg.Date.Format("2006-01-02"),
			"blocks": len(msg.Blocks),
		})
		return m, nil

	case TickMsg:
		// Re-render moves the now marker; nothing else changes.
		return m, TickOnMinute()

	case ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		m.loading = false
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return ClearStatusMsg{}
		})

	case ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form.title, cmd = m.form.title.Update(msg)
		return m, cmd
	}

	return m, nil
}

// clampCursor keeps the hover cursor inside the timeline area.
func (m *Model) clampCursor() {
	if rows := m.timelineRows(); m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
