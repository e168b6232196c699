package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alienware2000/intentionality/internal/block"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "k", "up":
		m.cursor--
		m.clampCursor()
		return m, nil

	case "tab":
		return m.cycleSelection(1), nil

	case "shift+tab":
		return m.cycleSelection(-1), nil

	case "h", "left":
		m.loading = true
		m.selected = -1
		return m, LoadDay(m.repo, m.day.AddDate(0, 0, -1))

	case "l", "right":
		m.loading = true
		m.selected = -1
		return m, LoadDay(m.repo, m.day.AddDate(0, 0, 1))

	case "t":
		m.loading = true
		m.selected = -1
		today := m.nowFunc()
		return m, LoadDay(m.repo, today)

	case "r":
		m.loading = true
		return m, LoadDay(m.repo, m.day)

	case "a", "enter":
		slot, ok := m.hoverSlot()
		if !ok {
			return m, statusCmd("No room for a block here")
		}
		m.mode = ModeForm
		m.form.slot = slot
		m.form.kind = 0
		m.form.title.SetValue("")
		m.form.title.Focus()
		return m, nil

	case " ":
		b := m.selectedBlock()
		if b == nil {
			return m, statusCmd("Nothing selected (tab to select)")
		}
		if !b.Completable() {
			return m, statusCmd("Classes cannot be completed")
		}
		return m, m.toggleCompleted(b)

	case "d", "x":
		b := m.selectedBlock()
		if b == nil {
			return m, statusCmd("Nothing selected (tab to select)")
		}
		m.mode = ModeConfirmDelete
		m.confirmID = b.ID
		return m, nil

	case "y":
		if err := clipboard.WriteAll(m.dayText()); err != nil {
			return m, statusCmd("Clipboard unavailable")
		}
		return m, statusCmd("Day copied to clipboard")
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.form.title.Blur()
		return m, nil

	case "tab":
		m.form.kind = (m.form.kind + 1) % len(formKinds)
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.form.title.Value())
		if title == "" {
			return m, statusCmd("Title required")
		}
		m.mode = ModeNormal
		m.form.title.Blur()
		return m, m.createBlock(title, formKinds[m.form.kind], m.form.slot.Interval.Start, m.form.slot.Interval.End)
	}

	var cmd tea.Cmd
	m.form.title, cmd = m.form.title.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.mode = ModeNormal
		m.selected = -1
		return m, func() tea.Msg {
			if err := m.repo.DeleteBlock(context.Background(), id); err != nil {
				return ErrMsg{Err: err}
			}
			return reloadDay(m.repo, m.day)
		}
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

// cycleSelection moves the block selection by delta, wrapping around.
func (m Model) cycleSelection(delta int) Model {
	if len(m.blocks) == 0 {
		return m
	}
	m.selected = ((m.selected+delta)%len(m.blocks) + len(m.blocks)) % len(m.blocks)
	return m
}

func (m Model) toggleCompleted(b *block.Block) tea.Cmd {
	repo, day := m.repo, m.day
	id, next := b.ID, !b.Completed
	return func() tea.Msg {
		if err := repo.SetBlockCompleted(context.Background(), id, next); err != nil {
			return ErrMsg{Err: err}
		}
		return reloadDay(repo, day)
	}
}

func (m Model) createBlock(title, kind string, startMin, endMin int) tea.Cmd {
	repo, day := m.repo, m.day
	return func() tea.Msg {
		b, err := block.New(title, kind, day.Format("2006-01-02"),
			block.MinutesToClock(startMin), block.MinutesToClock(endMin))
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.CreateBlock(context.Background(), b); err != nil {
			return ErrMsg{Err: err}
		}
		return reloadDay(repo, day)
	}
}

// dayText renders the day as plain text for the clipboard.
func (m Model) dayText() string {
	var sb strings.Builder
	sb.WriteString(m.day.Format("Monday, January 2, 2006") + "\n")
	for _, b := range m.blocks {
		mark := " "
		if b.Completed {
			mark = "x"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s-%s %s (%s)\n", mark, b.Start, b.End, b.Title, b.Kind))
	}
	return sb.String()
}
