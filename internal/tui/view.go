package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/timeline"
)

// Cell style classes for the day grid.
const (
	csNone = iota
	csRuler
	csClass
	csHabit
	csTask
	csSelClass
	csSelHabit
	csSelTask
	csCompleted
	csHover
	csNow
)

func (m Model) cellStyle(id int) lipgloss.Style {
	switch id {
	case csRuler:
		return m.styles.Ruler
	case csClass:
		return m.styles.Class
	case csHabit:
		return m.styles.Habit
	case csTask:
		return m.styles.Task
	case csSelClass:
		return m.styles.SelectedClass
	case csSelHabit:
		return m.styles.SelectedHabit
	case csSelTask:
		return m.styles.SelectedTask
	case csCompleted:
		return m.styles.Completed
	case csHover:
		return m.styles.Hover
	case csNow:
		return m.styles.Now
	default:
		return lipgloss.NewStyle()
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	header := m.headerView()
	var body string
	switch m.mode {
	case ModeForm:
		body = m.formView()
	case ModeConfirmDelete:
		body = m.confirmView()
	default:
		body = m.timelineView()
	}
	footer := m.footerView()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) headerView() string {
	title := m.styles.Title.Render(m.day.Format("Monday, January 2, 2006"))
	sub := fmt.Sprintf("%d blocks", len(m.blocks))
	if m.loading {
		sub = "loading..."
	}
	return title + "  " + m.styles.Subtitle.Render(sub)
}

func (m Model) footerView() string {
	help := "j/k move · tab select · a add · space done · d delete · h/l day · t today · y copy · q quit"
	line := m.styles.Help.Render(ansi.Truncate(help, m.width, "…"))
	if m.statusMsg != "" {
		style := m.styles.Status
		if m.err != nil && strings.HasPrefix(m.statusMsg, "Error") {
			style = m.styles.Error
		}
		return style.Render(ansi.Truncate(m.statusMsg, m.width, "…")) + "\n" + line
	}
	return line
}

// timelineView draws the day grid. One terminal cell is one pixel.
func (m Model) timelineView() string {
	win := m.window()
	dims := m.dims()
	rows := m.timelineRows()
	cols := m.width
	if rows <= 0 || cols <= 1 {
		return ""
	}

	runes := make([][]rune, rows)
	styleIDs := make([][]int, rows)
	for r := 0; r < rows; r++ {
		runes[r] = make([]rune, cols)
		styleIDs[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			runes[r][c] = ' '
		}
	}
	set := func(r, c int, ch rune, id int) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			runes[r][c] = ch
			styleIDs[r][c] = id
		}
	}

	m.paintRuler(set, win, dims)
	m.paintHover(runes, styleIDs, set, win, dims)
	m.paintBlocks(set, win, dims)
	m.paintNowMarker(runes, styleIDs, set, win, dims, rows, cols)

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		start := 0
		for c := 1; c <= cols; c++ {
			if c == cols || styleIDs[r][c] != styleIDs[r][start] {
				run := string(runes[r][start:c])
				if id := styleIDs[r][start]; id != csNone {
					sb.WriteString(m.cellStyle(id).Render(run))
				} else {
					sb.WriteString(run)
				}
				start = c
			}
		}
		if r < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) paintRuler(set func(int, int, rune, int), win timeline.Window, dims timeline.Dimensions) {
	hourHeight := int(dims.HourHeight)
	gutter := int(dims.TimeLabelWidth)
	for h := 0; h < win.Hours(); h++ {
		r := h * hourHeight
		label := block.FormatHourLabel(win.StartHour + h)
		for i, ch := range label {
			set(r, gutter-3-len(label)+i, ch, csRuler)
		}
		set(r, gutter-2, '┤', csRuler)
		for rr := r + 1; rr < r+hourHeight; rr++ {
			set(rr, gutter-2, '│', csRuler)
		}
	}
	// cursor row indicator
	set(m.cursor, 0, '▸', csRuler)
}

func (m Model) paintHover(runes [][]rune, styleIDs [][]int, set func(int, int, rune, int), win timeline.Window, dims timeline.Dimensions) {
	if m.mode != ModeNormal {
		return
	}
	slot, ok := m.hoverSlot()
	if !ok {
		return
	}

	hourHeight := dims.HourHeight
	top := int(math.Round(float64(slot.Interval.Start-win.StartMinutes()) / 60.0 * hourHeight))
	height := int(math.Round(float64(slot.Interval.Minutes()) / 60.0 * hourHeight))
	gutter := int(dims.TimeLabelWidth)

	for r := top; r < top+height && r < len(runes); r++ {
		if r < 0 {
			continue
		}
		for c := gutter; c < len(runes[r]); c++ {
			if styleIDs[r][c] == csNone {
				set(r, c, ' ', csHover)
			}
		}
	}
	label := fmt.Sprintf("+ %s-%s", block.MinutesToClock(slot.Interval.Start), block.MinutesToClock(slot.Interval.End))
	for i, ch := range []rune(label) {
		set(top, gutter+1+i, ch, csHover)
	}
}

func (m Model) paintBlocks(set func(int, int, rune, int), win timeline.Window, dims timeline.Dimensions) {
	layout := block.LayoutBlocks(m.blocks)
	selected := m.selectedBlock()

	for _, g := range timeline.LayoutBlocks(layout, win, dims) {
		b := m.findBlock(g.Block.ID)
		if b == nil {
			continue
		}

		id := csTask
		switch {
		case selected != nil && selected.ID == b.ID:
			switch b.Kind {
			case block.KindClass:
				id = csSelClass
			case block.KindHabit:
				id = csSelHabit
			default:
				id = csSelTask
			}
		case b.Completed:
			id = csCompleted
		case b.Kind == block.KindClass:
			id = csClass
		case b.Kind == block.KindHabit:
			id = csHabit
		}

		r0 := int(math.Round(g.Top))
		rh := int(math.Round(g.Height))
		if rh < 1 {
			rh = 1
		}
		c0 := int(math.Round(g.Left))
		cw := int(math.Round(g.Width))
		if cw < 1 {
			cw = 1
		}

		title := b.Title
		if b.Completed {
			title = "✓ " + title
		}

		if rh == 1 {
			drawRow(set, r0, c0, fitCell("["+title+"]", cw, ' '), id)
			continue
		}
		drawRow(set, r0, c0, "┌"+fitCell(title, cw-2, '─')+"┐", id)
		for r := r0 + 1; r < r0+rh-1; r++ {
			set(r, c0, '│', id)
			for c := c0 + 1; c < c0+cw-1; c++ {
				set(r, c, ' ', id)
			}
			set(r, c0+cw-1, '│', id)
		}
		if cw >= 2 {
			drawRow(set, r0+rh-1, c0, "└"+strings.Repeat("─", cw-2)+"┘", id)
		}
	}
}

func (m Model) paintNowMarker(runes [][]rune, styleIDs [][]int, set func(int, int, rune, int), win timeline.Window, dims timeline.Dimensions, rows, cols int) {
	now := m.nowFunc()
	y, ok := timeline.NowMarker(win, dims, now.Hour()*60+now.Minute(), m.isToday())
	if !ok {
		return
	}
	r := int(math.Round(y))
	gutter := int(dims.TimeLabelWidth)
	set(r, gutter-2, '◀', csNow)
	for c := gutter - 1; c < cols; c++ {
		if r >= 0 && r < rows && runes[r][c] == ' ' && styleIDs[r][c] == csNone {
			set(r, c, '─', csNow)
		}
	}
}

func (m Model) formView() string {
	slot := m.form.slot
	var sb strings.Builder
	sb.WriteString(m.styles.FormActive.Render("New block") + "\n\n")
	sb.WriteString(m.styles.FormLabel.Render("Time  ") +
		fmt.Sprintf("%s - %s", block.MinutesToClock(slot.Interval.Start), block.MinutesToClock(slot.Interval.End)) + "\n")
	sb.WriteString(m.styles.FormLabel.Render("Title ") + m.form.title.View() + "\n")

	kinds := make([]string, len(formKinds))
	for i, k := range formKinds {
		if i == m.form.kind {
			kinds[i] = m.styles.FormActive.Render("[" + k + "]")
		} else {
			kinds[i] = m.styles.FormLabel.Render(" " + k + " ")
		}
	}
	sb.WriteString(m.styles.FormLabel.Render("Kind  ") + strings.Join(kinds, " ") + "\n\n")
	sb.WriteString(m.styles.Help.Render("enter save · tab kind · esc cancel"))

	box := m.styles.FormBox.Render(sb.String())
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) confirmView() string {
	b := m.findBlock(m.confirmID)
	title := "this block"
	if b != nil {
		title = fmt.Sprintf("%q (%s-%s)", b.Title, b.Start, b.End)
	}
	msg := m.styles.Warning.Render("Delete "+title+"?") + "\n\n" +
		m.styles.Help.Render("y delete · any other key cancels")
	box := m.styles.FormBox.Render(msg)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

// bodyHeight is the vertical space left between header and footer.
func (m Model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) isToday() bool {
	now := m.nowFunc()
	return m.day.Year() == now.Year() && m.day.YearDay() == now.YearDay()
}

func (m Model) findBlock(id int64) *block.Block {
	for _, b := range m.blocks {
		if b != nil && b.ID == id {
			return b
		}
	}
	return nil
}

func drawRow(set func(int, int, rune, int), r, c int, s string, id int) {
	for i, ch := range []rune(s) {
		set(r, c+i, ch, id)
	}
}

// fitCell truncates or pads s with filler to exactly width runes.
func fitCell(s string, width int, filler rune) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return string(runes) + strings.Repeat(string(filler), width-len(runes))
}
