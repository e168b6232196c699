package ui

import (
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/timeline"
)

// Cell paint classes for the day grid. One terminal cell is one pixel.
const (
	paintNone = iota
	paintClass
	paintHabit
	paintTask
	paintNow
	paintRuler
)

var paintColors = map[int]*color.Color{
	paintClass: colorClass,
	paintHabit: colorHabit,
	paintTask:  colorTask,
	paintNow:   color.New(color.FgRed),
	paintRuler: colorMuted,
}

type dayGrid struct {
	rows  int
	cols  int
	runes [][]rune
	paint [][]int
}

func newDayGrid(rows, cols int) *dayGrid {
	g := &dayGrid{rows: rows, cols: cols}
	g.runes = make([][]rune, rows)
	g.paint = make([][]int, rows)
	for r := 0; r < rows; r++ {
		g.runes[r] = make([]rune, cols)
		g.paint[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			g.runes[r][c] = ' '
		}
	}
	return g
}

func (g *dayGrid) set(r, c int, ch rune, p int) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return
	}
	g.runes[r][c] = ch
	g.paint[r][c] = p
}

func (g *dayGrid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		start := 0
		for c := 1; c <= g.cols; c++ {
			if c == g.cols || g.paint[r][c] != g.paint[r][start] {
				run := string(g.runes[r][start:c])
				if cl := paintColors[g.paint[r][start]]; cl != nil {
					sb.WriteString(cl.Sprint(run))
				} else {
					sb.WriteString(run)
				}
				start = c
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderTimeline draws a day's blocks on an hour grid. Geometry comes from
// the layout engine with terminal cells standing in for pixels.
func renderTimeline(blocks []*block.Block, win timeline.Window, dims timeline.Dimensions, nowMinutes int, isToday bool) string {
	rows := win.Hours() * int(dims.HourHeight)
	cols := int(dims.TimeLabelWidth + dims.ContentWidth)
	grid := newDayGrid(rows, cols)

	drawRuler(grid, win, dims)

	layout := block.LayoutBlocks(blocks)
	for _, g := range timeline.LayoutBlocks(layout, win, dims) {
		drawBlock(grid, g, blocks)
	}

	if y, ok := timeline.NowMarker(win, dims, nowMinutes, isToday); ok {
		drawNowMarker(grid, y, dims)
	}

	return grid.String()
}

func drawRuler(grid *dayGrid, win timeline.Window, dims timeline.Dimensions) {
	hourHeight := int(dims.HourHeight)
	gutter := int(dims.TimeLabelWidth)
	for h := 0; h < win.Hours(); h++ {
		r := h * hourHeight
		label := block.FormatHourLabel(win.StartHour + h)
		// right-aligned label, then the axis tick
		for i, ch := range label {
			grid.set(r, gutter-3-len(label)+i, ch, paintRuler)
		}
		grid.set(r, gutter-2, '┤', paintRuler)
		for rr := r + 1; rr < r+hourHeight; rr++ {
			grid.set(rr, gutter-2, '│', paintRuler)
		}
	}
}

func drawBlock(grid *dayGrid, g timeline.Geometry, blocks []*block.Block) {
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

	p := paintTask
	title := ""
	if b := findBlock(blocks, g.Block.ID); b != nil {
		title = b.Title
		switch b.Kind {
		case block.KindClass:
			p = paintClass
		case block.KindHabit:
			p = paintHabit
		}
	}

	if rh == 1 {
		drawText(grid, r0, c0, fit("["+title+"]", cw), p)
		return
	}

	drawText(grid, r0, c0, "┌"+fit(title, cw-2)+"┐", p)
	for r := r0 + 1; r < r0+rh-1; r++ {
		grid.set(r, c0, '│', p)
		for c := c0 + 1; c < c0+cw-1; c++ {
			grid.set(r, c, ' ', p)
		}
		grid.set(r, c0+cw-1, '│', p)
	}
	drawText(grid, r0+rh-1, c0, "└"+strings.Repeat("─", max(cw-2, 0))+"┘", p)
}

func drawNowMarker(grid *dayGrid, y float64, dims timeline.Dimensions) {
	r := int(math.Round(y))
	if r < 0 || r >= grid.rows {
		return
	}
	gutter := int(dims.TimeLabelWidth)
	grid.set(r, gutter-2, '◀', paintNow)
	for c := gutter - 1; c < grid.cols; c++ {
		if grid.runes[r][c] == ' ' && grid.paint[r][c] == paintNone {
			grid.set(r, c, '─', paintNow)
		}
	}
}

func drawText(grid *dayGrid, r, c int, s string, p int) {
	for i, ch := range []rune(s) {
		grid.set(r, c+i, ch, p)
	}
}

// fit truncates or pad-fills s with dashes to exactly width runes.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return string(runes) + strings.Repeat("─", width-len(runes))
}

func findBlock(blocks []*block.Block, id int64) *block.Block {
	for _, b := range blocks {
		if b != nil && b.ID == id {
			return b
		}
	}
	return nil
}
