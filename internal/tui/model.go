// Package tui provides the interactive day timeline.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/config"
	"github.com/Alienware2000/intentionality/internal/dateutil"
	"github.com/Alienware2000/intentionality/internal/timeline"
	"github.com/Alienware2000/intentionality/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // Creating a block at the hover slot
	ModeConfirmDelete
)

var formKinds = []string{"task", "habit", "class"}

// blockForm holds the state of the create-block form.
type blockForm struct {
	title textinput.Model
	kind  int // index into formKinds
	slot  timeline.HoverSlot
}

// Model is the main TUI model.
type Model struct {
	repo   block.Repository
	config *config.Config
	theme  *theme.Theme
	styles *Styles

	day      time.Time      // day being shown
	blocks   []*block.Block // the day's blocks, repository order
	selected int            // index into blocks, -1 when nothing selected
	cursor   int            // hover cursor, rows below the timeline top

	mode      Mode
	form      blockForm
	confirmID int64 // block pending deletion

	width  int
	height int

	loading    bool
	statusMsg  string
	statusTime time.Time
	err        error

	nowFunc func() time.Time // injectable for tests
}

// New creates a new TUI model showing today.
func New(repo block.Repository, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	title := textinput.New()
	title.Placeholder = "Block title"
	title.CharLimit = 128
	title.Width = 32

	return &Model{
		repo:     repo,
		config:   cfg,
		theme:    t,
		styles:   NewStyles(t),
		day:      dateutil.TruncateToDay(time.Now()),
		selected: -1,
		mode:     ModeNormal,
		form:     blockForm{title: title},
		loading:  true,
		nowFunc:  time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadDay(m.repo, m.day), TickOnMinute())
}

// dims derives layout dimensions from config and the current terminal size.
// One terminal cell is one pixel.
func (m Model) dims() timeline.Dimensions {
	gutter := float64(m.config.UI.GutterWidth)
	return timeline.Dimensions{
		HourHeight:     float64(m.config.UI.HourHeight),
		TimeLabelWidth: gutter,
		ContentWidth:   float64(m.width) - gutter,
		BlockGap:       float64(m.config.UI.BlockGap),
		MinBlockHeight: float64(m.config.UI.MinBlockHeight),
	}
}

// window computes the visible hour range for the shown day.
func (m Model) window() timeline.Window {
	return timeline.ComputeVisibleWindow(
		block.LayoutBlocks(m.blocks),
		dateutil.IsSameDay(m.day, m.nowFunc()),
		m.nowFunc().Hour(),
		m.config.WindowPolicy(),
	)
}

// hoverSlot resolves the cursor row to a creatable slot.
func (m Model) hoverSlot() (timeline.HoverSlot, bool) {
	return timeline.ResolveHoverSlot(
		float64(m.cursor),
		m.window(),
		m.dims(),
		block.LayoutBlocks(m.blocks),
		m.day.Weekday(),
	)
}

// timelineRows is the pixel height of the timeline area.
func (m Model) timelineRows() int {
	return m.window().Hours() * m.config.UI.HourHeight
}

// selectedBlock returns the selected block, or nil.
func (m Model) selectedBlock() *block.Block {
	if m.selected < 0 || m.selected >= len(m.blocks) {
		return nil
	}
	return m.blocks[m.selected]
}

// Run starts the TUI.
func Run(repo block.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo block.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
