// Package block defines the core domain types for intentionality.
package block

import (
	"errors"
	"fmt"
	"time"

	"github.com/Alienware2000/intentionality/internal/dateutil"
	"github.com/Alienware2000/intentionality/internal/timeline"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrInvalidKind    = errors.New("kind must be 'class', 'habit' or 'task'")
	ErrInvalidClock   = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrBlockNotFound  = errors.New("block not found")
	ErrNotCompletable = errors.New("block cannot be completed")
)

// Kind represents the type of a time block.
type Kind string

const (
	KindClass Kind = "class"
	KindHabit Kind = "habit"
	KindTask  Kind = "task"
)

// defaultColors maps each kind to its display color.
var defaultColors = map[Kind]string{
	KindClass: "#89b4fa",
	KindHabit: "#a6e3a1",
	KindTask:  "#f9e2af",
}

// Block represents a single time-ranged entry on a day: a class session,
// a habit occurrence or a task with a time slot. Blocks on the same day may
// overlap; the timeline engine lays them out side by side.
type Block struct {
	ID        int64
	Title     string
	Kind      Kind
	Date      time.Time // day precision
	Start     string    // "HH:MM"
	End       string    // "HH:MM"
	Completed bool
	Color     string
	CreatedAt time.Time
}

// New creates a Block with validation.
// date can be empty (defaults to today), a YYYY-MM-DD date, or a relative
// keyword accepted by dateutil.ParseRelativeDate.
// start and end must be strict HH:MM clocks with end after start.
func New(title, kind, date, start, end string) (*Block, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	day, err := dateutil.ParseRelativeDate(date, time.Now())
	if err != nil {
		return nil, err
	}

	startMin, err := ParseClock(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if endMin <= startMin {
		return nil, ErrEndBeforeStart
	}

	return &Block{
		Title:     title,
		Kind:      k,
		Date:      day,
		Start:     start,
		End:       end,
		Color:     defaultColors[k],
		CreatedAt: time.Now(),
	}, nil
}

func parseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindClass, KindHabit, KindTask:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

// Completable returns true if the block can be marked completed.
// Classes are fixed commitments and carry no completion state.
func (b *Block) Completable() bool {
	return b.Kind != KindClass
}

// Duration returns the block duration in minutes.
func (b *Block) Duration() int {
	return ClockToMinutes(b.End) - ClockToMinutes(b.Start)
}

// OverlapsWith returns true if this block overlaps another block on the
// same day, using half-open range semantics.
func (b *Block) OverlapsWith(other *Block) bool {
	if other == nil {
		return false
	}
	if !sameDay(b.Date, other.Date) {
		return false
	}
	return ClocksOverlap(b.Start, b.End, other.Start, other.End)
}

// Layout converts the block into the timeline engine's input shape.
func (b *Block) Layout() timeline.Block {
	return timeline.Block{
		ID:          b.ID,
		Start:       ClockToMinutes(b.Start),
		End:         ClockToMinutes(b.End),
		Completed:   b.Completed,
		Completable: b.Completable(),
		Color:       b.Color,
	}
}

// LayoutBlocks converts a day's blocks into timeline engine inputs.
func LayoutBlocks(blocks []*Block) []timeline.Block {
	out := make([]timeline.Block, 0, len(blocks))
	for _, b := range blocks {
		if b == nil {
			continue
		}
		out = append(out, b.Layout())
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
