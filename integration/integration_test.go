package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/db"
	"github.com/Alienware2000/intentionality/internal/timeline"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// futureDate returns a date string n days from now, so block creation
// passes the past-date check.
func futureDate(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

// createBlock is a helper to create and insert a block.
func createBlock(t *testing.T, repo *db.SQLite, title, kind, date, start, end string) *block.Block {
	t.Helper()
	b, err := block.New(title, kind, date, start, end)
	if err != nil {
		t.Fatalf("failed to create block: %v", err)
	}
	if err := repo.CreateBlock(context.Background(), b); err != nil {
		t.Fatalf("failed to insert block: %v", err)
	}
	return b
}

func TestCreateAndFetchBlock(t *testing.T) {
	repo := openRepo(t)
	date := futureDate(1)

	created := createBlock(t, repo, "Integration block", "task", date, "08:00", "09:00")
	if created.ID == 0 {
		t.Fatal("CreateBlock must assign an ID")
	}

	got, err := repo.GetBlock(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetBlock error = %v", err)
	}
	if got == nil || got.Title != "Integration block" || got.Start != "08:00" {
		t.Errorf("round-tripped block = %+v", got)
	}
}

func TestOverlappingBlocksLayOutSideBySide(t *testing.T) {
	repo := openRepo(t)
	date := futureDate(1)

	createBlock(t, repo, "Standup", "task", date, "09:00", "10:00")
	createBlock(t, repo, "Focus", "task", date, "09:30", "11:00")
	createBlock(t, repo, "Lunch", "habit", date, "12:00", "13:00")

	day, _ := time.Parse("2006-01-02", date)
	blocks, err := repo.ListBlocksByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("ListBlocksByDate error = %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	layout := block.LayoutBlocks(blocks)
	win := timeline.ComputeVisibleWindow(layout, false, 0, timeline.DefaultWindowPolicy())
	dims := timeline.Dimensions{
		HourHeight:     60,
		TimeLabelWidth: 50,
		ContentWidth:   310,
		BlockGap:       10,
		MinBlockHeight: 15,
	}

	geos := timeline.LayoutBlocks(layout, win, dims)
	if len(geos) != 3 {
		t.Fatalf("got %d geometries, want 3", len(geos))
	}

	byTitle := map[string]timeline.Geometry{}
	for _, g := range geos {
		b, err := repo.GetBlock(context.Background(), g.Block.ID)
		if err != nil || b == nil {
			t.Fatalf("geometry refers to unknown block %d", g.Block.ID)
		}
		byTitle[b.Title] = g
	}

	if byTitle["Standup"].Columns != 2 || byTitle["Focus"].Columns != 2 {
		t.Error("overlapping blocks must split the row in two columns")
	}
	if byTitle["Lunch"].Columns != 1 {
		t.Error("isolated block must keep the full row")
	}
	if byTitle["Standup"].Width != byTitle["Focus"].Width {
		t.Error("columns in a group must share the width")
	}
}

func TestCompletionLifecycle(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	date := futureDate(2)

	habit := createBlock(t, repo, "Gym", "habit", date, "17:00", "18:00")
	class := createBlock(t, repo, "Lecture", "class", date, "10:00", "11:30")

	if err := repo.SetBlockCompleted(ctx, habit.ID, true); err != nil {
		t.Fatalf("completing habit: %v", err)
	}
	got, _ := repo.GetBlock(ctx, habit.ID)
	if got == nil || !got.Completed {
		t.Error("habit must be marked completed")
	}

	err := repo.SetBlockCompleted(ctx, class.ID, true)
	if !errors.Is(err, block.ErrNotCompletable) {
		t.Errorf("completing a class: err = %v, want ErrNotCompletable", err)
	}
}

func TestFreeSlotRespectsStoredBlocks(t *testing.T) {
	repo := openRepo(t)
	date := futureDate(3)

	createBlock(t, repo, "Morning", "task", date, "08:00", "10:00")
	createBlock(t, repo, "Midday", "task", date, "10:30", "12:00")

	day, _ := time.Parse("2006-01-02", date)
	blocks, err := repo.ListBlocksByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("ListBlocksByDate error = %v", err)
	}

	layout := block.LayoutBlocks(blocks)
	win := timeline.Window{StartHour: 8, EndHour: 18}
	slot, ok := timeline.FirstFreeSlot(layout, 60, win)
	if !ok {
		t.Fatal("expected a free slot")
	}
	if slot.Start < 12*60 {
		t.Errorf("slot start = %s, must not overlap stored blocks", block.MinutesToClock(slot.Start))
	}
	for _, b := range layout {
		if slot.Overlaps(b.Interval()) {
			t.Errorf("slot %d-%d overlaps block %d", slot.Start, slot.End, b.ID)
		}
	}
}
