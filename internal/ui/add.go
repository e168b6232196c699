package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/dateutil"
	"github.com/Alienware2000/intentionality/internal/timeline"
)

var errNoFreeSlot = errors.New("no free slot of that length inside the visible window")

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		kind     string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new block",
		Long: `Add a block to a day.

Give an explicit time with --start and --end, or let the first free
slot be picked with --duration (minutes).

Examples:
  intentionality add "Linear Algebra" --kind=class --date=tomorrow --start=10:00 --end=11:30
  intentionality add "Gym" --kind=habit --start=17:00 --end=18:00
  intentionality add "Reading" --duration=60`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			if start == "" || end == "" {
				if duration <= 0 {
					return errors.New("either --start/--end or --duration is required")
				}
				var err error
				start, end, err = a.firstFreeSlot(ctx, date, duration)
				if err != nil {
					return err
				}
			}

			b, err := block.New(args[0], kind, date, start, end)
			if err != nil {
				return err
			}
			if err := a.repo.CreateBlock(ctx, b); err != nil {
				return fmt.Errorf("creating block: %w", err)
			}

			fmt.Printf("Created block #%d: %s [%s] %s %s-%s\n",
				b.ID, b.Title, b.Kind, b.Date.Format("2006-01-02"), b.Start, b.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or today/tomorrow/next-monday..., default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&kind, "kind", "task", "Kind: class, habit or task")
	cmd.Flags().IntVar(&duration, "duration", 0, "Length in minutes; picks the first free slot")

	return cmd
}

// firstFreeSlot finds a start/end clock pair for the given day using the
// visible-window heuristic against the blocks already scheduled there.
func (a *App) firstFreeSlot(ctx context.Context, date string, duration int) (string, string, error) {
	day, err := dateutil.ParseRelativeDate(date, time.Now())
	if err != nil {
		return "", "", err
	}

	existing, err := a.repo.ListBlocksByDate(ctx, day)
	if err != nil {
		return "", "", fmt.Errorf("listing blocks: %w", err)
	}

	layout := block.LayoutBlocks(existing)
	now := time.Now()
	win := timeline.ComputeVisibleWindow(layout, dateutil.IsToday(day), now.Hour(), a.config.WindowPolicy())

	slot, ok := timeline.FirstFreeSlot(layout, duration, win)
	if !ok {
		return "", "", errNoFreeSlot
	}
	return block.MinutesToClock(slot.Start), block.MinutesToClock(slot.End), nil
}
