package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/dateutil"
	"github.com/Alienware2000/intentionality/internal/timeline"
)

func (a *App) dayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Print a day's timeline",
		Long: `Print a static timeline for a single day.

The visible hour range adapts to the day's blocks; overlapping blocks
are laid out side by side. For the interactive version run
intentionality with no subcommand.`,
		Example: `  intentionality day
  intentionality day --date=tomorrow`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			blocks, err := a.repo.ListBlocksByDate(context.Background(), day)
			if err != nil {
				return fmt.Errorf("listing blocks: %w", err)
			}

			now := time.Now()
			isToday := dateutil.IsToday(day)
			layout := block.LayoutBlocks(blocks)
			win := timeline.ComputeVisibleWindow(layout, isToday, now.Hour(), a.config.WindowPolicy())
			dims := a.dayDimensions()

			fmt.Printf("%s\n\n", formatHeader(day.Format("Monday, January 2, 2006")))
			fmt.Print(renderTimeline(blocks, win, dims, now.Hour()*60+now.Minute(), isToday))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or today/tomorrow/..., default: today)")

	return cmd
}

// dayDimensions derives layout dimensions from config and terminal width.
func (a *App) dayDimensions() timeline.Dimensions {
	gutter := float64(a.config.UI.GutterWidth)
	width := float64(termWidth())
	return timeline.Dimensions{
		HourHeight:     float64(a.config.UI.HourHeight),
		TimeLabelWidth: gutter,
		ContentWidth:   width - gutter,
		BlockGap:       float64(a.config.UI.BlockGap),
		MinBlockHeight: float64(a.config.UI.MinBlockHeight),
	}
}
