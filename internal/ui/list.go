package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blocks in a date range",
		Long: `List all blocks scheduled within a date range.

If no dates are specified, lists today's blocks.
If only --start is specified, lists that single day.
If both --start and --end are specified, lists the range (inclusive).`,
		Example: `  intentionality list
  intentionality list --start=2026-09-01
  intentionality list --start=2026-09-01 --end=2026-09-07`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			blocks, err := a.repo.ListBlocksByDateRange(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing blocks: %w", err)
			}

			if len(blocks) == 0 {
				fmt.Println("No blocks found in the specified date range.")
				return nil
			}

			var currentDate string
			for _, b := range blocks {
				date := b.Date.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", formatHeader(date))
					currentDate = date
				}

				fmt.Printf("  %s #%d %s-%s %s\n",
					statusSymbol(b),
					b.ID,
					b.Start,
					b.End,
					formatKind(b.Kind, b.Title),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}

func statusSymbol(b *block.Block) string {
	switch {
	case !b.Completable():
		return "·"
	case b.Completed:
		return "✓"
	default:
		return "○"
	}
}
