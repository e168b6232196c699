package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/block"
)

func (a *App) moveCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Reschedule a block to a new time",
		Example: `  intentionality move 3 --start=14:00 --end=15:30
  intentionality move 3 --start=14:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block id %q", args[0])
			}

			ctx := context.Background()
			b, err := a.repo.GetBlock(ctx, id)
			if err != nil {
				return err
			}
			if b == nil {
				return fmt.Errorf("block #%d not found", id)
			}

			if start == "" {
				start = b.Start
			}
			if end == "" {
				// keep the original duration when only the start moves
				end = block.MinutesToClock(block.ClockToMinutes(start) + b.Duration())
			}

			startMin, err := block.ParseClock(start)
			if err != nil {
				return fmt.Errorf("start time: %w", err)
			}
			endMin, err := block.ParseClock(end)
			if err != nil {
				return fmt.Errorf("end time: %w", err)
			}
			if endMin <= startMin {
				return block.ErrEndBeforeStart
			}

			if err := a.repo.UpdateBlockTimes(ctx, id, start, end); err != nil {
				return err
			}
			fmt.Printf("Block #%d moved to %s-%s\n", id, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM, default keeps duration)")

	return cmd
}
