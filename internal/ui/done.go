package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a block as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.setCompleted(args[0], true)
		},
	}
}

func (a *App) undoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undone [id]",
		Short: "Mark a block as not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.setCompleted(args[0], false)
		},
	}
}

func (a *App) setCompleted(arg string, completed bool) error {
	if err := a.ensureRepo(); err != nil {
		return err
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid block id %q", arg)
	}
	if err := a.repo.SetBlockCompleted(context.Background(), id, completed); err != nil {
		return err
	}
	if completed {
		fmt.Printf("Block #%d completed\n", id)
	} else {
		fmt.Printf("Block #%d reopened\n", id)
	}
	return nil
}

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block id %q", args[0])
			}
			if err := a.repo.DeleteBlock(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Block #%d deleted\n", id)
			return nil
		},
	}
}
