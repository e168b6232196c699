package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/dateutil"
	"github.com/Alienware2000/intentionality/internal/llm"
	"github.com/Alienware2000/intentionality/internal/planner"
)

const maxPlanRetries = 3

func (a *App) planCmd() *cobra.Command {
	var (
		date      string
		modelFlag string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "plan [description]",
		Short: "Plan a day's blocks from natural language",
		Long: `Use AI to turn a natural language description into time blocks.

The proposal is validated against the blocks already on the day and
shown for review before anything is saved.

Examples:
  intentionality plan "gym in the evening, two hours of thesis writing"
  intentionality plan "deep work morning" --date=tomorrow --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			model := modelFlag
			if model == "" {
				model = a.config.LLM.Model
			}
			client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			p := planner.New(client, a.config, a.repo)

			fmt.Println("Planning blocks...")
			result, err := p.Plan(context.Background(), planner.Request{
				Input: strings.Join(args, " "),
				Date:  day,
			}, maxPlanRetries)
			if err != nil && !errors.Is(err, planner.ErrMaxRetriesExceeded) {
				return fmt.Errorf("planning: %w", err)
			}

			displayPlanResult(day, result)

			if result.HasValidationErrors() {
				fmt.Println("\nValidation errors (retry limit reached, nothing saved):")
				for _, ve := range result.ValidationErrors {
					fmt.Printf("  - %s\n", ve.Message)
				}
				return nil
			}

			if dryRun {
				fmt.Println("\n(Dry run - blocks not saved)")
				return nil
			}
			if len(result.Blocks) == 0 {
				return nil
			}

			fmt.Print("\n[a]ccept / [c]ancel: ")
			reader := bufio.NewReader(os.Stdin)
			choice, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			switch strings.TrimSpace(strings.ToLower(choice)) {
			case "a", "accept":
				saved, err := p.Apply(context.Background(), result.Blocks)
				if err != nil {
					return fmt.Errorf("saving blocks: %w", err)
				}
				fmt.Printf("\n%d blocks saved\n", len(saved))
			default:
				fmt.Println("Planning cancelled.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to plan (default: today)")
	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show proposed blocks without saving")

	return cmd
}

func displayPlanResult(day time.Time, result *planner.Result) {
	fmt.Printf("\n%s\n", formatHeader(day.Format("Monday, January 2, 2006")))

	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
	}
	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  * %s\n", s)
		}
	}

	if len(result.Blocks) == 0 {
		fmt.Println("\nNo blocks proposed.")
		return
	}

	fmt.Println(strings.Repeat("-", 50))
	for _, b := range result.Blocks {
		fmt.Printf("  %s-%s  %s %s\n", b.Start, b.End, b.Title, formatMuted("["+b.Kind+"]"))
	}
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Total: %d blocks\n", len(result.Blocks))
}
