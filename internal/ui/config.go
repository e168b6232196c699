package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/config"
	"github.com/Alienware2000/intentionality/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			printConfig(a.config)
			return nil
		},
	}
	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := config.Default().SaveTo(path); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Printf("Config file: %s\n\n", config.DefaultConfigPath())

	fmt.Println(formatHeader("Schedule"))
	fmt.Printf("  visible hours:   %02d:00 - %02d:00\n", cfg.Schedule.MinHour, cfg.Schedule.MaxHour)
	fmt.Printf("  default window:  %02d:00 - %02d:00\n", cfg.Schedule.DefaultStartHour, cfg.Schedule.DefaultEndHour)
	fmt.Printf("  padding:         %dh\n", cfg.Schedule.PaddingHours)
	fmt.Printf("  min span:        %dh\n", cfg.Schedule.MinSpanHours)

	fmt.Println(formatHeader("UI"))
	fmt.Printf("  theme:           %s (available: %s)\n", cfg.UI.Theme, strings.Join(theme.Available(), ", "))
	fmt.Printf("  hour height:     %d rows\n", cfg.UI.HourHeight)
	fmt.Printf("  gutter width:    %d cols\n", cfg.UI.GutterWidth)

	fmt.Println(formatHeader("LLM"))
	fmt.Printf("  provider:        %s\n", cfg.LLM.Provider)
	fmt.Printf("  model:           %s\n", cfg.LLM.Model)
	if cfg.LLM.BaseURL != "" {
		fmt.Printf("  base URL:        %s\n", cfg.LLM.BaseURL)
	}

	fmt.Println(formatHeader("Storage"))
	fmt.Printf("  database:        %s\n", cfg.Storage.DBPath)
}
