// Package ui implements the command line interface.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/config"
	"github.com/Alienware2000/intentionality/internal/db"
	"github.com/Alienware2000/intentionality/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   block.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool
}

// NewApp creates a new CLI application. repo may be nil; commands that
// need storage open it lazily from the configured path.
func NewApp(repo block.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "intentionality",
		Short: "A day-planning timeline for classes, habits and tasks",
		Long: `Intentionality is a day planner built around a vertical timeline.

Blocks (classes, habits, one-off tasks) are laid out on an hour grid;
overlapping blocks share the row side by side. Running it without a
subcommand opens the interactive timeline.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.undoneCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.planCmd())

	return a
}

// ensureRepo opens the SQLite store if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	if dir := filepath.Dir(a.config.Storage.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("intentionality %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
