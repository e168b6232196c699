package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Alienware2000/intentionality/internal/config"
	"github.com/Alienware2000/intentionality/internal/ui"
)

func main() {
	if os.Getenv("NO_COLOR") != "" {
		ui.DisableColor()
	}
	os.Exit(run(os.Stderr))
}

// run wires config, storage and the command tree. A broken configuration
// exits 2 so scripts can tell it apart from ordinary command failures.
func run(stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "intentionality: bad configuration: %v\n", err)
		return 2
	}

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()

	if err := app.Execute(); err != nil {
		fmt.Fprintf(stderr, "intentionality: %v\n", err)
		return 1
	}
	return 0
}
