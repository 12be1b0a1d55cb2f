package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/wall/wallview"
)

// View implements the 'wall view' command
func View(args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file (default: nearest wall.toml)")
	items := fs.Int("items", 200, "Number of demo tiles")
	seed := fs.Uint64("seed", 1, "Seed for the demo tile sizes")
	statePath := fs.String("state", "", "Restore the position saved in this file")
	saveStatePath := fs.String("save-state", "", "Save the position to this file on exit")
	logPath := fs.String("log", "", "Write logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to a file.
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(cfg, out)
	if err != nil {
		return err
	}

	m := wallview.New(cfg, wallview.NewDemoSource(*items, *seed), logger)
	if err := restoreState(m.Wall(), *statePath, logger); err != nil {
		return err
	}
	if err := m.Run(); err != nil {
		return err
	}
	return saveState(m.Wall(), *saveStatePath)
}
