package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/agiangrant/wall"
)

// loadConfig reads the file at path, or the nearest wall.toml when path is
// empty. Without any file the defaults are used.
func loadConfig(path string) (wall.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return wall.DefaultConfig(), err
		}
		path = wall.FindConfig(cwd)
		if path == "" {
			return wall.DefaultConfig(), nil
		}
	}
	return wall.LoadConfig(path)
}

// newLogger builds the logger for cfg writing to out.
func newLogger(cfg wall.Config, out io.Writer) (*slog.Logger, error) {
	logger, err := cfg.Log.NewLogger(out)
	if err != nil {
		return nil, fmt.Errorf("invalid log level in config: %w", err)
	}
	return logger, nil
}

// restoreState applies the state saved at path to w. A state that does not
// fit is logged and ignored by the wall.
func restoreState(w *wall.Wall, path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !w.RestoreBytes(data) {
		logger.Warn("saved state not applied", "path", path)
	}
	return nil
}

// saveState writes the state of w to path.
func saveState(w *wall.Wall, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := wall.EncodeState(f, w.SaveState()); err != nil {
		return err
	}
	return f.Close()
}
