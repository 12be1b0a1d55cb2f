package wall

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the configuration file looked up by FindConfig.
const ConfigFile = "wall.toml"

// Config represents the wall.toml configuration file
type Config struct {
	Wall  LayoutConfig `toml:"wall"`
	Touch TouchConfig  `toml:"touch"`
	Log   LogConfig    `toml:"log"`
}

// LayoutConfig holds the column and spacing settings.
type LayoutConfig struct {
	Columns           int `toml:"columns"`
	HorizontalSpacing int `toml:"horizontal_spacing"`
	VerticalSpacing   int `toml:"vertical_spacing"`
	// Padding applies to every side without a specific value below
	Padding       int  `toml:"padding"`
	PaddingLeft   *int `toml:"padding_left,omitempty"`
	PaddingTop    *int `toml:"padding_top,omitempty"`
	PaddingRight  *int `toml:"padding_right,omitempty"`
	PaddingBottom *int `toml:"padding_bottom,omitempty"`
	CacheSize     int  `toml:"cache_size"`
}

type TouchConfig struct {
	ScrollThreshold int `toml:"scroll_threshold"`
	// Long press delay in milliseconds, 0 disables long clicks
	LongPressMS int `toml:"long_press_ms"`
}

type LogConfig struct {
	// debug, info, warn or error
	Level string `toml:"level"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Wall: LayoutConfig{
			Columns:           2,
			HorizontalSpacing: 8,
			VerticalSpacing:   8,
			Padding:           0,
			CacheSize:         DefaultCacheSize,
		},
		Touch: TouchConfig{
			ScrollThreshold: DefaultScrollThreshold,
			LongPressMS:     int(DefaultLongPressTimeout / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FindConfig walks up from dir looking for wall.toml. It returns the path of
// the first one found, or an empty string.
func FindConfig(dir string) string {
	for {
		p := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Insets resolves the general and side specific padding.
func (c LayoutConfig) Insets() Insets {
	side := func(v *int) int {
		if v != nil {
			return *v
		}
		return c.Padding
	}
	return Insets{
		Left:   side(c.PaddingLeft),
		Top:    side(c.PaddingTop),
		Right:  side(c.PaddingRight),
		Bottom: side(c.PaddingBottom),
	}
}

// Options converts the configuration into wall options. Out of range values
// are corrected by New.
func (c Config) Options(logger *slog.Logger) []Option {
	return []Option{
		WithColumns(c.Wall.Columns),
		WithSpacing(c.Wall.HorizontalSpacing, c.Wall.VerticalSpacing),
		WithPadding(c.Wall.Insets()),
		WithCacheSize(c.Wall.CacheSize),
		WithLogger(logger),
	}
}

// GestureOptions converts the touch settings into gesture options.
func (c Config) GestureOptions(logger *slog.Logger) []GestureOption {
	return []GestureOption{
		WithScrollThreshold(c.Touch.ScrollThreshold),
		WithLongPressTimeout(time.Duration(c.Touch.LongPressMS) * time.Millisecond),
		WithGestureLogger(logger),
	}
}

// ParseLevel maps a level name to a slog level. Unknown names are an error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// NewLogger builds a text logger writing to out at the configured level.
func (c LogConfig) NewLogger(out io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), nil
}
