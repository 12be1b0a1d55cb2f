package wall

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	cfg := DefaultConfig()
	cfg.Wall.Columns = 4
	cfg.Wall.Padding = 3
	top := 9
	cfg.Wall.PaddingTop = &top
	cfg.Touch.LongPressMS = 750
	cfg.Log.Level = "debug"
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, Insets{Left: 3, Top: 9, Right: 3, Bottom: 3}, loaded.Wall.Insets())
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	data := "[wall]\ncolumns = 3\npadding_left = 12\n\n[touch]\nscroll_threshold = 6\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Wall.Columns)
	assert.Equal(t, 6, cfg.Touch.ScrollThreshold)
	assert.Equal(t, DefaultConfig().Wall.VerticalSpacing, cfg.Wall.VerticalSpacing)
	assert.Equal(t, Insets{Left: 12}, cfg.Wall.Insets())
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("[wall\ncolumns = "), 0644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	assert.Empty(t, FindConfig(nested))

	path := filepath.Join(root, "a", ConfigFile)
	require.NoError(t, SaveConfig(path, DefaultConfig()))
	assert.Equal(t, path, FindConfig(nested))
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wall.Columns = 3
	cfg.Wall.HorizontalSpacing = 2
	cfg.Wall.VerticalSpacing = 5
	cfg.Wall.CacheSize = 7

	w := New(nil, cfg.Options(nil)...)
	assert.Equal(t, 3, w.ColumnCount())
	assert.Equal(t, 2, w.horizontalSpacing)
	assert.Equal(t, 5, w.verticalSpacing)
	assert.Equal(t, 7, w.cache.limit)

	cfg.Touch.ScrollThreshold = 3
	cfg.Touch.LongPressMS = 250
	g := NewGesture(w, cfg.GestureOptions(nil)...)
	assert.Equal(t, 3, g.threshold)
	assert.Equal(t, 250*time.Millisecond, g.longPress)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWallLogsCorrections(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LogConfig{Level: "debug"}.NewLogger(&buf)
	require.NoError(t, err)

	w := New(nil, WithLogger(logger), WithColumns(-2))
	assert.Equal(t, 1, w.ColumnCount())
	assert.Contains(t, buf.String(), "column count corrected")

	w.SetDataSource(uniformSource(3, 10, 10))
	w.Measure(Exact(10), Exact(100))
	w.Layout()
	assert.Contains(t, buf.String(), "fill down")
}
