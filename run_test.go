package uzu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRunConfig(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		cfg, err := LoadRunConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, DefaultRunConfig(), cfg)
	})

	t.Run("Partial File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		data := "title: pool demo\nwidth: 800\ntps: 30\nshow_fps: true\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := LoadRunConfig(path)
		require.NoError(t, err)
		require.Equal(t, "pool demo", cfg.Title)
		require.Equal(t, 800, cfg.Width)
		require.Equal(t, 480, cfg.Height)
		require.Equal(t, 30, cfg.TPS)
		require.Equal(t, 10, cfg.MaxTouches)
		require.True(t, cfg.ShowFPS)
		require.Equal(t, 1.0, cfg.FPSSpan)
	})

	t.Run("Zero Values Fall Back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: 0\nfps_span: -1\nmax_touches: 0\n"), 0o644))

		cfg, err := LoadRunConfig(path)
		require.NoError(t, err)
		require.Equal(t, 640, cfg.Width)
		require.Equal(t, 1.0, cfg.FPSSpan)
		require.Equal(t, 0, cfg.MaxTouches)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: [1, 2"), 0o644))
		_, err := LoadRunConfig(path)
		require.Error(t, err)
	})
}
