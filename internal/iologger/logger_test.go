package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "debug", Destination: "file"}

	err := Init(dir, cfg, false)
	require.NoError(t, err)
	slog.Debug("harvest started", "tsn", "173423")

	bs, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(bs), "harvest started")
	assert.Contains(t, string(bs), "tsn=173423")

	// fresh file truncates the previous log
	err = Init(dir, cfg, false)
	require.NoError(t, err)
	bs, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Empty(t, bs)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestInitBadDir(t *testing.T) {
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	err := Init(filepath.Join(t.TempDir(), "missing", "dir"), cfg, true)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, parseLevel(v.in), v.in)
	}
}
