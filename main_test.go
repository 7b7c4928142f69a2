package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"initiative-tracker/internal/config"
)

func TestNewLoggerWritesToConfiguredFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "session.log")
	cfg.LogLevel = "warn"

	logger, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "index", 3)
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "msg=shown index=3")
}

func TestNewLoggerDefaultsToDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	logger, closeLog, err := newLogger(config.Default())
	require.NoError(t, err)
	logger.Info("session started")
	closeLog()

	dir, err := config.DataDir()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "tracker.log"))
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "shout"
	_, _, err := newLogger(cfg)
	assert.Error(t, err)
}
