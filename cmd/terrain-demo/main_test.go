package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrain-demo/internal/logger"
)

func TestLoadDotEnvWarnsOnUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewAt(filepath.Join(dir, "log.txt"), io.Discard)

	// A directory opens but cannot be scanned.
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.Mkdir(envPath, 0755))

	loadDotEnv(log, envPath)

	lines := log.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "WARN env: ")
	assert.Contains(t, lines[0], envPath)
}

func TestLoadDotEnvIsQuietForMissingFile(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewAt(filepath.Join(dir, "log.txt"), io.Discard)

	loadDotEnv(log, filepath.Join(dir, ".env"))

	assert.Empty(t, log.Lines())
}
