package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestLevelsAreStampedAndPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "demo.txt")
	var mirror bytes.Buffer
	l := NewAt(path, &mirror)
	l.now = fixedClock

	l.Log("window open")
	l.Warn("height map %s missing", "a.png")
	l.Error("shader %q failed", "terrain")

	want := []string{
		"[2026-03-01 12:30:00] INFO window open",
		"[2026-03-01 12:30:00] WARN height map a.png missing",
		`[2026-03-01 12:30:00] ERROR shader "terrain" failed`,
	}
	assert.Equal(t, want, l.Lines())
	assert.Equal(t, strings.Join(want, "\n")+"\n", mirror.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
	assert.Equal(t, path, l.Path())
}

func TestLinesReturnsCopy(t *testing.T) {
	l := NewAt("", nil)
	l.Info("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestFileErrorsDoNotDropLines(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes every append fail.
	path := filepath.Join(dir, "blocked")
	require.NoError(t, os.Mkdir(path, 0755))

	l := NewAt(path, nil)
	l.Info("still here")
	assert.Len(t, l.Lines(), 1)
}
