package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrain-demo/internal/heightmap"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestGenerateThenInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hm.png")
	out := run(t, "generate", "-o", path, "--width", "16", "--height", "12", "--seed", "3")
	assert.Contains(t, out, "16x12")

	img, err := heightmap.Load(path)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Generate(heightmap.Options{Width: 16, Height: 12, Seed: 3}).Pix, img.Pix)

	out = run(t, "inspect", path)
	assert.Contains(t, out, path+": 16x12")
}

func TestInspectMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"inspect", filepath.Join(t.TempDir(), "none.png")})
	assert.Error(t, cmd.Execute())
}
