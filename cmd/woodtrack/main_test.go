package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderToStdout(t *testing.T) {
	out, _, err := run(t, "--out", "-", "--grid=false", "--width", "320")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" standalone="yes"?>`))
	assert.Contains(t, out, `viewBox="0 0 320 300"`)
	assert.NotContains(t, out, "pattern")
	assert.Equal(t, 14, strings.Count(out, "<polygon")+strings.Count(out, "<circle"))

	again, _, err := run(t, "render", "--out", "-", "--grid=false", "--width", "320")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRenderFromLayout(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(`
[canvas]
width = 200.0
height = 100.0
grid = false

[[pieces]]
kind = "straight"
x = 10.0
y = 50.0
length = 100.0
`), 0o644))
	outPath := filepath.Join(dir, "out.svg")

	_, logs, err := run(t, "--layout", layoutPath, "--out", outPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated piece")

	doc, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `width="200mm"`)
	assert.Contains(t, string(doc), `<polygon points="10,70 110,70 110,30 10,30" fill="black"/>`)
}

func TestBadLayoutWritesNothing(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte("pieces:\n  - kind: arc\n    radius: 100\n    angle: 0\n"), 0o644))
	outPath := filepath.Join(dir, "out.svg")

	_, logs, err := run(t, "--layout", layoutPath, "--out", outPath)
	assert.Error(t, err)
	assert.Contains(t, logs, "generation failed")
	assert.NoFileExists(t, outPath)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "2 pieces, 14 shapes\n", out)

	_, logs, err := run(t, "check", "--width", "100")
	assert.Error(t, err)
	assert.Contains(t, logs, "does not fit")
}
