package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writePalette(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testPalette = `version: "1.0"
name: "Primary"
color_model: rgb
ramps:
  - id: warm
    from: red
    to: blue
    steps: 3
  - id: fade
    from: white
    to: black
    steps: 3
    model: hsl
transforms:
  - id: percent
    input: [0, 100]
    output: ["0", "1"]
  - id: shade
    input: [0, 1]
    output: [black, white]
    limit: true
`
