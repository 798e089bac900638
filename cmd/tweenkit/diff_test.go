package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "diff", "black", "white")
	require.NoError(t, err)
	assert.Contains(t, stdout, "765")
	assert.Contains(t, stdout, "false")
	assert.Contains(t, stdout, "husl")

	stdout, _, err = executeCommand(t, "diff", "#ff0000", "rgb(255, 0, 0)", "-m", "rgb")
	require.NoError(t, err)
	assert.Contains(t, stdout, "true")
	assert.Contains(t, stdout, "rgb")
}

func TestDiffCommandRejectsNegativeTolerance(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "diff", "red", "blue", "--tolerance", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tolerance must not be negative")
}
