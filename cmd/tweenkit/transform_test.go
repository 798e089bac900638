package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "numbers",
			args: []string{"transform", "--from", "0,10", "--to", "0,100", "5", "12"},
			want: "5 -> 50\n12 -> 120\n",
		},
		{
			name: "limit",
			args: []string{"transform", "--from", "0,10", "--to", "0,100", "--limit", "--", "12", "-2"},
			want: "12 -> 100\n-2 -> 0\n",
		},
		{
			name: "degenerate input range",
			args: []string{"transform", "--from", "1,1", "--to", "3,7", "9"},
			want: "9 -> 3\n",
		},
		{
			name: "color output",
			args: []string{"transform", "--to", "black,white", "-m", "rgb", "0.5"},
			want: "0.5 -> #808080\n",
		},
		{
			name: "color input",
			args: []string{"transform", "--from", "black,white", "--to", "0,10", "-m", "rgb", "#808080"},
			want: "#808080 -> 5.0196\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestTransformCommandFromConfig(t *testing.T) {
	t.Parallel()

	path := writePalette(t, testPalette)

	stdout, _, err := executeCommand(t, "transform", "--config", path, "--id", "percent", "25", "50")
	require.NoError(t, err)
	assert.Equal(t, "25 -> 0.25\n50 -> 0.5\n", stdout)

	stdout, _, err = executeCommand(t, "transform", "--config", path, "--id", "shade", "0.5", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.5 -> #808080\n3 -> #ffffff\n", stdout)
}

func TestTransformCommandErrors(t *testing.T) {
	t.Parallel()

	path := writePalette(t, testPalette)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "no inputs", args: []string{"transform"}, msg: "requires at least 1 arg"},
		{name: "short range", args: []string{"transform", "--from", "0", "1"}, msg: "--from expects two values"},
		{name: "bad endpoint", args: []string{"transform", "--to", "0,nope", "1"}, msg: "--to:"},
		{name: "bad input", args: []string{"transform", "nope"}, msg: "input:"},
		{name: "id without config", args: []string{"transform", "--id", "percent", "1"}, msg: "--id requires --config"},
		{name: "config without id", args: []string{"transform", "--config", path, "1"}, msg: "--config requires --id"},
		{name: "unknown id", args: []string{"transform", "--config", path, "--id", "warm", "1"}, msg: `transform "warm" not found`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := executeCommand(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
