package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	app := NewApp().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestApp_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "concat")
	assert.Contains(t, out, "pairs")
	assert.Contains(t, out, "--observer")
}

func TestConcat(t *testing.T) {
	out, _, err := execute(t, "concat", "--word", "Foo", "--word", "Bar")
	require.NoError(t, err)

	assert.Contains(t, out, "output: FooBar\n")
	assert.Contains(t, out, "status: no_next_state\n")
	assert.Contains(t, out, "state:  2\n")
	assert.Contains(t, out, "steps:  2\n")
}

func TestConcat_RequiresWords(t *testing.T) {
	_, _, err := execute(t, "concat")
	assert.ErrorContains(t, err, "--word")
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "reference text",
			args: []string{"--text", "aabbacacaabab"},
			want: "matches: [1 9 11]\n",
		},
		{
			name: "empty text",
			args: []string{"--text", ""},
			want: "matches: []\n",
		},
		{
			name: "custom pair",
			args: []string{"--first", "x", "--second", "y", "--text", "xyxxyz"},
			want: "matches: [0 3]\n",
		},
		{
			name: "multibyte runes",
			args: []string{"--first", "é", "--second", "✓", "--text", "aé✓é✓"},
			want: "matches: [1 3]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"pairs"}, tt.args...)...)
			require.NoError(t, err)

			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "status: end_of_input\n")
		})
	}
}

func TestPairs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("abab"), 0o644))

	out, _, err := execute(t, "pairs", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "matches: [0 2]\n")
}

func TestPairs_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "same characters", args: []string{"--first", "a", "--second", "a"}, want: "must differ"},
		{name: "multi-character first", args: []string{"--first", "ab"}, want: "single character"},
		{name: "empty second", args: []string{"--second", ""}, want: "single character"},
		{name: "text and file", args: []string{"--text", "x", "--file", "y"}, want: "none of the others"},
		{name: "missing file", args: []string{"--file", "does-not-exist.txt"}, want: "failed to read input file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"pairs"}, tt.args...)...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestApp_ZapObserver(t *testing.T) {
	_, stderr, err := execute(t, "concat", "-w", "a", "-w", "b", "--observer", "zap", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stderr, "automaton.run.start")
	assert.Contains(t, stderr, "automaton.state.transition")
	assert.Contains(t, stderr, "automaton.run.complete")
}

func TestApp_ZapObserverInfoLevel(t *testing.T) {
	_, stderr, err := execute(t, "concat", "-w", "a", "-w", "b", "--observer", "zap")
	require.NoError(t, err)

	assert.Contains(t, stderr, "automaton.run.complete")
	assert.NotContains(t, stderr, "automaton.state.transition")
}

func TestApp_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "automaton.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nobserver: zap\n"), 0o644))

	_, stderr, err := execute(t, "concat", "-w", "a", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "from-file")
}

func TestApp_UnknownObserver(t *testing.T) {
	_, _, err := execute(t, "concat", "-w", "a", "--observer", "missing")
	assert.ErrorContains(t, err, "unknown observer")
}

func TestApp_BadConfigFile(t *testing.T) {
	_, _, err := execute(t, "concat", "-w", "a", "--config", "automaton.toml")
	assert.ErrorContains(t, err, "failed to load config")
}
