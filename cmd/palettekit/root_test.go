package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
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

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRootRejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "generate", "#3491fa", "--output", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Suggestion: Use one of text, table, json or yaml")
}

func TestRootRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "generate", "#3491fa", "--log-level", "chatty")
	require.Error(t, err)
	require.Contains(t, err.Error(), "configuring logging")
}

func TestRootListsCommands(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"generate", "rgbstr", "linear", "gray", "mono", "hct", "theme", "presets", "extract", "browse", "version"} {
		require.Contains(t, names, want)
	}
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "palettekit 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2025-10-03")
}

func TestBrowseRequiresTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "browse", "#3491fa")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a terminal")
}
