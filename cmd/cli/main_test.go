package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cliarg/internal/cli"
)

func TestRun_Report(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"/usr/bin/demo", "1", "2", "--flag", "x", "--bool", "--set", "k=v", "--tag", "t"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "numbers: 2 (sum 3)")
	require.Contains(t, out.String(), "flag: x")
	require.Contains(t, out.String(), "bool: true")
	require.Contains(t, out.String(), "set: k=v")
	require.Contains(t, out.String(), "tags: t")
	require.Contains(t, logs.String(), "Numbers received.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The help flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"/usr/bin/demo", "--help"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:\n  demo ", "Expected help text with the program base name")
	require.NotContains(t, out.String(), "numbers: ", "the report must not be printed")
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"demo", "--version"}))
	require.Equal(t, "1.0.0\n", out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"demo", "--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_EmptyArgv(t *testing.T) {
	t.Parallel()
	require.Error(t, run(&bytes.Buffer{}, &bytes.Buffer{}, nil))
}
