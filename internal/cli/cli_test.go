package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/cliarg/argerr"
	"github.com/vk/cliarg/internal/cli"
)

func TestParse_AllArguments(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse("demo", []string{
		"1", "2",
		"--flag", "hello",
		"--bool",
		"--name", "gopher",
		"--pair", "3", "--pair", "4",
		"--set", "a=1", "--set", "b=2",
		"--tag", "x", "--tag", "y",
		"--expr", "[1, 2, 3]",
		"--timeout", "1m30s",
		"--log-level", "DEBUG",
		"5",
	}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Empty(t, out.String())

	require.Equal(t, []int{1, 2, 5}, cfg.Numbers)
	require.Equal(t, "hello", *cfg.Flag)
	require.True(t, cfg.Bool)
	require.Equal(t, "gopher", cfg.Name)
	require.Equal(t, []int{3, 4}, cfg.Pair)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, cfg.Settings)
	require.Len(t, cfg.Tags, 2)
	require.Equal(t, 3, cfg.Expr.LengthInt())
	require.Equal(t, 90*time.Second, *cfg.Timeout)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := cli.Parse("demo", nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Empty(t, cfg.Numbers)
	require.Nil(t, cfg.Flag)
	require.False(t, cfg.Bool)
	require.Empty(t, cfg.Name)
	require.Empty(t, cfg.Pair)
	require.True(t, cfg.Expr.IsNull())
	require.Nil(t, cfg.Timeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Informational(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"--help", "--usage", "--version"} {
		t.Run(flag, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := cli.Parse("demo", []string{flag}, out)
			require.NoError(t, err)
			require.True(t, shouldExit)
			require.Nil(t, cfg)
			require.NotEmpty(t, out.String())
		})
	}
}

func TestParse_UserErrorsExitWithTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		kind argerr.Kind
	}{
		{"unknown flag", []string{"--nope"}, argerr.UnknownFlag},
		{"bad number", []string{"one"}, argerr.ParseFailure},
		{"name too long", []string{"--name", "this name is far too long to fit in the buffer"}, argerr.ParseFailure},
		{"third pair value", []string{"--pair", "1", "--pair", "2", "--pair", "3"}, argerr.TooManyOccurrences},
		{"missing value", []string{"--flag"}, argerr.MissingValue},
		{"not key=value", []string{"--set", "novalue"}, argerr.ParseFailure},
		{"expr of strings", []string{"--expr", `["a"]`}, argerr.ParseFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := cli.Parse("demo", tc.args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Equal(t, tc.kind, argerr.KindOf(err))
			require.Contains(t, exitErr.Message, "Try '--help'")
		})
	}
}

func TestParse_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse("demo", []string{"--log-format", "xml"}, &bytes.Buffer{})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-format")
}
