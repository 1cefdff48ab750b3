package commandline_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/cliarg/argument"
	"github.com/vk/cliarg/commandline"
)

type basic struct {
	numbers []int
	flag    *string
	given   bool
}

// newBasic declares the same command line as the example driver.
func newBasic(out *bytes.Buffer) (*commandline.CommandLine, *basic) {
	b := &basic{}
	cl := commandline.New("Basic example command line.", []argument.Descriptor{
		argument.HelpFlag("--help"),
		argument.UsageFlag("--usage"),
		argument.VersionFlag("--version", "1.0.0"),
		argument.New("numbers", &b.numbers, argument.WithHelp("positional args")),
		argument.New("--flag", &b.flag, argument.WithHelp("optional flag")),
		argument.StoreTrue("--bool", &b.given, argument.WithHelp("argumentless flag")),
	}, commandline.WithOutput(out))
	return cl, b
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cl, b := newBasic(out)

	informational, err := cl.Run("basic", []string{"1", "--help", "2"})
	require.NoError(t, err)
	require.True(t, informational)

	expected := `Basic example command line.

Usage:
  basic [numbers]... [--help] [--usage] [--version] [--flag flag] [--bool]

Arguments:
  numbers: positional args
  --help: prints this help message and exits
  --usage: prints usage and exits
  --version: prints version and exits
  --flag flag: optional flag
  --bool: argumentless flag
`
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}

	// Tokens after the informational flag are never looked at.
	require.Equal(t, []int{1}, b.numbers)
	require.Nil(t, b.flag)
	require.False(t, b.given)
}

func TestRun_HelpDoesNotMutateOtherDestinations(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cl, b := newBasic(out)

	informational, err := cl.Run("basic", []string{"--help"})
	require.NoError(t, err)
	require.True(t, informational)
	require.Nil(t, b.numbers)
	require.Nil(t, b.flag)
	require.False(t, b.given)
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cl, _ := newBasic(out)

	informational, err := cl.Run("basic", []string{"--usage"})
	require.NoError(t, err)
	require.True(t, informational)
	require.Equal(t, "basic [numbers]... [--help] [--usage] [--version] [--flag flag] [--bool]\n", out.String())
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cl, _ := newBasic(out)

	informational, err := cl.RunArgs([]string{"basic", "--version"})
	require.NoError(t, err)
	require.True(t, informational)
	require.Equal(t, "1.0.0\n", out.String())
}

func TestRun_InformationalSkipsMinimumCheck(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	var required string
	cl := commandline.New("needs a value", []argument.Descriptor{
		argument.New("required", &required),
		argument.VersionFlag("--version", "2.3.4"),
	}, commandline.WithOutput(out))

	informational, err := cl.Run("prog", []string{"--version"})
	require.NoError(t, err)
	require.True(t, informational)
}

func TestRun_NormalCompletionWritesNothing(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cl, b := newBasic(out)

	informational, err := cl.Run("basic", []string{"1", "2", "--flag", "x", "--bool", "3"})
	require.NoError(t, err)
	require.False(t, informational)
	require.Empty(t, out.String())
	require.Equal(t, []int{1, 2, 3}, b.numbers)
	require.Equal(t, "x", *b.flag)
	require.True(t, b.given)
}

func TestUsageLine_NoArguments(t *testing.T) {
	t.Parallel()

	cl := commandline.New("nothing", nil)
	require.Equal(t, "prog", cl.UsageLine("prog"))
	require.Equal(t, "nothing", cl.Description())
	require.Equal(t, "nothing\n\nUsage:\n  prog\n\nArguments:\n", cl.HelpText("prog"))
}
