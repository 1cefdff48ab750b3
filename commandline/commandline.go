package commandline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/cliarg/argument"
	"github.com/vk/cliarg/usage"
)

// CommandLine owns the declared arguments, partitioned so positionals come
// first, and the per-invocation occurrence counters.
type CommandLine struct {
	description string
	args        []argument.Descriptor
	positionals int
	flags       map[string]int
	counts      []uint

	out    io.Writer
	logger *slog.Logger
}

// New builds a CommandLine. The declared order is kept within positionals
// and within flags; it defines positional matching order and the order of
// the help message. New panics if two flags share a name.
func New(description string, args []argument.Descriptor, opts ...Option) *CommandLine {
	c := &CommandLine{
		description: description,
		args:        make([]argument.Descriptor, 0, len(args)),
		flags:       make(map[string]int),
		counts:      make([]uint, len(args)),
	}
	defaults(c)
	for _, opt := range opts {
		opt(c)
	}

	for _, arg := range args {
		if !arg.IsFlag() {
			c.args = append(c.args, arg)
		}
	}
	c.positionals = len(c.args)
	for _, arg := range args {
		if !arg.IsFlag() {
			continue
		}
		if _, exists := c.flags[arg.Name()]; exists {
			panic(fmt.Sprintf("flag '%s' declared more than once", arg.Name()))
		}
		c.flags[arg.Name()] = len(c.args)
		c.args = append(c.args, arg)
	}

	c.logger.Debug("Command line declared.", "positionals", c.positionals, "flags", len(c.flags))
	return c
}

// Description returns the description given to New.
func (c *CommandLine) Description() string {
	return c.description
}

// Arguments returns the declared arguments in partitioned order.
func (c *CommandLine) Arguments() []argument.Descriptor {
	out := make([]argument.Descriptor, len(c.args))
	copy(out, c.args)
	return out
}

// Occurrences reports how many times the named argument occurred during the
// last Run, and whether such an argument is declared.
func (c *CommandLine) Occurrences(name string) (uint, bool) {
	for i, arg := range c.args {
		if arg.Name() == name {
			return c.counts[i], true
		}
	}
	return 0, false
}

// UsageLine renders "<program> <fragment> <fragment> ...".
func (c *CommandLine) UsageLine(program string) string {
	fragments := make([]string, len(c.args))
	for i, arg := range c.args {
		fragments[i] = arg.Usage()
	}
	return usage.Line(program, fragments...)
}

// HelpText renders the full help message.
func (c *CommandLine) HelpText(program string) string {
	lines := make([]string, len(c.args))
	for i, arg := range c.args {
		lines[i] = arg.HelpLine()
	}
	return usage.Help(c.description, c.UsageLine(program), lines...)
}

// inform writes the text of an informational argument.
func (c *CommandLine) inform(program string, arg argument.Descriptor) error {
	var text string
	switch arg.Kind() {
	case argument.Help:
		text = c.HelpText(program)
	case argument.Usage:
		text = c.UsageLine(program) + "\n"
	case argument.Version:
		text = arg.Version() + "\n"
	}
	if _, err := io.WriteString(c.out, text); err != nil {
		return fmt.Errorf("failed to write %s output: %w", arg.Kind(), err)
	}
	return nil
}
