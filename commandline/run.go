package commandline

import (
	"strings"

	"github.com/vk/cliarg/argerr"
	"github.com/vk/cliarg/internal/tokens"
)

// Run parses args, which excludes the program name, into the declared
// destinations. It reports true if an informational argument (help, usage
// or version) fired; its text has then been written and the caller would
// normally exit successfully.
//
// Any failure aborts the scan. Destinations may have been partially written
// by then and must not be relied on.
func (c *CommandLine) Run(program string, args []string) (bool, error) {
	c.reset()

	src := tokens.New(args)
	current := 0
	for src.Remaining() > 0 {
		tok, err := src.Peek()
		if err != nil {
			return false, err
		}

		if strings.HasPrefix(tok, "-") {
			informational, err := c.handleFlag(program, tok, src)
			if err != nil || informational {
				return informational, err
			}
			continue
		}

		current = c.skipFull(current)
		if current == c.positionals {
			return false, &argerr.Error{Kind: argerr.UnhandledArgument, Token: tok}
		}
		arg := c.args[current]
		c.logger.Debug("Dispatching positional.", "token", tok, "argument", arg.Name())
		if err := arg.Handle(src); err != nil {
			return false, err
		}
		c.counts[current]++
	}

	for i, arg := range c.args {
		if c.counts[i] < arg.Arity().Min() {
			return false, &argerr.Error{
				Kind:  argerr.TooFewOccurrences,
				Arg:   arg.Name(),
				Count: c.counts[i],
				Limit: arg.Arity().Min(),
			}
		}
	}
	c.logger.Debug("Command line parsed.", "tokens", len(args))
	return false, nil
}

// RunArgs is Run with the program name taken from argv[0].
func (c *CommandLine) RunArgs(argv []string) (bool, error) {
	if len(argv) == 0 {
		return false, argerr.Invocation("argv must contain at least the program name")
	}
	return c.Run(argv[0], argv[1:])
}

// handleFlag consumes the flag token at the head of src and any value it
// takes.
func (c *CommandLine) handleFlag(program, tok string, src *tokens.Stream) (bool, error) {
	idx, ok := c.flags[tok]
	if !ok {
		return false, &argerr.Error{Kind: argerr.UnknownFlag, Token: tok}
	}
	arg := c.args[idx]
	if c.counts[idx] == arg.Arity().Max() {
		return false, &argerr.Error{
			Kind:  argerr.TooManyOccurrences,
			Arg:   arg.Name(),
			Token: tok,
			Count: c.counts[idx],
			Limit: arg.Arity().Max(),
		}
	}

	if arg.Kind().IsInformational() {
		c.logger.Debug("Informational flag fired.", "flag", tok, "kind", arg.Kind().String())
		return true, c.inform(program, arg)
	}

	if _, err := src.Next(); err != nil {
		return false, err
	}
	c.logger.Debug("Dispatching flag.", "flag", tok, "occurrence", c.counts[idx]+1)
	if err := arg.Handle(src); err != nil {
		return false, err
	}
	c.counts[idx]++
	return false, nil
}

// skipFull advances past positionals that cannot take another occurrence.
func (c *CommandLine) skipFull(current int) int {
	for current < c.positionals && c.counts[current] == c.args[current].Arity().Max() {
		current++
	}
	return current
}

func (c *CommandLine) reset() {
	for i, arg := range c.args {
		c.counts[i] = 0
		arg.Reset()
	}
}
