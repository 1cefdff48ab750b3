package commandline

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a CommandLine.
type Option func(*CommandLine)

// WithOutput sets where help, usage and version text is written. The
// default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *CommandLine) {
		c.out = w
	}
}

// WithLogger sets the logger used to trace token dispatch at debug level.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CommandLine) {
		c.logger = logger
	}
}

func defaults(c *CommandLine) {
	c.out = os.Stdout
	c.logger = slog.New(slog.DiscardHandler)
}
