package argument

import "github.com/vk/cliarg/arity"

// Option customizes a declaration.
type Option func(*options)

type options struct {
	help  *string
	arity *arity.Arity
}

// WithHelp sets the help text shown for the argument.
func WithHelp(text string) Option {
	return func(o *options) {
		o.help = &text
	}
}

// WithArity overrides the arity inferred from the destination.
func WithArity(a arity.Arity) Option {
	return func(o *options) {
		o.arity = &a
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) helpOr(fallback string) string {
	if o.help == nil {
		return fallback
	}
	return *o.help
}
