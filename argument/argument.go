package argument

import (
	"fmt"
	"strings"

	"github.com/vk/cliarg/argerr"
	"github.com/vk/cliarg/arity"
	"github.com/vk/cliarg/destination"
	"github.com/vk/cliarg/parse"
	"github.com/vk/cliarg/usage"
)

// FlagPrefix marks a name as a flag.
const FlagPrefix = "--"

// Kind tags the variant of a Descriptor.
type Kind int

const (
	Normal Kind = iota
	Bool
	Help
	Usage
	Version
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Bool:
		return "bool"
	case Help:
		return "help"
	case Usage:
		return "usage"
	case Version:
		return "version"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsInformational reports whether the kind short-circuits parsing.
func (k Kind) IsInformational() bool {
	return k == Help || k == Usage || k == Version
}

// TokenSource is the remaining command line as seen by Handle.
type TokenSource interface {
	Remaining() int
	Next() (string, error)
}

// Descriptor is a single declared argument. It is immutable once built; the
// destination it writes to belongs to the caller.
type Descriptor struct {
	kind  Kind
	name  string
	help  string
	arity arity.Arity

	dest *destination.Destination

	flag  *bool
	setTo bool

	version string
}

// New declares a value-consuming argument storing into dst. See
// destination.New for the accepted destination shapes. The arity defaults
// to parse.DefaultArity(dst) and the help text to "".
//
// New panics if the name or destination is invalid.
func New(name string, dst any, opts ...Option) Descriptor {
	o := collect(opts)
	mustValidName(name, Normal)

	dest, err := destination.New(dst)
	if err != nil {
		panic(fmt.Sprintf("argument %s: %v", name, err))
	}

	a := parse.DefaultArity(dst)
	if o.arity != nil {
		a = *o.arity
	}

	return Descriptor{
		kind:  Normal,
		name:  name,
		help:  o.helpOr(""),
		arity: a,
		dest:  dest,
	}
}

// StoreTrue declares a flag that sets *dst to true when present. *dst is
// reset to false immediately.
func StoreTrue(name string, dst *bool, opts ...Option) Descriptor {
	return storeBool(name, dst, true, opts)
}

// StoreFalse declares a flag that sets *dst to false when present. *dst is
// reset to true immediately.
func StoreFalse(name string, dst *bool, opts ...Option) Descriptor {
	return storeBool(name, dst, false, opts)
}

func storeBool(name string, dst *bool, setTo bool, opts []Option) Descriptor {
	o := collect(opts)
	mustValidName(name, Bool)
	mustFixedArity(name, o)
	if dst == nil {
		panic(fmt.Sprintf("argument %s: nil destination", name))
	}
	*dst = !setTo

	return Descriptor{
		kind:  Bool,
		name:  name,
		help:  o.helpOr(""),
		arity: arity.Optional(),
		flag:  dst,
		setTo: setTo,
	}
}

// HelpFlag declares a flag that prints the full help message and stops
// parsing.
func HelpFlag(flag string, opts ...Option) Descriptor {
	return info(Help, flag, "", "prints this help message and exits", opts)
}

// UsageFlag declares a flag that prints the usage line and stops parsing.
func UsageFlag(flag string, opts ...Option) Descriptor {
	return info(Usage, flag, "", "prints usage and exits", opts)
}

// VersionFlag declares a flag that prints version and stops parsing.
func VersionFlag(flag, version string, opts ...Option) Descriptor {
	return info(Version, flag, version, "prints version and exits", opts)
}

func info(kind Kind, flag, version, defaultHelp string, opts []Option) Descriptor {
	o := collect(opts)
	mustValidName(flag, kind)
	mustFixedArity(flag, o)

	return Descriptor{
		kind:    kind,
		name:    flag,
		help:    o.helpOr(defaultHelp),
		arity:   arity.Optional(),
		version: version,
	}
}

// IsFlag reports whether name declares a flag rather than a positional.
func IsFlag(name string) bool {
	return strings.HasPrefix(name, FlagPrefix)
}

func mustValidName(name string, kind Kind) {
	switch {
	case name == "":
		panic(fmt.Sprintf("%s argument declared without a name", kind))
	case kind != Normal && !IsFlag(name):
		panic(fmt.Sprintf("%s argument %q must be a flag starting with %q", kind, name, FlagPrefix))
	case !IsFlag(name) && strings.HasPrefix(name, "-"):
		panic(fmt.Sprintf("argument %q: positional names must not start with a dash and flags need %q", name, FlagPrefix))
	}
}

func mustFixedArity(name string, o options) {
	if o.arity != nil && *o.arity != arity.Optional() {
		panic(fmt.Sprintf("argument %s: value-less flags always have arity %s", name, arity.Optional()))
	}
}

// Kind returns the variant of the descriptor.
func (d Descriptor) Kind() Kind { return d.kind }

// Name returns the declared name, including any flag prefix.
func (d Descriptor) Name() string { return d.name }

// Arity returns the permitted number of occurrences. Value-less kinds are
// always Optional.
func (d Descriptor) Arity() arity.Arity { return d.arity }

// Help returns the declared help text.
func (d Descriptor) Help() string { return d.help }

// Version returns the version string of a Version descriptor, "" otherwise.
func (d Descriptor) Version() string { return d.version }

// IsFlag reports whether the descriptor is looked up by name.
func (d Descriptor) IsFlag() bool { return IsFlag(d.name) }

// TakesValue reports whether each occurrence consumes a token.
func (d Descriptor) TakesValue() bool { return d.kind == Normal }

// Handle processes one occurrence. src must be positioned at the token this
// occurrence consumes, if it consumes one.
func (d Descriptor) Handle(src TokenSource) error {
	switch d.kind {
	case Normal:
		if src.Remaining() == 0 {
			return &argerr.Error{Kind: argerr.MissingValue, Arg: d.name}
		}
		tok, err := src.Next()
		if err != nil {
			return err
		}
		return argerr.WithArg(d.dest.Store(tok), d.name)
	case Bool:
		*d.flag = d.setTo
		return nil
	default:
		// Informational actions are triggered by the engine.
		return nil
	}
}

// Reset rewinds the destination so a new invocation fills it from the start.
func (d Descriptor) Reset() {
	if d.dest != nil {
		d.dest.Rewind()
	}
}

// Usage renders the descriptor's fragment of the usage line, e.g.
// "[--count count]" or "files [files]...".
func (d Descriptor) Usage() string {
	return usage.Notation(d.displayName(), d.arity)
}

// HelpLine renders the descriptor's line in the help message.
func (d Descriptor) HelpLine() string {
	return d.displayName() + ": " + d.help
}

// displayName is the flag followed by its value placeholder for flags that
// take a value, and the bare name otherwise.
func (d Descriptor) displayName() string {
	if d.IsFlag() && d.TakesValue() {
		return d.name + " " + strings.TrimPrefix(d.name, FlagPrefix)
	}
	return d.name
}
