package argerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Unknown is the kind of any error not produced by this module.
	Unknown Kind = iota
	InvalidInvocation
	UnknownFlag
	TooManyOccurrences
	TooFewOccurrences
	UnhandledArgument
	MissingValue
	ParseFailure
	InternalCapacityFault
)

var kindNames = map[Kind]string{
	Unknown:               "unknown",
	InvalidInvocation:     "invalid invocation",
	UnknownFlag:           "unknown flag",
	TooManyOccurrences:    "too many occurrences",
	TooFewOccurrences:     "too few occurrences",
	UnhandledArgument:     "unhandled argument",
	MissingValue:          "missing value",
	ParseFailure:          "parse failure",
	InternalCapacityFault: "internal capacity fault",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsUserError reports whether the kind is caused by the command line a user
// typed rather than by the program declaring or invoking the engine.
func (k Kind) IsUserError() bool {
	return k >= UnknownFlag && k <= ParseFailure
}

// Error is a single structured failure. Fields that do not apply to the kind
// are left at their zero value.
type Error struct {
	Kind Kind
	// Arg is the name of the declared argument involved, if any.
	Arg string
	// Token is the offending command line token, if any.
	Token string
	// Count is the number of occurrences or stores observed.
	Count uint
	// Limit is the arity bound or capacity that was violated.
	Limit uint
	// Err is the underlying cause.
	Err error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidInvocation     = &Error{Kind: InvalidInvocation}
	ErrUnknownFlag           = &Error{Kind: UnknownFlag}
	ErrTooManyOccurrences    = &Error{Kind: TooManyOccurrences}
	ErrTooFewOccurrences     = &Error{Kind: TooFewOccurrences}
	ErrUnhandledArgument     = &Error{Kind: UnhandledArgument}
	ErrMissingValue          = &Error{Kind: MissingValue}
	ErrParseFailure          = &Error{Kind: ParseFailure}
	ErrInternalCapacityFault = &Error{Kind: InternalCapacityFault}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidInvocation:
		return "invalid invocation: " + causeText(e.Err)
	case UnknownFlag:
		return fmt.Sprintf("invalid command line arguments: unknown flag: %s", e.Token)
	case TooManyOccurrences:
		return fmt.Sprintf("invalid command line arguments: %s used more than the maximum of %d time(s)", e.Arg, e.Limit)
	case TooFewOccurrences:
		return fmt.Sprintf("invalid command line arguments: %s given %d value(s), less than the minimum of %d value(s)", e.Arg, e.Count, e.Limit)
	case UnhandledArgument:
		return fmt.Sprintf("invalid command line arguments: unhandled argument: %s", e.Token)
	case MissingValue:
		return fmt.Sprintf("invalid command line arguments: expected a value after %s", e.Arg)
	case ParseFailure:
		if e.Arg == "" {
			return fmt.Sprintf("invalid value %q: %s", e.Token, causeText(e.Err))
		}
		return fmt.Sprintf("invalid value %q for %s: %s", e.Token, e.Arg, causeText(e.Err))
	case InternalCapacityFault:
		return fmt.Sprintf("internal error: destination holding %d element(s) given too many values", e.Limit)
	default:
		return causeText(e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error target with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithArg returns a copy of err naming the argument it concerns. Errors that
// are not an *Error, or already name an argument, are returned unchanged.
func WithArg(err error, name string) error {
	var e *Error
	if !errors.As(err, &e) || e.Arg != "" {
		return err
	}
	named := *e
	named.Arg = name
	return &named
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Invocation builds an InvalidInvocation error.
func Invocation(format string, args ...any) *Error {
	return &Error{Kind: InvalidInvocation, Err: fmt.Errorf(format, args...)}
}

// Parse builds a ParseFailure error for token caused by err.
func Parse(token string, err error) *Error {
	return &Error{Kind: ParseFailure, Token: token, Err: err}
}

func causeText(err error) string {
	if err == nil {
		return "no cause given"
	}
	return err.Error()
}
