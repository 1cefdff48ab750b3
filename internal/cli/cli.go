package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vk/cliarg/argerr"
	"github.com/vk/cliarg/argument"
	"github.com/vk/cliarg/arity"
	"github.com/vk/cliarg/commandline"
	"github.com/vk/cliarg/internal/app"
	"github.com/vk/cliarg/parse"
)

const description = "Basic example command line. Sums the given numbers and echoes every other argument it understood."

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the parsing failure behind the exit.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(program string, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		numbers   []int
		flag      *string
		boolGiven bool
		name      [32]byte
		pair      [2]int
		settings  map[string]string
		tags      map[string]struct{}
		timeout   *time.Duration
		logLevel  = "info"
		logFormat = "text"
		expr      = parse.MustValue("list(number)")
	)

	cl := commandline.New(description, []argument.Descriptor{
		argument.HelpFlag("--help"),
		argument.UsageFlag("--usage"),
		argument.VersionFlag("--version", app.Version),
		argument.New("numbers", &numbers, argument.WithHelp("positional args")),
		argument.New("--flag", &flag, argument.WithHelp("optional flag")),
		argument.StoreTrue("--bool", &boolGiven, argument.WithHelp("argumentless flag")),
		argument.New("--name", &name, argument.WithArity(arity.Optional()), argument.WithHelp("a name of at most 31 bytes")),
		argument.New("--pair", &pair, argument.WithHelp("up to two integers, one per occurrence")),
		argument.New("--set", &settings, argument.WithHelp("a key=value setting, repeatable")),
		argument.New("--tag", &tags, argument.WithHelp("a tag, repeatable")),
		argument.New("--expr", expr, argument.WithArity(arity.Optional()), argument.WithHelp("an HCL list of numbers, e.g. '[1, 2]'")),
		argument.New("--timeout", &timeout, argument.WithHelp("a duration such as 1m30s")),
		argument.New("--log-level", &logLevel, argument.WithArity(arity.Optional()), argument.WithHelp("one of debug, info, warn, error")),
		argument.New("--log-format", &logFormat, argument.WithArity(arity.Optional()), argument.WithHelp("text or json")),
	}, commandline.WithOutput(output), commandline.WithLogger(slog.Default()))

	shouldExit, err := cl.Run(program, args)
	if err != nil {
		return nil, false, toExitError(err)
	}
	if shouldExit {
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	var given []int
	if count, _ := cl.Occurrences("--pair"); count > 0 {
		given = pair[:count]
	}

	config, err := app.NewConfig(app.Config{
		Numbers:   numbers,
		Flag:      flag,
		Bool:      boolGiven,
		Name:      parse.CString(name[:]),
		Pair:      given,
		Settings:  settings,
		Tags:      tags,
		Expr:      expr.Val,
		Timeout:   timeout,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// toExitError maps user input failures to exit code 2 and everything else,
// which indicates a defect, to 1.
func toExitError(err error) *ExitError {
	code := 1
	if argerr.KindOf(err).IsUserError() {
		code = 2
	}
	return &ExitError{Code: code, Message: fmt.Sprintf("%v\nTry '--help' for more information.", err), Err: err}
}
