// Package usage renders the human-readable text generated for a command
// line: the compact arity notation for a single argument, the one-line usage
// summary and the full help message.
package usage
