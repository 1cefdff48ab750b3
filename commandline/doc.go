// Package commandline is the argument-matching engine.
//
// A CommandLine is built once from a description and the declared
// arguments. Each call to Run scans the tokens left to right exactly once:
// tokens starting with "-" are looked up as flags, every other token is
// handed to the current positional argument. After the scan every argument
// must have occurred at least its arity minimum.
//
// A CommandLine may be run any number of times; occurrence counters and
// bounded destination cursors are reset at the start of every Run. It is not
// safe for concurrent use.
package commandline
