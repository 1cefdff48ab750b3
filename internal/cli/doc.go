// Package cli is responsible for parsing the example driver's command-line
// arguments, validating user input, and handling process-level concerns like
// exit codes. It translates the command line into the application's
// configuration using the commandline engine.
package cli
