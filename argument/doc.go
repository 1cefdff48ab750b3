// Package argument declares the arguments a command line accepts.
//
// A Descriptor is one of five kinds. Normal arguments consume one token per
// occurrence and store it into a destination. Bool arguments are flags that
// set a variable when present. Help, Usage and Version are informational
// flags: they consume nothing, and when one occurs the engine stops parsing
// and prints the corresponding text.
//
// Names starting with "--" declare flags, looked up by exact match. Any other
// name declares a positional argument, matched purely by position.
package argument
