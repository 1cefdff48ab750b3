// Package arity describes how many times a declared argument may legally be
// supplied on a command line.
//
// An Arity is a closed, inclusive range. It is built once at declaration time
// through one of the named constructors and never changes afterwards.
package arity
