// Package destination wraps caller-owned storage so the command line engine
// can store parsed tokens into it without knowing its type.
//
// A Destination never owns the storage it writes to. The variable, array or
// buffer handed to New must outlive every Run of the command line that uses
// it.
package destination
