// Package argerr defines the structured failures reported by the command
// line engine.
//
// Every failure is an *Error carrying a Kind. Callers match kinds with
// errors.Is against the exported sentinels (for example ErrUnknownFlag) or
// extract the kind with KindOf. Kinds split into three groups: malformed calls
// into the engine (InvalidInvocation), bad user input (UnknownFlag through
// ParseFailure) and engine defects (InternalCapacityFault).
package argerr
