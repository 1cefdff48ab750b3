// Package parse converts a single command line token into a typed Go value.
//
// Parse picks a strategy for the destination type in priority order:
//
//  1. a user parser, registered with Register or provided by implementing
//     Parser on the pointer type;
//  2. a built-in parser for a known shape: string kinds, fixed-size byte
//     arrays (bounded text), pointers (optional values), slices (sequences),
//     maps with struct{} values (sets), other maps (key=value entries) and
//     time.Duration;
//  3. a generic fallback: encoding.TextUnmarshaler, then a cty conversion of
//     the token for booleans and numbers.
//
// Types that match none of these are rejected by Check, which argument
// declarations call so unsupported destinations fail when they are declared
// instead of when a user first supplies a value.
//
// Value is a destination for HCL literal expressions constrained by an HCL
// type expression such as list(number) or map(string).
package parse
