package parse

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
)

// Parser is implemented by pointer types that parse their own tokens. It has
// the same priority as a parser added with Register.
type Parser interface {
	ParseArg(token string) error
}

var (
	parserType          = reflect.TypeFor[Parser]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// ErrNotPointer is returned when Parse is given something other than a
// non-nil pointer.
var ErrNotPointer = errors.New("parse: destination must be a non-nil pointer")

// UnsupportedTypeError reports a destination type no strategy can parse.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf(
		"parse: cannot parse command line values into %s; register a parser with parse.Register "+
			"or implement parse.Parser or encoding.TextUnmarshaler", e.Type)
}

// Parse stores the value of token into the variable dst points to.
func Parse(dst any, token string) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return ErrNotPointer
	}
	return Into(ptr.Elem(), token)
}

// Into stores the value of token into v, which must be settable.
func Into(v reflect.Value, token string) error {
	t := v.Type()

	if fn, ok := lookup(t); ok {
		return fn(v.Addr().Interface(), token)
	}
	if reflect.PointerTo(t).Implements(parserType) {
		return v.Addr().Interface().(Parser).ParseArg(token)
	}

	if builtin := builtinFor(t); builtin != nil {
		return builtin(v, token)
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token))
	}
	if ctyConvertible(t) {
		return parseCty(v, token)
	}
	return &UnsupportedTypeError{Type: t}
}

// Check reports whether values of type t can be parsed, recursing into the
// element types of optional, sequence, set and map shapes.
func Check(t reflect.Type) error {
	if _, ok := lookup(t); ok {
		return nil
	}
	if reflect.PointerTo(t).Implements(parserType) {
		return nil
	}

	switch {
	case t == durationType, t.Kind() == reflect.String, isText(t):
		return nil
	case t.Kind() == reflect.Pointer, t.Kind() == reflect.Slice:
		return Check(t.Elem())
	case t.Kind() == reflect.Map:
		if err := Check(t.Key()); err != nil {
			return err
		}
		if isSet(t) {
			return nil
		}
		return Check(t.Elem())
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) || ctyConvertible(t) {
		return nil
	}
	return &UnsupportedTypeError{Type: t}
}
