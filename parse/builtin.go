package parse

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

type builtinFunc func(v reflect.Value, token string) error

func builtinFor(t reflect.Type) builtinFunc {
	switch {
	case t == durationType:
		return parseDuration
	case t.Kind() == reflect.String:
		return parseString
	case isText(t):
		return parseTextArray
	}

	switch t.Kind() {
	case reflect.Pointer:
		return parseOptional
	case reflect.Slice:
		return parseSequence
	case reflect.Map:
		if isSet(t) {
			return parseSetEntry
		}
		return parseMapEntry
	}
	return nil
}

// isText reports whether t is a fixed-size byte array, which is treated as a
// single bounded string rather than a sequence.
func isText(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.Elem().Kind() == reflect.Uint8
}

// isSet reports whether t is a map used as a set, i.e. map[K]struct{}.
func isSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}

func parseString(v reflect.Value, token string) error {
	v.SetString(token)
	return nil
}

func parseDuration(v reflect.Value, token string) error {
	d, err := time.ParseDuration(token)
	if err != nil {
		return err
	}
	v.SetInt(int64(d))
	return nil
}

func parseTextArray(v reflect.Value, token string) error {
	return Text(v.Slice(0, v.Len()).Bytes(), token)
}

// Text copies token into buf as a NUL-terminated string. It fails when the
// token and its terminator do not fit.
func Text(buf []byte, token string) error {
	if len(token) >= len(buf) {
		return fmt.Errorf("command line argument of %d byte(s) does not fit in fixed size character buffer of %d byte(s)", len(token), len(buf))
	}
	n := copy(buf, token)
	clear(buf[n:])
	return nil
}

// CString returns the contents of buf up to its first NUL byte.
func CString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// parseOptional allocates the pointee if needed and parses into it. A freshly
// allocated pointee is released again if parsing fails.
func parseOptional(v reflect.Value, token string) error {
	fresh := v.IsNil()
	if fresh {
		v.Set(reflect.New(v.Type().Elem()))
	}
	if err := Into(v.Elem(), token); err != nil {
		if fresh {
			v.Set(reflect.Zero(v.Type()))
		}
		return err
	}
	return nil
}

func parseSequence(v reflect.Value, token string) error {
	elem := reflect.New(v.Type().Elem()).Elem()
	if err := Into(elem, token); err != nil {
		return err
	}
	v.Set(reflect.Append(v, elem))
	return nil
}

func parseSetEntry(v reflect.Value, token string) error {
	key := reflect.New(v.Type().Key()).Elem()
	if err := Into(key, token); err != nil {
		return err
	}
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}
	v.SetMapIndex(key, reflect.Zero(v.Type().Elem()))
	return nil
}

func parseMapEntry(v reflect.Value, token string) error {
	rawKey, rawValue, found := strings.Cut(token, "=")
	if !found {
		return fmt.Errorf("command line argument %q not in <key>=<value> form", token)
	}

	key := reflect.New(v.Type().Key()).Elem()
	if err := Into(key, rawKey); err != nil {
		return fmt.Errorf("in key: %w", err)
	}
	value := reflect.New(v.Type().Elem()).Elem()
	if err := Into(value, rawValue); err != nil {
		return fmt.Errorf("in value for key %q: %w", rawKey, err)
	}

	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}
	v.SetMapIndex(key, value)
	return nil
}
