package parse

import (
	"reflect"

	"github.com/vk/cliarg/arity"
)

// DefaultArity infers the arity of a destination from its shape:
//
//   - a pointer to a scalar: Exactly(1)
//   - a pointer to a pointer to T (optional): NoMoreThan(max of T)
//   - a fixed-size array, or a slice passed by value, of non-byte elements:
//     NoMoreThan(length)
//   - a fixed-size byte array or byte slice passed by value: Exactly(1)
//   - a pointer to a slice or map: Unbounded()
func DefaultArity(dst any) arity.Arity {
	v := reflect.ValueOf(dst)
	switch v.Kind() {
	case reflect.Slice:
		return boundedArity(v.Type().Elem(), v.Len())
	case reflect.Pointer:
		return shapeArity(v.Type().Elem())
	default:
		return arity.Exactly(1)
	}
}

func shapeArity(t reflect.Type) arity.Arity {
	switch t.Kind() {
	case reflect.Array:
		return boundedArity(t.Elem(), t.Len())
	case reflect.Slice, reflect.Map:
		return arity.Unbounded()
	case reflect.Pointer:
		return arity.NoMoreThan(shapeArity(t.Elem()).Max())
	default:
		return arity.Exactly(1)
	}
}

func boundedArity(elem reflect.Type, length int) arity.Arity {
	if elem.Kind() == reflect.Uint8 {
		return arity.Exactly(1)
	}
	return arity.NoMoreThan(uint(length))
}
