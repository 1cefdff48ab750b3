package parse

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ctyConvertible reports whether the cty fallback can decode into t.
func ctyConvertible(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// parseCty treats token as a cty string, converts it to the cty type implied
// by the Go target and decodes the result into v. gocty enforces whole
// numbers and the range of sized integer kinds.
func parseCty(v reflect.Value, token string) error {
	want, err := gocty.ImpliedType(v.Interface())
	if err != nil {
		return fmt.Errorf("cannot imply cty type for %s: %w", v.Type(), err)
	}

	converted, err := convert.Convert(cty.StringVal(token), want)
	if err != nil {
		return fmt.Errorf("cannot convert to %s: %w", want.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, v.Addr().Interface())
}
