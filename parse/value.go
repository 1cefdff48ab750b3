package parse

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Value is a destination holding a cty value of a declared type. Each token
// is read as an HCL literal expression, e.g. `[1, 2, 3]` or `{ a = "b" }`,
// and converted to Type. Expressions are evaluated without variables or
// functions.
//
// When Type is string or any, a token that is not a valid literal is stored
// as a plain string so ordinary words need no quoting.
type Value struct {
	Type cty.Type
	Val  cty.Value
}

// NewValue returns a Value constrained by the HCL type expression typeExpr.
func NewValue(typeExpr string) (*Value, error) {
	t, err := ParseType(typeExpr)
	if err != nil {
		return nil, err
	}
	return &Value{Type: t, Val: cty.NullVal(t)}, nil
}

// MustValue is like NewValue but panics on an invalid type expression.
func MustValue(typeExpr string) *Value {
	v, err := NewValue(typeExpr)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseArg implements Parser.
func (v *Value) ParseArg(token string) error {
	val, err := literalValue(token)
	if err != nil {
		if !v.acceptsRawString() {
			return err
		}
		val = cty.StringVal(token)
	}

	converted, err := convert.Convert(val, v.Type)
	if err != nil {
		return fmt.Errorf("cannot use %s as %s: %w", val.Type().FriendlyName(), v.Type.FriendlyName(), err)
	}
	v.Val = converted
	return nil
}

// IsSet reports whether a value has been stored.
func (v *Value) IsSet() bool {
	return !v.Val.IsNull()
}

func (v *Value) acceptsRawString() bool {
	return v.Type.Equals(cty.String) || v.Type == cty.DynamicPseudoType
}

func literalValue(token string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(token), "<argument>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse %q as an HCL expression: %w", token, diags)
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate %q: %w", token, diags)
	}
	return val, nil
}
