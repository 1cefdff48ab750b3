package destination

import (
	"fmt"
	"reflect"

	"github.com/vk/cliarg/argerr"
	"github.com/vk/cliarg/parse"
)

// Kind is the storage shape behind a Destination.
type Kind int

const (
	// Scalar is a single slot; every store is delegated to parse.
	Scalar Kind = iota
	// Bounded is a fixed-capacity sequence of slots filled one store at a
	// time through a cursor.
	Bounded
	// Text is a fixed-capacity byte buffer holding one bounded string.
	Text
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Bounded:
		return "bounded"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Destination is a type-erased sink over borrowed storage.
type Destination struct {
	kind Kind
	// target is the scalar slot for Scalar, and the sequence of slots for
	// Bounded and Text.
	target reflect.Value
	cursor int
}

// New wraps target, which must be one of:
//
//   - a non-nil pointer to a supported scalar or container type (Scalar);
//   - a non-nil pointer to a fixed-size array of non-byte elements, or a
//     non-byte slice passed by value whose length is its capacity (Bounded);
//   - a non-nil pointer to a fixed-size byte array, or a byte slice passed
//     by value (Text).
//
// Element types are validated with parse.Check.
func New(target any) (*Destination, error) {
	v := reflect.ValueOf(target)

	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return &Destination{kind: Text, target: v}, nil
		}
		if err := parse.Check(v.Type().Elem()); err != nil {
			return nil, err
		}
		return &Destination{kind: Bounded, target: v}, nil

	case reflect.Pointer:
		if v.IsNil() {
			return nil, fmt.Errorf("destination: nil %s", v.Type())
		}
		elem := v.Elem()
		if elem.Kind() == reflect.Array {
			if elem.Type().Elem().Kind() == reflect.Uint8 {
				return &Destination{kind: Text, target: elem.Slice(0, elem.Len())}, nil
			}
			if err := parse.Check(elem.Type().Elem()); err != nil {
				return nil, err
			}
			return &Destination{kind: Bounded, target: elem.Slice(0, elem.Len())}, nil
		}
		if err := parse.Check(elem.Type()); err != nil {
			return nil, err
		}
		return &Destination{kind: Scalar, target: elem}, nil

	default:
		return nil, fmt.Errorf("destination: %T is neither a pointer nor a slice", target)
	}
}

// Must is like New but panics if target cannot be wrapped.
func Must(target any) *Destination {
	d, err := New(target)
	if err != nil {
		panic(err)
	}
	return d
}

// Kind returns the storage shape.
func (d *Destination) Kind() Kind { return d.kind }

// Capacity is the number of slots of a Bounded destination, 1 otherwise.
func (d *Destination) Capacity() int {
	if d.kind == Bounded {
		return d.target.Len()
	}
	return 1
}

// Stored is the number of slots of a Bounded destination already filled.
func (d *Destination) Stored() int {
	return d.cursor
}

// Store parses token into the destination. Parse errors are reported as
// argerr.ParseFailure. A store into a full Bounded destination is an
// argerr.InternalCapacityFault: arity checks upstream should prevent it.
func (d *Destination) Store(token string) error {
	switch d.kind {
	case Text:
		if err := parse.Text(d.target.Bytes(), token); err != nil {
			return argerr.Parse(token, err)
		}
		return nil

	case Bounded:
		if d.cursor == d.target.Len() {
			return &argerr.Error{
				Kind:  argerr.InternalCapacityFault,
				Token: token,
				Count: uint(d.cursor),
				Limit: uint(d.target.Len()),
			}
		}
		if err := parse.Into(d.target.Index(d.cursor), token); err != nil {
			return argerr.Parse(token, err)
		}
		d.cursor++
		return nil

	default:
		if err := parse.Into(d.target, token); err != nil {
			return argerr.Parse(token, err)
		}
		return nil
	}
}

// Rewind moves the cursor of a Bounded destination back to the first slot.
// Values already stored are left in place.
func (d *Destination) Rewind() {
	d.cursor = 0
}
