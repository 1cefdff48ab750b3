package arity

import (
	"fmt"
	"math"
)

// Unlimited is the sentinel upper bound of an arity without a maximum.
const Unlimited uint = math.MaxUint

// Arity is the inclusive range of permitted occurrence counts for an argument.
// The zero value is Exactly(0).
type Arity struct {
	min uint
	max uint
}

// Inclusive returns the arity [lo, hi]. It panics if lo > hi.
func Inclusive(lo, hi uint) Arity {
	if lo > hi {
		panic(fmt.Sprintf("arity: inclusive minimum %d is greater than maximum %d", lo, hi))
	}
	return Arity{min: lo, max: hi}
}

// Exactly returns an arity that requires count occurrences.
func Exactly(count uint) Arity {
	return Inclusive(count, count)
}

// AtLeast returns the arity [lo, Unlimited].
func AtLeast(lo uint) Arity {
	return Inclusive(lo, Unlimited)
}

// GreaterThan returns AtLeast(exclusiveMin + 1).
func GreaterThan(exclusiveMin uint) Arity {
	if exclusiveMin == Unlimited {
		panic("arity: GreaterThan(Unlimited) has no valid count")
	}
	return AtLeast(exclusiveMin + 1)
}

// NoMoreThan returns the arity [0, hi].
func NoMoreThan(hi uint) Arity {
	return Inclusive(0, hi)
}

// LessThan returns NoMoreThan(exclusiveMax - 1). It panics if exclusiveMax is
// zero since no count is less than zero.
func LessThan(exclusiveMax uint) Arity {
	if exclusiveMax == 0 {
		panic("arity: LessThan(0) has no valid count")
	}
	return NoMoreThan(exclusiveMax - 1)
}

// Optional returns the arity [0, 1].
func Optional() Arity {
	return Inclusive(0, 1)
}

// Unbounded returns the arity [0, Unlimited].
func Unbounded() Arity {
	return AtLeast(0)
}

// Min is the inclusive minimum number of occurrences.
func (a Arity) Min() uint { return a.min }

// Max is the inclusive maximum number of occurrences, Unlimited if none.
func (a Arity) Max() uint { return a.max }

// IsUnbounded reports whether the arity has no upper bound.
func (a Arity) IsUnbounded() bool { return a.max == Unlimited }

// Allows reports whether count lies within the arity.
func (a Arity) Allows(count uint) bool {
	return count >= a.min && count <= a.max
}

// String renders the arity as "min..max", using "inf" for an unbounded maximum.
func (a Arity) String() string {
	if a.IsUnbounded() {
		return fmt.Sprintf("%d..inf", a.min)
	}
	return fmt.Sprintf("%d..%d", a.min, a.max)
}
