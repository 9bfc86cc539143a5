// Package safecmp compares integers of any two machine integer types with
// the mathematically correct result, never losing precision to implicit
// conversion. A negative operand is always less than any unsigned value.
package safecmp

import "intguard/intbits"

// Less reports whether a < b over the integers.
func Less[T, U intbits.Integer](a T, b U) bool {
	aNeg := a < 0
	bNeg := b < 0
	switch {
	case aNeg && !bNeg:
		return true
	case !aNeg && bNeg:
		return false
	case aNeg && bNeg:
		// Both negative, so both signed and within int64.
		return int64(a) < int64(b)
	default:
		return uint64(a) < uint64(b)
	}
}

// Greater reports whether a > b over the integers.
func Greater[T, U intbits.Integer](a T, b U) bool {
	return Less(b, a)
}

// Equal reports whether a == b over the integers.
func Equal[T, U intbits.Integer](a T, b U) bool {
	if (a < 0) != (b < 0) {
		return false
	}
	if a < 0 {
		return int64(a) == int64(b)
	}
	return uint64(a) == uint64(b)
}
