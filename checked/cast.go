package checked

import (
	"intguard/intbits"
	"intguard/safecmp"
)

// Cast converts t into the result type R, checking representability across
// the four sign quadrants. A negative value converted to an unsigned R is a
// domain failure; a value beyond R's bounds is a positive or negative
// overflow. All comparisons are cross-type safe.
func Cast[R, T intbits.Integer](t T) Result[R] {
	if intbits.IsSigned[R]() {
		if intbits.IsSigned[T]() {
			if safecmp.Greater(t, intbits.MaxOf[R]()) {
				return Fail[R](KindPositiveOverflow, "converted signed value too large")
			}
			if safecmp.Less(t, intbits.MinOf[R]()) {
				return Fail[R](KindNegativeOverflow, "converted signed value too small")
			}
			return Ok(R(t))
		}
		if safecmp.Greater(t, intbits.MaxOf[R]()) {
			return Fail[R](KindPositiveOverflow, "converted unsigned value too large")
		}
		return Ok(R(t))
	}
	if intbits.IsSigned[T]() {
		if safecmp.Less(t, 0) {
			return Fail[R](KindDomain, "converted negative value to unsigned")
		}
		if safecmp.Greater(t, intbits.MaxOf[R]()) {
			return Fail[R](KindPositiveOverflow, "converted signed value too large")
		}
		return Ok(R(t))
	}
	if safecmp.Greater(t, intbits.MaxOf[R]()) {
		return Fail[R](KindPositiveOverflow, "converted unsigned value too large")
	}
	return Ok(R(t))
}

// Float is the constraint of the machine floating-point types.
type Float interface {
	~float32 | ~float64
}

// CastFloat converts an integer into a floating-point result type. Every
// machine integer is within the finite range of float32 and float64, so the
// conversion always succeeds.
func CastFloat[F Float, T intbits.Integer](t T) Result[F] {
	return Ok(F(t))
}
