package checked

import (
	"intguard/intbits"
	"intguard/safecmp"
)

// digitsOf is the number of value bits of R: the full width for unsigned
// types, one less for signed types (the sign bit holds no magnitude).
func digitsOf[R intbits.Integer]() int {
	if intbits.IsSigned[R]() {
		return intbits.BitsOf[R]() - 1
	}
	return intbits.BitsOf[R]()
}

// shiftFrame applies the checks shared by both shift directions: zero
// counts are the identity, negative counts and counts of at least the
// result width are implementation defined per CERT INT34-C.
// It reports handled == true when the result is already decided.
func shiftFrame[R, T, U intbits.Integer](t T, u U) (r Result[R], handled bool) {
	if u == 0 {
		return Cast[R](t), true
	}
	if safecmp.Less(u, 0) {
		return Fail[R](KindImplementationDefined, "shifting negative amount is implementation defined behavior"), true
	}
	if !safecmp.Less(u, intbits.BitsOf[R]()) {
		return Fail[R](KindImplementationDefined, "shifting more bits than available is implementation defined behavior"), true
	}
	if t == 0 {
		return Ok(R(0)), true
	}
	return Result[R]{}, false
}

// Lsh returns t << u in the result type R. Shifting a negative value left,
// or shifting set bits past the top of R, is undefined behavior.
func Lsh[R, T, U intbits.Integer](t T, u U) Result[R] {
	if r, handled := shiftFrame[R](t, u); handled {
		return r
	}
	if intbits.IsSigned[T]() && t < 0 {
		return Fail[R](KindUndefinedBehavior, "shifting a negative value is undefined behavior")
	}
	if safecmp.Greater(u, digitsOf[R]()-intbits.SignificantBits(t)) {
		return Fail[R](KindUndefinedBehavior, "shifting left more bits than available is undefined behavior")
	}
	// The checks above bound the shifted value to the value bits of R.
	return Ok(R(intbits.Magnitude(t) << uint64(u)))
}

// Rsh returns t >> u in the result type R. Right-shifting a negative value
// is implementation defined.
func Rsh[R, T, U intbits.Integer](t T, u U) Result[R] {
	if r, handled := shiftFrame[R](t, u); handled {
		return r
	}
	if intbits.IsSigned[T]() && t < 0 {
		return Fail[R](KindImplementationDefined, "shifting a negative value is implementation defined behavior")
	}
	return Cast[R](intbits.Magnitude(t) >> uint64(u))
}
