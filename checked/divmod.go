package checked

import "intguard/intbits"

// Div returns t / u in the result type R, truncated toward zero. Division
// by zero is a domain failure reported before any conversion. A cast
// failure of either operand is reported as a domain failure rather than
// with its original kind. For signed R, MinOf[R] / -1 is a range failure:
// the quotient exists but is one past R's maximum.
func Div[R, T, U intbits.Integer](t T, u U) Result[R] {
	if u == 0 {
		return Fail[R](KindDomain, "divide by zero")
	}
	rt := Cast[R](t)
	ru := Cast[R](u)
	if rt.IsErr() || ru.IsErr() {
		return Fail[R](KindDomain, "failure converting argument types")
	}
	if intbits.IsSigned[R]() {
		if ru.value == ^R(0) && rt.value == intbits.MinOf[R]() {
			return Fail[R](KindRange, "result cannot be represented")
		}
	}
	return Ok(rt.value / ru.value)
}

// Mod returns t mod |u| with the sign of the dividend t. Modulus by zero is
// a domain failure.
//
// The divisor's absolute value is taken so that MinOf % -1 never executes:
// on two's-complement hardware the modulus comes from the divide
// instruction, and that division overflows. The magnitude is carried in a
// uint64, which also represents |MinInt64|, so a minimum-valued divisor
// needs no special case.
func Mod[R, T, U intbits.Integer](t T, u U) Result[R] {
	if u == 0 {
		return Fail[R](KindDomain, "denominator is zero")
	}
	rem := intbits.Magnitude(t) % intbits.Magnitude(u)
	if rem == 0 {
		return Ok(R(0))
	}
	if t < 0 {
		// rem <= |t| <= 2^63, so -(rem-1)-1 fits int64 even at the bound.
		return Cast[R](-int64(rem-1) - 1)
	}
	return Cast[R](rem)
}
