package checked

import "intguard/intbits"

// Less reports whether t < u after both operands are cast into R. A cast
// failure of either operand is returned with its original kind; the first
// failure wins.
func Less[R, T, U intbits.Integer](t T, u U) Result[bool] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return failFrom[bool](rt)
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return failFrom[bool](ru)
	}
	return Ok(rt.value < ru.value)
}

// Greater reports whether t > u after both operands are cast into R.
func Greater[R, T, U intbits.Integer](t T, u U) Result[bool] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return failFrom[bool](rt)
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return failFrom[bool](ru)
	}
	return Ok(rt.value > ru.value)
}

// Equal reports whether t == u after both operands are cast into R.
func Equal[R, T, U intbits.Integer](t T, u U) Result[bool] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return failFrom[bool](rt)
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return failFrom[bool](ru)
	}
	return Ok(rt.value == ru.value)
}
