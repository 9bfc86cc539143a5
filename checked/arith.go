package checked

import "intguard/intbits"

// Add returns t + u in the result type R. Both operands are cast into R
// first; the first cast failure wins. The overflow pre-checks follow CERT
// INT30-C (unsigned wrap) and INT32-C (signed overflow).
func Add[R, T, U intbits.Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return addInR(rt.value, ru.value)
}

func addInR[R intbits.Integer](t, u R) Result[R] {
	if intbits.IsSigned[R]() {
		if u > 0 && t > intbits.MaxOf[R]()-u {
			return Fail[R](KindPositiveOverflow, "addition result too large")
		}
		if u < 0 && t < intbits.MinOf[R]()-u {
			return Fail[R](KindNegativeOverflow, "addition result too low")
		}
		return Ok(t + u)
	}
	if intbits.MaxOf[R]()-u < t {
		return Fail[R](KindPositiveOverflow, "addition result too large")
	}
	return Ok(t + u)
}

// Sub returns t - u in the result type R. An unsigned result going below
// zero is a range failure, not an overflow. For signed R the kinds follow
// the sign of u rather than the direction of the result: a result below
// MinOf[R] (u > 0) is reported as KindPositiveOverflow, and a result above
// MaxOf[R] (u < 0) as KindNegativeOverflow.
func Sub[R, T, U intbits.Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return subInR(rt.value, ru.value)
}

func subInR[R intbits.Integer](t, u R) Result[R] {
	if intbits.IsSigned[R]() {
		if u > 0 && t < intbits.MinOf[R]()+u {
			return Fail[R](KindPositiveOverflow, "subtraction result overflows result type")
		}
		if u < 0 && t > intbits.MaxOf[R]()+u {
			return Fail[R](KindNegativeOverflow, "subtraction result overflows result type")
		}
		return Ok(t - u)
	}
	if t < u {
		return Fail[R](KindRange, "subtraction result cannot be negative")
	}
	return Ok(t - u)
}
