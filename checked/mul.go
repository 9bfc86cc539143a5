package checked

import "intguard/intbits"

// Mul returns t * u in the result type R. Both operands are cast into R
// first; the first cast failure wins.
//
// When R fits in half of the widest native integer the product is formed in
// a doubled-width intermediate and compared against R's bounds. For wider R
// the overflow pre-check divides R's bound by one operand, with a
// four-quadrant sign split to avoid intermediate overflow. Zero times
// anything is Ok(0) on both paths; no guard fails for a zero operand.
func Mul[R, T, U intbits.Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	if intbits.BitsOf[R]() <= 32 {
		return mulWide(rt.value, ru.value)
	}
	return mulNarrow(rt.value, ru.value)
}

// mulWide multiplies in a 64-bit intermediate that cannot overflow for
// operands of at most 32 bits.
func mulWide[R intbits.Integer](t, u R) Result[R] {
	if intbits.IsSigned[R]() {
		p := int64(t) * int64(u)
		if p > int64(intbits.MaxOf[R]()) {
			return Fail[R](KindPositiveOverflow, "multiplication overflow")
		}
		if p < int64(intbits.MinOf[R]()) {
			return Fail[R](KindNegativeOverflow, "multiplication overflow")
		}
		return Ok(t * u)
	}
	p := uint64(t) * uint64(u)
	if p > uint64(intbits.MaxOf[R]()) {
		return Fail[R](KindPositiveOverflow, "multiplication overflow")
	}
	return Ok(t * u)
}

// mulNarrow pre-checks by division against R's bounds. Each guard divides
// by the operand already known non-zero on that path, so 0 * anything falls
// through to Ok(0).
func mulNarrow[R intbits.Integer](t, u R) Result[R] {
	if !intbits.IsSigned[R]() {
		if u > 0 && t > intbits.MaxOf[R]()/u {
			return Fail[R](KindPositiveOverflow, "multiplication overflow")
		}
		return Ok(t * u)
	}
	switch {
	case t > 0 && u > 0:
		if t > intbits.MaxOf[R]()/u {
			return Fail[R](KindPositiveOverflow, "multiplication overflow")
		}
	case t > 0:
		// u <= 0
		if u < intbits.MinOf[R]()/t {
			return Fail[R](KindNegativeOverflow, "multiplication overflow")
		}
	case u > 0:
		// t <= 0
		if t < intbits.MinOf[R]()/u {
			return Fail[R](KindNegativeOverflow, "multiplication overflow")
		}
	default:
		// t <= 0, u <= 0
		if t != 0 && u < intbits.MaxOf[R]()/t {
			return Fail[R](KindPositiveOverflow, "multiplication overflow")
		}
	}
	return Ok(t * u)
}
