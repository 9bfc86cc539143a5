package checked

import "intguard/intbits"

// The bitwise operations work on the two's-complement bit patterns of their
// operands: each operand is sign- or zero-extended to 64 bits, the pattern
// operation is applied, and the result is truncated to the width of R and
// reinterpreted there. Signed operands are permitted, deviating from the
// strict CERT INT13 recommendation, which would break too much real code.

func patternOf[T intbits.Integer](x T) uint64 {
	if intbits.IsSigned[T]() {
		return uint64(int64(x))
	}
	return uint64(x)
}

// Or returns t | u in the result type R. The result occupies as many bits
// as the wider operand; if that exceeds the width of R the operation fails
// with a positive overflow.
func Or[R, T, U intbits.Integer](t T, u U) Result[R] {
	width := max(intbits.SignificantBits(t), intbits.SignificantBits(u))
	if width > intbits.BitsOf[R]() {
		return Fail[R](KindPositiveOverflow, "result type too small to hold bitwise or")
	}
	return Ok(R(patternOf(t) | patternOf(u)))
}

// Xor returns t ^ u in the result type R, with the same width rule as Or.
func Xor[R, T, U intbits.Integer](t T, u U) Result[R] {
	width := max(intbits.SignificantBits(t), intbits.SignificantBits(u))
	if width > intbits.BitsOf[R]() {
		return Fail[R](KindPositiveOverflow, "result type too small to hold bitwise xor")
	}
	return Ok(R(patternOf(t) ^ patternOf(u)))
}

// And returns t & u in the result type R. The result occupies at most as
// many bits as the narrower operand.
func And[R, T, U intbits.Integer](t T, u U) Result[R] {
	width := min(intbits.SignificantBits(t), intbits.SignificantBits(u))
	if width > intbits.BitsOf[R]() {
		return Fail[R](KindPositiveOverflow, "result type too small to hold bitwise and")
	}
	return Ok(R(patternOf(t) & patternOf(u)))
}
