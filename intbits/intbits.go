// Package intbits provides per-type facts about machine integers: bounds,
// bit width, signedness, and the significant-bit count of runtime values.
package intbits

import (
	"math/bits"
	"unsafe"
)

// Signed is the constraint of all signed machine integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint of all unsigned machine integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the constraint of all machine integer types.
type Integer interface {
	Signed | Unsigned
}

// IsSigned reports whether T is a signed type.
// All-ones is -1 for signed types and the maximum for unsigned ones.
func IsSigned[T Integer]() bool {
	return ^T(0) < T(0)
}

// BitsOf returns the width of T in bits.
func BitsOf[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// MinOf returns the smallest value representable in T.
func MinOf[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	return ^T(0) << (BitsOf[T]() - 1)
}

// MaxOf returns the largest value representable in T.
func MaxOf[T Integer]() T {
	if !IsSigned[T]() {
		return ^T(0)
	}
	return ^MinOf[T]()
}

// Magnitude returns |x| as a uint64. It is defined for the minimum value of
// signed types, whose magnitude does not fit the same-width signed type.
func Magnitude[T Integer](x T) uint64 {
	if IsSigned[T]() && x < 0 {
		v := int64(x)
		// -(v+1) is non-negative and fits, even for v == MinInt64.
		return uint64(-(v + 1)) + 1
	}
	return uint64(x)
}

// SignificantBits returns the position of the highest set bit in |x| plus
// one, i.e. floor(log2(|x|))+1 for x != 0, and 0 for x == 0.
func SignificantBits[T Integer](x T) int {
	return bits.Len64(Magnitude(x))
}
