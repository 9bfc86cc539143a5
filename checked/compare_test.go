package checked

import (
	"math"
	"testing"
)

func TestLessInResultType(t *testing.T) {
	if r := Less[int32](int8(-5), uint8(5)); r.IsErr() || r.Value() != true {
		t.Fatalf("Less[int32](-5, 5) = %v", r)
	}
	if r := Less[int32](uint8(5), int8(-5)); r.IsErr() || r.Value() != false {
		t.Fatalf("Less[int32](5, -5) = %v", r)
	}
	// The nominated result type bounds both operands.
	if r := Less[int8](int16(200), int16(1)); r.Kind() != KindPositiveOverflow {
		t.Fatalf("Less[int8](200, 1) kind = %v, want positive overflow", r.Kind())
	}
	if r := Less[uint8](int8(-1), uint8(1)); r.Kind() != KindDomain {
		t.Fatalf("Less[uint8](-1, 1) kind = %v, want domain", r.Kind())
	}
}

func TestGreaterInResultType(t *testing.T) {
	if r := Greater[int64](int64(math.MaxInt64), int64(math.MinInt64)); r.IsErr() || !r.Value() {
		t.Fatalf("Greater[int64](max, min) = %v", r)
	}
	if r := Greater[uint8](uint8(1), uint8(1)); r.IsErr() || r.Value() {
		t.Fatalf("Greater[uint8](1, 1) = %v", r)
	}
}

func TestEqualInResultType(t *testing.T) {
	if r := Equal[int32](int8(7), uint8(7)); r.IsErr() || !r.Value() {
		t.Fatalf("Equal[int32](7, 7) = %v", r)
	}
	if r := Equal[int32](int8(-7), uint8(7)); r.IsErr() || r.Value() {
		t.Fatalf("Equal[int32](-7, 7) = %v", r)
	}
	if r := Equal[uint8](int16(-1), int16(255)); r.Kind() != KindDomain {
		t.Fatalf("Equal[uint8](-1, 255) kind = %v, want domain from first cast", r.Kind())
	}
}
