package safecmp

import (
	"math"
	"testing"
)

func TestLessMixedSigns(t *testing.T) {
	if !Less(int8(-1), uint64(0)) {
		t.Fatalf("-1 < 0 should hold across signs")
	}
	if !Less(int64(-1), uint64(math.MaxUint64)) {
		t.Fatalf("-1 < MaxUint64 should hold")
	}
	if Less(uint8(0), int32(-5)) {
		t.Fatalf("0 < -5 should not hold")
	}
	if !Less(int64(math.MinInt64), int8(-1)) {
		t.Fatalf("MinInt64 < -1 should hold")
	}
}

func TestLessSameSign(t *testing.T) {
	if !Less(uint8(3), uint64(5)) {
		t.Fatalf("3 < 5 should hold")
	}
	if Less(uint64(math.MaxUint64), int64(math.MaxInt64)) {
		t.Fatalf("MaxUint64 < MaxInt64 should not hold")
	}
	if !Less(int64(math.MaxInt64), uint64(math.MaxUint64)) {
		t.Fatalf("MaxInt64 < MaxUint64 should hold")
	}
	if Less(int16(7), int16(7)) {
		t.Fatalf("7 < 7 should not hold")
	}
}

func TestGreater(t *testing.T) {
	if !Greater(uint64(math.MaxUint64), int64(-1)) {
		t.Fatalf("MaxUint64 > -1 should hold")
	}
	if Greater(int8(-1), uint8(0)) {
		t.Fatalf("-1 > 0 should not hold")
	}
	if !Greater(int32(1), int8(0)) {
		t.Fatalf("1 > 0 should hold")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(int8(5), uint64(5)) {
		t.Fatalf("5 == 5 should hold across types")
	}
	if Equal(int8(-1), uint64(math.MaxUint64)) {
		t.Fatalf("-1 must not equal MaxUint64 despite identical bit pattern")
	}
	if !Equal(int64(-3), int8(-3)) {
		t.Fatalf("-3 == -3 should hold across widths")
	}
	if Equal(uint8(0), int8(-128)) {
		t.Fatalf("0 must not equal -128")
	}
}
