package checked

import (
	"math"
	"testing"
)

func TestDivBoundaries(t *testing.T) {
	if r := Div[int32](int32(10), int32(0)); r.Kind() != KindDomain {
		t.Fatalf("Div[int32](10, 0) kind = %v, want domain", r.Kind())
	}
	if r := Div[int8](int8(-128), int8(-1)); r.Kind() != KindRange {
		t.Fatalf("Div[int8](-128, -1) kind = %v, want range", r.Kind())
	}
	if r := Div[int8](int8(-128), int8(1)); r.IsErr() || r.Value() != -128 {
		t.Fatalf("Div[int8](-128, 1) = %v", r.Kind())
	}
	if r := Div[int8](int8(7), int8(-2)); r.IsErr() || r.Value() != -3 {
		t.Fatalf("Div[int8](7, -2) = %d, want -3 (truncation toward zero)", r.Value())
	}
	if r := Div[uint8](uint8(255), uint8(2)); r.IsErr() || r.Value() != 127 {
		t.Fatalf("Div[uint8](255, 2) = %v", r.Kind())
	}
}

// Any conversion failure inside Div is reported as a domain failure, unlike
// the other operations which keep the cast's own kind.
func TestDivCastFailureIsDomain(t *testing.T) {
	if r := Div[uint8](int8(-8), int8(2)); r.Kind() != KindDomain {
		t.Fatalf("Div[uint8](-8, 2) kind = %v, want domain", r.Kind())
	}
	if r := Div[int8](int16(1000), int16(2)); r.Kind() != KindDomain {
		t.Fatalf("Div[int8](1000, 2) kind = %v, want domain", r.Kind())
	}
}

func TestModBoundaries(t *testing.T) {
	if r := Mod[int8](int8(10), int8(0)); r.Kind() != KindDomain {
		t.Fatalf("Mod[int8](10, 0) kind = %v, want domain", r.Kind())
	}
	// The min % -1 case must not trap and must yield zero.
	if r := Mod[int8](int8(-128), int8(-1)); r.IsErr() || r.Value() != 0 {
		t.Fatalf("Mod[int8](-128, -1) = %v, want Ok(0)", r.Kind())
	}
	if r := Mod[int64](int64(math.MinInt64), int64(-1)); r.IsErr() || r.Value() != 0 {
		t.Fatalf("Mod[int64](min, -1) = %v, want Ok(0)", r.Kind())
	}
	// The result keeps the sign of the dividend.
	if r := Mod[int8](int8(-7), int8(3)); r.IsErr() || r.Value() != -1 {
		t.Fatalf("Mod[int8](-7, 3) = %d, want -1", r.Value())
	}
	if r := Mod[int8](int8(7), int8(-3)); r.IsErr() || r.Value() != 1 {
		t.Fatalf("Mod[int8](7, -3) = %d, want 1", r.Value())
	}
}

func TestModMinDivisor(t *testing.T) {
	// |MinInt64| is not representable as an int64 but the remainder is
	// decidable: anything of smaller magnitude is its own remainder.
	if r := Mod[int64](int64(-5), int64(math.MinInt64)); r.IsErr() || r.Value() != -5 {
		t.Fatalf("Mod[int64](-5, min) = %v, want Ok(-5)", r.Kind())
	}
	if r := Mod[int64](int64(math.MinInt64), int64(math.MinInt64)); r.IsErr() || r.Value() != 0 {
		t.Fatalf("Mod[int64](min, min) = %v, want Ok(0)", r.Kind())
	}
}

func TestDivModIdentity(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			if b == 0 {
				continue
			}
			q := Div[int8](int8(a), int8(b))
			m := Mod[int8](int8(a), int8(b))
			if q.IsErr() || m.IsErr() {
				continue
			}
			if int(q.Value())*b+int(m.Value()) != a {
				t.Fatalf("identity broken for (%d, %d): q=%d m=%d", a, b, q.Value(), m.Value())
			}
		}
	}
}

func TestDivInt8Exhaustive(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			r := Div[int8](int8(a), int8(b))
			switch {
			case b == 0:
				if r.Kind() != KindDomain {
					t.Fatalf("Div[int8](%d, 0) kind = %v, want domain", a, r.Kind())
				}
			case a == -128 && b == -1:
				if r.Kind() != KindRange {
					t.Fatalf("Div[int8](-128, -1) kind = %v, want range", r.Kind())
				}
			default:
				if r.IsErr() || int(r.Value()) != a/b {
					t.Fatalf("Div[int8](%d, %d) = %v, want %d", a, b, r, a/b)
				}
			}
		}
	}
}
