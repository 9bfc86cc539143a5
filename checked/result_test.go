package checked

import (
	"errors"
	"testing"
)

func TestResultAccessors(t *testing.T) {
	ok := Ok(int8(5))
	if !ok.IsOk() || ok.IsErr() || ok.Value() != 5 || ok.Kind() != KindNone || ok.Message() != "" {
		t.Fatalf("Ok result misbehaves: %+v", ok)
	}
	fail := Fail[int8](KindDomain, "divide by zero")
	if fail.IsOk() || !fail.IsErr() || fail.Kind() != KindDomain || fail.Message() != "divide by zero" {
		t.Fatalf("failed result misbehaves: %+v", fail)
	}
}

func TestValuePanicsOnFailure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Value on a failed result must panic")
		}
	}()
	Fail[int8](KindRange, "boom").Value()
}

func TestErrSentinels(t *testing.T) {
	if err := Ok(1).Err(); err != nil {
		t.Fatalf("Ok.Err() = %v, want nil", err)
	}
	cases := []struct {
		kind Kind
		want error
	}{
		{KindPositiveOverflow, ErrPositiveOverflow},
		{KindNegativeOverflow, ErrNegativeOverflow},
		{KindRange, ErrRange},
		{KindDomain, ErrDomain},
		{KindUndefinedBehavior, ErrUndefinedBehavior},
		{KindImplementationDefined, ErrImplementationDefined},
	}
	for _, tc := range cases {
		err := Fail[int](tc.kind, "msg").Err()
		if !errors.Is(err, tc.want) {
			t.Fatalf("kind %v: errors.Is failed for %v", tc.kind, err)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPositiveOverflow.String() != "positive_overflow" {
		t.Fatalf("unexpected string: %s", KindPositiveOverflow)
	}
	if KindNone.String() != "ok" {
		t.Fatalf("unexpected string: %s", KindNone)
	}
	if Kind(99).String() != "Kind(99)" {
		t.Fatalf("unexpected string for unknown kind")
	}
}
