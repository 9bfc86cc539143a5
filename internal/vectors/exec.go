package vectors

import (
	"fmt"
	"strconv"

	"intguard/checked"
	"intguard/intbits"
)

// operand is a parsed case input. Signed literals canonicalize through
// int64, anything above MaxInt64 through uint64, so no input loses
// precision before it reaches the checked operation.
type operand struct {
	unsigned bool
	i        int64
	u        uint64
}

func parseOperand(s string) (operand, error) {
	if s == "" {
		return operand{}, nil
	}
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return operand{i: v}, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return operand{}, fmt.Errorf("bad integer literal %q", s)
	}
	return operand{unsigned: true, u: v}, nil
}

// Outcome is an executed checked operation in comparable form.
type Outcome struct {
	OK    bool
	Value string // decimal result when OK
	Kind  string // failure category when not OK
	Msg   string // failure diagnostic when not OK
}

func (o Outcome) String() string {
	if o.OK {
		return "ok(" + o.Value + ")"
	}
	return o.Kind
}

// Exec runs one checked operation described by op, the nominated result
// type, and up to two operand literals.
func Exec(op, result, t, u string) (Outcome, error) {
	to, err := parseOperand(t)
	if err != nil {
		return Outcome{}, err
	}
	uo, err := parseOperand(u)
	if err != nil {
		return Outcome{}, err
	}
	switch result {
	case "i8":
		return execR[int8](op, to, uo)
	case "i16":
		return execR[int16](op, to, uo)
	case "i32":
		return execR[int32](op, to, uo)
	case "i64":
		return execR[int64](op, to, uo)
	case "u8":
		return execR[uint8](op, to, uo)
	case "u16":
		return execR[uint16](op, to, uo)
	case "u32":
		return execR[uint32](op, to, uo)
	case "u64":
		return execR[uint64](op, to, uo)
	default:
		return Outcome{}, fmt.Errorf("unknown result type %q", result)
	}
}

func execR[R intbits.Integer](op string, t, u operand) (Outcome, error) {
	switch {
	case t.unsigned && u.unsigned:
		return execOp[R](op, t.u, u.u)
	case t.unsigned:
		return execOp[R](op, t.u, u.i)
	case u.unsigned:
		return execOp[R](op, t.i, u.u)
	default:
		return execOp[R](op, t.i, u.i)
	}
}

func execOp[R, T, U intbits.Integer](op string, t T, u U) (Outcome, error) {
	switch op {
	case "cast":
		return outcomeOf(checked.Cast[R](t)), nil
	case "add":
		return outcomeOf(checked.Add[R](t, u)), nil
	case "sub":
		return outcomeOf(checked.Sub[R](t, u)), nil
	case "mul":
		return outcomeOf(checked.Mul[R](t, u)), nil
	case "div":
		return outcomeOf(checked.Div[R](t, u)), nil
	case "mod":
		return outcomeOf(checked.Mod[R](t, u)), nil
	case "lsh":
		return outcomeOf(checked.Lsh[R](t, u)), nil
	case "rsh":
		return outcomeOf(checked.Rsh[R](t, u)), nil
	case "or":
		return outcomeOf(checked.Or[R](t, u)), nil
	case "xor":
		return outcomeOf(checked.Xor[R](t, u)), nil
	case "and":
		return outcomeOf(checked.And[R](t, u)), nil
	case "lt":
		return boolOutcomeOf(checked.Less[R](t, u)), nil
	case "gt":
		return boolOutcomeOf(checked.Greater[R](t, u)), nil
	case "eq":
		return boolOutcomeOf(checked.Equal[R](t, u)), nil
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", op)
	}
}

func outcomeOf[R intbits.Integer](r checked.Result[R]) Outcome {
	if r.IsOk() {
		return Outcome{OK: true, Value: fmt.Sprintf("%d", r.Value())}
	}
	return Outcome{Kind: r.Kind().String(), Msg: r.Message()}
}

func boolOutcomeOf(r checked.Result[bool]) Outcome {
	if r.IsOk() {
		return Outcome{OK: true, Value: strconv.FormatBool(r.Value())}
	}
	return Outcome{Kind: r.Kind().String(), Msg: r.Message()}
}
