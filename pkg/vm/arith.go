package vm

import (
	"math"
	"strings"

	"github.com/agenthands/mica/pkg/core/diag"
	"github.com/agenthands/mica/pkg/core/value"
)

// int64 range as exact float64 bounds: -2^63 inclusive, 2^63 exclusive.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// apply evaluates one binary operation per the coercion matrix:
//
//	        Int              Float            Str
//	Int     native (Div→Float, IntDiv floored) | promote to Float | Add→concat
//	Float   promote to Float | Float (IntDiv narrows) | Add→concat
//	Str     Add→concat, Mul→repeat | Add→concat | Add→concat
//
// Anything else, including every pairing with none, is a type mismatch.
// Divisors are already known to be non-zero.
func apply(a, b value.Value, op uint8) (value.Value, error) {
	switch op {
	case OP_ADD:
		if a.Type == value.TypeString || b.Type == value.TypeString {
			if a.Type == value.TypeNone || b.Type == value.TypeNone {
				break
			}
			return value.Str(a.Format() + b.Format()), nil
		}
		if bothNumeric(a, b) {
			if a.Type == value.TypeInt && b.Type == value.TypeInt {
				return value.Int(a.Int() + b.Int()), nil
			}
			return value.Float(a.Float() + b.Float()), nil
		}

	case OP_SUB:
		if bothNumeric(a, b) {
			if a.Type == value.TypeInt && b.Type == value.TypeInt {
				return value.Int(a.Int() - b.Int()), nil
			}
			return value.Float(a.Float() - b.Float()), nil
		}

	case OP_MUL:
		if a.Type == value.TypeString && b.Type == value.TypeInt {
			return repeatString(a.Str, b.Int())
		}
		if bothNumeric(a, b) {
			if a.Type == value.TypeInt && b.Type == value.TypeInt {
				return value.Int(a.Int() * b.Int()), nil
			}
			return value.Float(a.Float() * b.Float()), nil
		}

	case OP_DIV:
		// Division always yields a float, even for two integers.
		if bothNumeric(a, b) {
			return value.Float(a.Float() / b.Float()), nil
		}

	case OP_INTDIV:
		if a.Type == value.TypeInt && b.Type == value.TypeInt {
			return floorDivInt(a.Int(), b.Int())
		}
		if bothNumeric(a, b) {
			return narrowFloorQuotient(a.Float() / b.Float())
		}

	case OP_MOD:
		if bothNumeric(a, b) {
			if a.Type == value.TypeInt && b.Type == value.TypeInt {
				return value.Int(a.Int() % b.Int()), nil
			}
			return value.Float(math.Mod(a.Float(), b.Float())), nil
		}
	}

	return value.Value{}, &diag.TypeMismatch{
		Left:      a.TypeName(),
		Right:     b.TypeName(),
		Operation: opName(op),
	}
}

func bothNumeric(a, b value.Value) bool {
	return (a.Type == value.TypeInt || a.Type == value.TypeFloat) &&
		(b.Type == value.TypeInt || b.Type == value.TypeFloat)
}

// floorDivInt rounds toward negative infinity, unlike Go's native
// truncating division: -7 // 2 is -4. The single unrepresentable quotient,
// MinInt64 // -1, fails instead of wrapping.
func floorDivInt(a, b int64) (value.Value, error) {
	if a == math.MinInt64 && b == -1 {
		return value.Value{}, &diag.IntDivOverflow{}
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return value.Int(q), nil
}

// narrowFloorQuotient floors a float quotient and casts it back to an
// integer when representable.
func narrowFloorQuotient(q float64) (value.Value, error) {
	f := math.Floor(q)
	if math.IsNaN(f) || f < minInt64Float || f >= maxInt64Float {
		return value.Value{}, &diag.IntDivOverflow{}
	}
	return value.Int(int64(f)), nil
}

func repeatString(s string, count int64) (value.Value, error) {
	if count < 0 {
		return value.Value{}, &diag.NegativeRepeat{}
	}
	if l := int64(len(s)); l > 0 && count > math.MaxInt64/l {
		return value.Value{}, &diag.RepeatOverflow{}
	}
	return value.Str(strings.Repeat(s, int(count))), nil
}
