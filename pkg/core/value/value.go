package value

import (
	"math"
	"strconv"
)

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeNone Type = iota
	TypeInt
	TypeFloat
	TypeString
)

// Value is a tagged union over the four runtime types. Numeric payloads
// live in Data (float64 values as their IEEE-754 bits); string payloads
// live in Str. Values are copied freely, never shared.
type Value struct {
	Type Type
	Data uint64
	Str  string
}

// None returns the unit value.
func None() Value {
	return Value{Type: TypeNone}
}

// Int wraps an int64.
func Int(i int64) Value {
	return Value{Type: TypeInt, Data: uint64(i)}
}

// Float wraps a float64.
func Float(f float64) Value {
	return Value{Type: TypeFloat, Data: math.Float64bits(f)}
}

// Str wraps a string.
func Str(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// Int returns the payload as int64.
func (v Value) Int() int64 {
	return int64(v.Data)
}

// Float returns the payload as float64, widening an integer payload.
func (v Value) Float() float64 {
	if v.Type == TypeFloat {
		return math.Float64frombits(v.Data)
	}
	return float64(int64(v.Data))
}

// IsZero reports whether v is numerically zero. Non-numeric values are
// never zero; divisor checks rely on that.
func (v Value) IsZero() bool {
	switch v.Type {
	case TypeInt:
		return int64(v.Data) == 0
	case TypeFloat:
		return math.Float64frombits(v.Data) == 0
	}
	return false
}

// Format renders the value the way print does: decimal integers, shortest
// round-trip floats, raw string content, and a placeholder for none.
func (v Value) Format() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(int64(v.Data), 10)
	case TypeFloat:
		return strconv.FormatFloat(math.Float64frombits(v.Data), 'g', -1, 64)
	case TypeString:
		return v.Str
	default:
		return "<none>"
	}
}

// TypeName returns the human-readable type name used in diagnostics.
func (v Value) TypeName() string {
	switch v.Type {
	case TypeInt:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	default:
		return "None"
	}
}
