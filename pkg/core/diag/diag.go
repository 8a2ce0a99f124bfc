// Package diag defines the closed set of error kinds shared by every
// pipeline stage. Each kind carries the fields needed to render a precise
// message; stages return these unchanged and never recover internally.
package diag

import "fmt"

// UnknownCharacter reports a character the scanner cannot classify.
type UnknownCharacter struct {
	Char rune
	Line int
}

func (e *UnknownCharacter) Error() string {
	return fmt.Sprintf("Line %d: Unknown character: %c", e.Line, e.Char)
}

// InvalidNumber reports a malformed numeric literal.
type InvalidNumber struct {
	Text string
	Line int
}

func (e *InvalidNumber) Error() string {
	return fmt.Sprintf("Line %d: Invalid number: %s", e.Line, e.Text)
}

// InvalidEscape reports an unsupported escape sequence in a string literal.
type InvalidEscape struct {
	Char rune
	Line int
}

func (e *InvalidEscape) Error() string {
	return fmt.Sprintf("Line %d: Invalid escape sequence: \\%c", e.Line, e.Char)
}

// UnterminatedString reports a string literal with no closing quote on its
// opening line.
type UnterminatedString struct {
	Line int
}

func (e *UnterminatedString) Error() string {
	return fmt.Sprintf("Line %d: Unterminated string literal", e.Line)
}

// UnexpectedToken reports a token that does not fit the grammar at the
// parser's current position.
type UnexpectedToken struct {
	Got      string
	Expected string
	Line     int
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("Line %d: Expected %s, got %s", e.Line, e.Expected, e.Got)
}

// EndOfInput reports that the token stream ended where more was required.
type EndOfInput struct {
	Expected string
	Line     int
}

func (e *EndOfInput) Error() string {
	return fmt.Sprintf("Line %d: Expected %s, got end of input", e.Line, e.Expected)
}

// UndefinedVariable reports a load of a name with no prior store.
type UndefinedVariable struct {
	Name string
}

func (e *UndefinedVariable) Error() string {
	return fmt.Sprintf("Undefined variable: %s", e.Name)
}

// StackUnderflow reports an operand-stack pop with nothing to pop. This is
// a lowering-bug signal, not a language feature.
type StackUnderflow struct {
	Operation string
}

func (e *StackUnderflow) Error() string {
	return fmt.Sprintf("Stack underflow: %s", e.Operation)
}

// UnknownBuiltin reports a call instruction naming no known builtin.
type UnknownBuiltin struct {
	Name string
}

func (e *UnknownBuiltin) Error() string {
	return fmt.Sprintf("Unknown builtin: %s", e.Name)
}

// TypeMismatch reports an operand pairing outside the coercion matrix.
// Left and Right are type names, not rendered values.
type TypeMismatch struct {
	Left      string
	Right     string
	Operation string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("Type mismatch: cannot %s %s and %s", e.Operation, e.Left, e.Right)
}

// DivisionByZero reports a div, integer-divide, or mod with a zero divisor.
type DivisionByZero struct {
	Operation string
}

func (e *DivisionByZero) Error() string {
	return fmt.Sprintf("Division by zero at %s operation is not valid", e.Operation)
}

// IntDivOverflow reports an integer-divide result outside the int64 range:
// MinInt64 // -1, or a float-involved quotient whose floor is not
// representable.
type IntDivOverflow struct{}

func (e *IntDivOverflow) Error() string {
	return "Integer division result out of range"
}

// NegativeRepeat reports a string repeated by a negative count.
type NegativeRepeat struct{}

func (e *NegativeRepeat) Error() string {
	return "Cannot repeat string a negative number of times"
}

// RepeatOverflow reports a string repetition whose byte length overflows.
type RepeatOverflow struct{}

func (e *RepeatOverflow) Error() string {
	return "String repetition is too large"
}
