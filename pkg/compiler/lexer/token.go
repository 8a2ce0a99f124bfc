package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindVar Kind = iota
	KindNone
	KindPrint
	KindIdent
	KindInt
	KindFloat
	KindString
	KindPlus    // +
	KindMinus   // -
	KindStar    // *
	KindSlash   // /
	KindIntDiv  // //
	KindPercent // %
	KindAssign  // =
	KindLParen  // (
	KindRParen  // )
	KindComma   // ,
	KindEol     // end of line
)

// Token is one lexical unit. Literal payloads are decoded by the scanner:
// Lit holds an identifier name or string content (escapes resolved),
// Int/Float hold parsed numeric values. Line is 1-based.
type Token struct {
	Kind  Kind
	Line  int
	Lit   string
	Int   int64
	Float float64
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case KindVar:
		return "'var'"
	case KindNone:
		return "'none'"
	case KindPrint:
		return "'print'"
	case KindIdent:
		return fmt.Sprintf("identifier '%s'", t.Lit)
	case KindInt:
		return fmt.Sprintf("integer %d", t.Int)
	case KindFloat:
		return fmt.Sprintf("float %g", t.Float)
	case KindString:
		return fmt.Sprintf("string %q", t.Lit)
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	case KindStar:
		return "'*'"
	case KindSlash:
		return "'/'"
	case KindIntDiv:
		return "'//'"
	case KindPercent:
		return "'%'"
	case KindAssign:
		return "'='"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	case KindComma:
		return "','"
	case KindEol:
		return "end of line"
	default:
		return "unknown token"
	}
}
