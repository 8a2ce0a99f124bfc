// Package ast holds the statement and expression tree produced by the
// parser. Nodes are pure data; evaluation lives in the emitter and VM.
package ast

// Expr represents an expression that yields a value.
type Expr interface {
	exprNode()
}

// Stmt represents a standalone unit of execution.
type Stmt interface {
	stmtNode()
}

// BinOp identifies one of the six binary arithmetic operators.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpIntDiv
	OpMod
)

// Name returns the operation name used in diagnostics.
func (op BinOp) Name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpIntDiv:
		return "integer-divide"
	default:
		return "mod"
	}
}

// NoneLit is the 'none' literal.
type NoneLit struct{}

func (*NoneLit) exprNode() {}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float64
}

func (*FloatLit) exprNode() {}

// StringLit is a string literal with escapes already decoded.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

// VarRef reads a variable by name.
type VarRef struct {
	Name string
}

func (*VarRef) exprNode() {}

// Binary applies Op to two owned operand trees.
type Binary struct {
	Left  Expr
	Op    BinOp
	Right Expr
}

func (*Binary) exprNode() {}

// Call invokes a builtin with an ordered argument list.
type Call struct {
	Name string
	Args []Expr
}

func (*Call) exprNode() {}

// Let evaluates Value and binds it to Name in the global table.
type Let struct {
	Name  string
	Value Expr
}

func (*Let) stmtNode() {}

// ExprStmt evaluates an expression for its side effect.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}
