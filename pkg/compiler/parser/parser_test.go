package parser_test

import (
	"testing"

	"github.com/agenthands/mica/pkg/compiler/ast"
	"github.com/agenthands/mica/pkg/compiler/lexer"
	"github.com/agenthands/mica/pkg/compiler/parser"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	stmts, err := parser.NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return stmts
}

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "\n\n", "# just a comment\n"} {
		if stmts := parse(t, src); len(stmts) != 0 {
			t.Errorf("%q: expected no statements, got %d", src, len(stmts))
		}
	}
}

func TestParseLet(t *testing.T) {
	stmts := parse(t, "var x = 42\n")
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	let, ok := stmts[0].(*ast.Let)
	if !ok {
		t.Fatalf("expected *ast.Let, got %T", stmts[0])
	}
	if let.Name != "x" {
		t.Errorf("expected name x, got %s", let.Name)
	}
	lit, ok := let.Value.(*ast.IntLit)
	if !ok || lit.Value != 42 {
		t.Errorf("expected IntLit 42, got %#v", let.Value)
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 groups as 1 + (2 * 3)
	stmts := parse(t, "var x = 1 + 2 * 3\n")
	let := stmts[0].(*ast.Let)

	add, ok := let.Value.(*ast.Binary)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("expected add at root, got %#v", let.Value)
	}
	if lit, ok := add.Left.(*ast.IntLit); !ok || lit.Value != 1 {
		t.Errorf("expected 1 on the left, got %#v", add.Left)
	}
	mul, ok := add.Right.(*ast.Binary)
	if !ok || mul.Op != ast.OpMul {
		t.Fatalf("expected multiply on the right, got %#v", add.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 10 - 2 - 3 groups as (10 - 2) - 3
	stmts := parse(t, "var x = 10 - 2 - 3\n")
	let := stmts[0].(*ast.Let)

	outer, ok := let.Value.(*ast.Binary)
	if !ok || outer.Op != ast.OpSub {
		t.Fatalf("expected subtract at root, got %#v", let.Value)
	}
	if lit, ok := outer.Right.(*ast.IntLit); !ok || lit.Value != 3 {
		t.Fatalf("expected 3 on the right, got %#v", outer.Right)
	}
	inner, ok := outer.Left.(*ast.Binary)
	if !ok || inner.Op != ast.OpSub {
		t.Fatalf("expected nested subtract on the left, got %#v", outer.Left)
	}
}

func TestParseParenthesized(t *testing.T) {
	// (1 + 2) * 3 keeps the add inside the multiply
	stmts := parse(t, "var x = (1 + 2) * 3\n")
	let := stmts[0].(*ast.Let)

	mul, ok := let.Value.(*ast.Binary)
	if !ok || mul.Op != ast.OpMul {
		t.Fatalf("expected multiply at root, got %#v", let.Value)
	}
	if add, ok := mul.Left.(*ast.Binary); !ok || add.Op != ast.OpAdd {
		t.Fatalf("expected add inside parens, got %#v", mul.Left)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	// -y desugars to 0 - y
	stmts := parse(t, "var x = -y\n")
	let := stmts[0].(*ast.Let)

	sub, ok := let.Value.(*ast.Binary)
	if !ok || sub.Op != ast.OpSub {
		t.Fatalf("expected subtract, got %#v", let.Value)
	}
	if lit, ok := sub.Left.(*ast.IntLit); !ok || lit.Value != 0 {
		t.Errorf("expected zero on the left, got %#v", sub.Left)
	}
	if ref, ok := sub.Right.(*ast.VarRef); !ok || ref.Name != "y" {
		t.Errorf("expected y on the right, got %#v", sub.Right)
	}
}

func TestParseNoneLiteral(t *testing.T) {
	stmts := parse(t, "var x = none\n")
	let := stmts[0].(*ast.Let)
	if _, ok := let.Value.(*ast.NoneLit); !ok {
		t.Errorf("expected NoneLit, got %#v", let.Value)
	}
}

func TestParsePrintCall(t *testing.T) {
	cases := []struct {
		src  string
		argc int
	}{
		{"print()\n", 0},
		{"print(1)\n", 1},
		{"print(1, 'two', 3.0)\n", 3},
		{"print(1, 2,)\n", 2}, // trailing comma tolerated
	}

	for _, tc := range cases {
		stmts := parse(t, tc.src)
		if len(stmts) != 1 {
			t.Fatalf("%q: expected 1 statement, got %d", tc.src, len(stmts))
		}
		es, ok := stmts[0].(*ast.ExprStmt)
		if !ok {
			t.Fatalf("%q: expected *ast.ExprStmt, got %T", tc.src, stmts[0])
		}
		call, ok := es.Expr.(*ast.Call)
		if !ok || call.Name != "print" {
			t.Fatalf("%q: expected print call, got %#v", tc.src, es.Expr)
		}
		if len(call.Args) != tc.argc {
			t.Errorf("%q: expected %d args, got %d", tc.src, tc.argc, len(call.Args))
		}
	}
}

func TestParseStatementOrder(t *testing.T) {
	stmts := parse(t, "var a = 1\nprint(a)\nvar b = 2\n")
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.Let); !ok {
		t.Errorf("statement 0: expected Let, got %T", stmts[0])
	}
	if _, ok := stmts[1].(*ast.ExprStmt); !ok {
		t.Errorf("statement 1: expected ExprStmt, got %T", stmts[1])
	}
	if _, ok := stmts[2].(*ast.Let); !ok {
		t.Errorf("statement 2: expected Let, got %T", stmts[2])
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"digit after var", "var 1 = 2\n", "Line 1: Expected identifier, got integer 1"},
		{"missing equals", "var x 2\n", "Line 1: Expected '=', got integer 2"},
		{"missing paren after print", "print 1\n", "Line 1: Expected '(', got integer 1"},
		{"bad statement start", "x = 1\n", "Line 1: Expected 'var', 'print', or end of line, got identifier 'x'"},
		{"unclosed paren", "var x = (1 + 2\n", "Line 1: Expected ')', got end of line"},
		{"missing expression", "var x = \n", "Line 1: Expected integer, float, string, variable, or '(', got end of line"},
		{"error on second line", "var a = 1\nvar = 2\n", "Line 2: Expected identifier, got '='"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tc.src)
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			_, err = parser.NewParser(tokens).Parse()
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if err.Error() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}

// The scanner terminates every non-empty line with Eol, so end-of-input
// failures only arise on token streams from other producers. The parser's
// contract covers those too.
func TestParseEndOfInput(t *testing.T) {
	cases := []struct {
		name   string
		tokens []lexer.Token
		want   string
	}{
		{
			"truncated var",
			[]lexer.Token{{Kind: lexer.KindVar, Line: 1}},
			"Line 1: Expected identifier, got end of input",
		},
		{
			"unclosed paren",
			[]lexer.Token{
				{Kind: lexer.KindVar, Line: 1},
				{Kind: lexer.KindIdent, Lit: "x", Line: 1},
				{Kind: lexer.KindAssign, Line: 1},
				{Kind: lexer.KindLParen, Line: 1},
				{Kind: lexer.KindInt, Int: 1, Line: 1},
			},
			"Line 1: Expected ')', got end of input",
		},
		{
			"dangling comma",
			[]lexer.Token{
				{Kind: lexer.KindPrint, Line: 1},
				{Kind: lexer.KindLParen, Line: 1},
				{Kind: lexer.KindInt, Int: 1, Line: 1},
				{Kind: lexer.KindComma, Line: 1},
			},
			"Line 1: Expected integer, float, string, variable, or '(', got end of input",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.NewParser(tc.tokens).Parse()
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if err.Error() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}
