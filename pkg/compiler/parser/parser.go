// Package parser turns the token sequence into an ordered statement list
// by recursive descent. The grammar is backtrack-free: one token of
// lookahead decides every production.
package parser

import (
	"github.com/agenthands/mica/pkg/compiler/ast"
	"github.com/agenthands/mica/pkg/compiler/lexer"
	"github.com/agenthands/mica/pkg/core/diag"
)

type Parser struct {
	tokens []lexer.Token
	pos    int
	line   int // advances on every consumed Eol token
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, line: 1}
}

// Parse consumes the whole token stream and returns the program's
// statements in execution order.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for {
		tok, ok := p.current()
		if !ok {
			return stmts, nil
		}

		switch tok.Kind {
		case lexer.KindVar:
			stmt, err := p.parseLet()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		case lexer.KindPrint:
			stmt, err := p.parsePrint()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		case lexer.KindEol:
			p.advance()
		default:
			return nil, &diag.UnexpectedToken{
				Got:      tok.String(),
				Expected: "'var', 'print', or end of line",
				Line:     p.line,
			}
		}
	}
}

// parseLet handles: var IDENT = EXPR
func (p *Parser) parseLet() (ast.Stmt, error) {
	p.advance() // skip 'var'

	name, err := p.expect(lexer.KindIdent, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindAssign, "'='"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Name: name.Lit, Value: expr}, nil
}

// parsePrint handles: print ( EXPR , ... )
// The argument list may be empty and tolerates a trailing comma.
func (p *Parser) parsePrint() (ast.Stmt, error) {
	p.advance() // skip 'print'

	if _, err := p.expect(lexer.KindLParen, "'('"); err != nil {
		return nil, err
	}

	var args []ast.Expr
	for {
		if tok, ok := p.current(); ok && tok.Kind == lexer.KindRParen {
			p.advance()
			return &ast.ExprStmt{Expr: &ast.Call{Name: "print", Args: args}}, nil
		}

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, ok := p.current()
		if !ok {
			return nil, &diag.EndOfInput{Expected: "',' or ')'", Line: p.line}
		}
		switch tok.Kind {
		case lexer.KindComma:
			p.advance()
		case lexer.KindRParen:
			p.advance()
			return &ast.ExprStmt{Expr: &ast.Call{Name: "print", Args: args}}, nil
		default:
			return nil, &diag.UnexpectedToken{
				Got:      tok.String(),
				Expected: "',' or ')'",
				Line:     p.line,
			}
		}
	}
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.current()
		if !ok {
			return left, nil
		}

		var op ast.BinOp
		switch tok.Kind {
		case lexer.KindPlus:
			op = ast.OpAdd
		case lexer.KindMinus:
			op = ast.OpSub
		default:
			return left, nil
		}

		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.current()
		if !ok {
			return left, nil
		}

		var op ast.BinOp
		switch tok.Kind {
		case lexer.KindStar:
			op = ast.OpMul
		case lexer.KindSlash:
			op = ast.OpDiv
		case lexer.KindIntDiv:
			op = ast.OpIntDiv
		case lexer.KindPercent:
			op = ast.OpMod
		default:
			return left, nil
		}

		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
}

// parseUnary desugars a leading minus into 0 - operand.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if tok, ok := p.current(); ok && tok.Kind == lexer.KindMinus {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Left: &ast.IntLit{Value: 0}, Op: ast.OpSub, Right: operand}, nil
	}
	return p.parseAtom()
}

const atomExpectation = "integer, float, string, variable, or '('"

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok, ok := p.current()
	if !ok {
		return nil, &diag.EndOfInput{Expected: atomExpectation, Line: p.line}
	}

	switch tok.Kind {
	case lexer.KindInt:
		p.advance()
		return &ast.IntLit{Value: tok.Int}, nil
	case lexer.KindFloat:
		p.advance()
		return &ast.FloatLit{Value: tok.Float}, nil
	case lexer.KindString:
		p.advance()
		return &ast.StringLit{Value: tok.Lit}, nil
	case lexer.KindNone:
		p.advance()
		return &ast.NoneLit{}, nil
	case lexer.KindIdent:
		p.advance()
		return &ast.VarRef{Name: tok.Lit}, nil
	case lexer.KindLParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KindRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &diag.UnexpectedToken{
			Got:      tok.String(),
			Expected: atomExpectation,
			Line:     p.line,
		}
	}
}

func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, error) {
	tok, ok := p.current()
	if !ok {
		return lexer.Token{}, &diag.EndOfInput{Expected: what, Line: p.line}
	}
	if tok.Kind != kind {
		return lexer.Token{}, &diag.UnexpectedToken{Got: tok.String(), Expected: what, Line: p.line}
	}
	p.advance()
	return tok, nil
}

func (p *Parser) current() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() {
	if tok, ok := p.current(); ok && tok.Kind == lexer.KindEol {
		p.line++
	}
	p.pos++
}
