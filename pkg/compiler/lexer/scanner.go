package lexer

import (
	"strconv"
	"strings"

	"github.com/agenthands/mica/pkg/core/diag"
)

// Scanner performs lexical analysis one source line at a time. A `#`
// outside a string literal comments out the rest of the line; string
// literals must close on the line they open. Every line that produced at
// least one token is terminated with a single Eol token.
type Scanner struct {
	line   []rune
	pos    int
	lineNo int
	tokens []Token
}

// Tokenize converts source text into the flat token sequence consumed by
// the parser, or fails with the first lexical error.
func Tokenize(src string) ([]Token, error) {
	s := &Scanner{}
	for i, line := range strings.Split(src, "\n") {
		if err := s.scanLine(i+1, line); err != nil {
			return nil, err
		}
	}
	return s.tokens, nil
}

func (s *Scanner) scanLine(lineNo int, text string) error {
	s.line = []rune(text)
	s.pos = 0
	s.lineNo = lineNo
	mark := len(s.tokens)

	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			s.pos++
		case ch == '#':
			s.pos = len(s.line)
		case isDigit(ch):
			if err := s.scanNumber(); err != nil {
				return err
			}
		case isAlpha(ch):
			s.scanIdentifier()
		case ch == '"' || ch == '\'':
			if err := s.scanString(ch); err != nil {
				return err
			}
		case ch == '/':
			s.pos++
			if s.pos < len(s.line) && s.line[s.pos] == '/' {
				s.pos++
				s.emit(Token{Kind: KindIntDiv})
			} else {
				s.emit(Token{Kind: KindSlash})
			}
		default:
			kind, ok := punctuation(ch)
			if !ok {
				return &diag.UnknownCharacter{Char: ch, Line: lineNo}
			}
			s.pos++
			s.emit(Token{Kind: kind})
		}
	}

	// Lines holding only whitespace or a comment emit nothing, not even Eol.
	if len(s.tokens) > mark {
		s.emit(Token{Kind: KindEol})
	}
	return nil
}

func (s *Scanner) scanNumber() error {
	var b strings.Builder
	isFloat := false
	for s.pos < len(s.line) {
		c := s.line[s.pos]
		if isDigit(c) {
			b.WriteRune(c)
			s.pos++
		} else if c == '.' {
			if isFloat {
				return &diag.InvalidNumber{Text: b.String() + ".", Line: s.lineNo}
			}
			isFloat = true
			b.WriteRune(c)
			s.pos++
		} else {
			break
		}
	}

	text := b.String()
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &diag.InvalidNumber{Text: text, Line: s.lineNo}
		}
		s.emit(Token{Kind: KindFloat, Float: f})
	} else {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return &diag.InvalidNumber{Text: text, Line: s.lineNo}
		}
		s.emit(Token{Kind: KindInt, Int: n})
	}
	return nil
}

func (s *Scanner) scanIdentifier() {
	start := s.pos
	for s.pos < len(s.line) {
		c := s.line[s.pos]
		if isAlpha(c) || isDigit(c) || c == '_' {
			s.pos++
		} else {
			break
		}
	}

	switch name := string(s.line[start:s.pos]); name {
	case "var":
		s.emit(Token{Kind: KindVar})
	case "none":
		s.emit(Token{Kind: KindNone})
	case "print":
		s.emit(Token{Kind: KindPrint})
	default:
		s.emit(Token{Kind: KindIdent, Lit: name})
	}
}

func (s *Scanner) scanString(quote rune) error {
	s.pos++ // skip opening quote
	var b strings.Builder

	for s.pos < len(s.line) {
		c := s.line[s.pos]
		s.pos++
		switch {
		case c == quote:
			s.emit(Token{Kind: KindString, Lit: b.String()})
			return nil
		case c == '\\':
			if s.pos >= len(s.line) {
				return &diag.UnterminatedString{Line: s.lineNo}
			}
			esc := s.line[s.pos]
			s.pos++
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			case '\\':
				b.WriteRune('\\')
			case quote:
				b.WriteRune(quote)
			default:
				return &diag.InvalidEscape{Char: esc, Line: s.lineNo}
			}
		default:
			b.WriteRune(c)
		}
	}

	return &diag.UnterminatedString{Line: s.lineNo}
}

func (s *Scanner) emit(tok Token) {
	tok.Line = s.lineNo
	s.tokens = append(s.tokens, tok)
}

func punctuation(ch rune) (Kind, bool) {
	switch ch {
	case '+':
		return KindPlus, true
	case '-':
		return KindMinus, true
	case '*':
		return KindStar, true
	case '%':
		return KindPercent, true
	case '=':
		return KindAssign, true
	case '(':
		return KindLParen, true
	case ')':
		return KindRParen, true
	case ',':
		return KindComma, true
	}
	return 0, false
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
