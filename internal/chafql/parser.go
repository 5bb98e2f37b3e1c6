package chafql

import (
	"strings"

	"github.com/go-faster/chaf/internal/lexerql"
)

// Parse parses given chaf query.
//
// Grammar, from the lowest precedence:
//
//	Expr    = And { "|" And }
//	And     = Not { "&" Not }
//	Not     = "!" Not | Primary
//	Primary = "(" Expr ")" | Term
//	Term    = any characters except "&", "|", ")"
//
// White space inside of a term is dropped, so "er ror" is the literal "error".
func Parse(s string) (Expr, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &ParseError{Err: ErrEmptyQuery}
	}

	p := parser{input: s}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf(ErrTrailingTokens)
	}
	return expr, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		if !p.consume('|') {
			return left, nil
		}

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &OrExpr{Left: left, Right: right}
	}
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		if !p.consume('&') {
			return left, nil
		}

		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &AndExpr{Left: left, Right: right}
	}
}

func (p *parser) parseNot() (Expr, error) {
	p.skipSpace()
	if !p.consume('!') {
		return p.parsePrimary()
	}

	// NOT is right-associative.
	x, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &NotExpr{X: x}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	p.skipSpace()
	if !p.consume('(') {
		return p.parseTerm()
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.consume(')') {
		return nil, p.errorf(ErrUnmatchedParen)
	}
	return expr, nil
}

func (p *parser) parseTerm() (Expr, error) {
	p.skipSpace()

	var sb strings.Builder
	for {
		r, size := lexerql.DecodeRune(p.input, p.pos)
		if size == 0 || lexerql.IsTermStopRune(r) {
			break
		}
		if !lexerql.IsSpace(r) {
			// Copy raw bytes to keep invalid UTF-8 as is.
			sb.WriteString(p.input[p.pos : p.pos+size])
		}
		p.pos += size
	}

	if sb.Len() == 0 {
		return nil, p.errorf(ErrEmptyPattern)
	}
	return &LiteralExpr{Value: sb.String()}, nil
}

func (p *parser) consume(ch byte) bool {
	if p.eof() || p.input[p.pos] != ch {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipSpace() {
	p.pos = lexerql.SkipSpace(p.input, p.pos)
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}
