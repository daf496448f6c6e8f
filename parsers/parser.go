package parsers

import (
	"github.com/reusee/contra/exprs"
	"github.com/reusee/contra/scanners"
	"github.com/reusee/contra/tokens"
)

/*
Parser grammar, lowest precedence first:
	expression => equality
	equality   => comparison ( ( "!=" | "==" ) comparison )*
	comparison => term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term       => factor ( ( "-" | "+" ) factor )*
	factor     => unary ( ( "/" | "*" ) unary )*
	unary      => ( "!" | "-" ) unary | primary
	primary    => NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
*/

// MaxDepth bounds the nesting of groupings and unary operators.
const MaxDepth = 1000

type Parser struct {
	tokens  []tokens.Token
	current int
	depth   int
}

// NewParser reads toks without modifying them. toks must end with an EOF token.
func NewParser(toks []tokens.Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.EOF {
		line := 1
		if len(toks) > 0 {
			line = toks[len(toks)-1].Line
		}
		toks = append(toks[:len(toks):len(toks)], tokens.Token{
			Kind: tokens.EOF,
			Line: line,
		})
	}
	return &Parser{
		tokens: toks,
	}
}

// Parse parses toks as exactly one expression.
func Parse(toks []tokens.Token) (exprs.Expr, error) {
	p := NewParser(toks)
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.error("Expect end of expression.")
	}
	return expr, nil
}

// ParseString scans and parses source. Lexical errors take precedence over parse errors.
func ParseString(source string) (exprs.Expr, error) {
	toks, errs := scanners.Scan(source)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Expression parses one expression and leaves the parser after its last token.
func (p *Parser) Expression() (exprs.Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (exprs.Expr, error) {
	return p.binary(p.comparison, tokens.BangEqual, tokens.EqualEqual)
}

func (p *Parser) comparison() (exprs.Expr, error) {
	return p.binary(p.term, tokens.Greater, tokens.GreaterEqual, tokens.Less, tokens.LessEqual)
}

func (p *Parser) term() (exprs.Expr, error) {
	return p.binary(p.factor, tokens.Minus, tokens.Plus)
}

func (p *Parser) factor() (exprs.Expr, error) {
	return p.binary(p.unary, tokens.Slash, tokens.Star)
}

// binary folds operands of the next level into a left-leaning tree
func (p *Parser) binary(next func() (exprs.Expr, error), operators ...tokens.Kind) (exprs.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &exprs.Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (exprs.Expr, error) {
	if p.match(tokens.Bang, tokens.Minus) {
		operator := p.previous()
		if err := p.enter(); err != nil {
			return nil, err
		}
		right, err := p.unary()
		p.depth--
		if err != nil {
			return nil, err
		}
		return &exprs.Unary{
			Operator: operator,
			Right:    right,
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (exprs.Expr, error) {
	switch {
	case p.match(tokens.Number, tokens.String):
		return p.literal(p.previous().Lexeme), nil
	case p.match(tokens.True):
		return p.literal("true"), nil
	case p.match(tokens.False):
		return p.literal("false"), nil
	case p.match(tokens.Nil):
		return p.literal("nil"), nil
	case p.match(tokens.LeftParen):
		if err := p.enter(); err != nil {
			return nil, err
		}
		expr, err := p.Expression()
		p.depth--
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokens.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &exprs.Grouping{
			Expression: expr,
		}, nil
	}
	return nil, p.error("Expect expression.")
}

func (p *Parser) literal(value string) *exprs.Literal {
	tok := p.previous()
	return &exprs.Literal{
		Value: value,
		Kind:  tok.Kind,
		Line:  tok.Line,
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return p.error("Too much nesting.")
	}
	return nil
}

func (p *Parser) match(kinds ...tokens.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind tokens.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() tokens.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF
}

func (p *Parser) peek() tokens.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind tokens.Kind, message string) (tokens.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return tokens.Token{}, p.error(message)
}

func (p *Parser) error(message string) error {
	tok := p.peek()
	return &Error{
		Line:    tok.Line,
		Message: message,
		Token:   tok,
	}
}
