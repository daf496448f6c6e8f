package tokens

import (
	"fmt"
	"strconv"
)

type LiteralKind uint8

const (
	LiteralNone LiteralKind = iota
	LiteralNumber
	LiteralString
)

// Literal is the decoded payload of number and string tokens.
// Text holds the number text or the string contents without quotes.
type Literal struct {
	Kind LiteralKind
	Text string
}

func NumberLiteral(text string) Literal {
	return Literal{
		Kind: LiteralNumber,
		Text: text,
	}
}

func StringLiteral(text string) Literal {
	return Literal{
		Kind: LiteralString,
		Text: text,
	}
}

func (l Literal) IsZero() bool {
	return l.Kind == LiteralNone
}

func (l Literal) Number() (float64, error) {
	if l.Kind != LiteralNumber {
		return 0, fmt.Errorf("not a number literal: %s", l)
	}
	v, err := strconv.ParseFloat(l.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("decode number %q: %w", l.Text, err)
	}
	return v, nil
}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralNumber:
		return l.Text
	case LiteralString:
		return strconv.Quote(l.Text)
	}
	return "none"
}
