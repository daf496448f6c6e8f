package tokens

import "fmt"

type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Offset  int
	Literal Literal
}

func (t Token) String() string {
	if t.Literal.IsZero() {
		return fmt.Sprintf("%s %q %d", t.Kind, t.Lexeme, t.Line)
	}
	return fmt.Sprintf("%s %q %d %s", t.Kind, t.Lexeme, t.Line, t.Literal)
}
