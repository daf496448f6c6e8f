package tokens

// Keywords maps reserved words to their kinds. Lookup is exact and case-sensitive.
var Keywords = map[string]Kind{
	"and":      And,
	"class":    Class,
	"contract": Contract,
	"else":     Else,
	"false":    False,
	"func":     Func,
	"for":      For,
	"if":       If,
	"nil":      Nil,
	"or":       Or,
	"print":    Print,
	"return":   Return,
	"super":    Super,
	"self":     Self,
	"true":     True,
	"let":      Let,
	"const":    Const,
	"while":    While,
}

func LookupIdentifier(text string) Kind {
	if kind, ok := Keywords[text]; ok {
		return kind
	}
	return Identifier
}
