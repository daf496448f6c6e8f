package tokens

import "strconv"

type Kind uint8

const (
	EOF Kind = iota

	// single-character
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Star

	// one or two characters
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Slash

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Contract
	Else
	False
	Func
	For
	If
	Nil
	Or
	Print
	Return
	Super
	Self
	True
	Let
	Const
	While

	numKinds
)

var kindNames = [numKinds]string{
	EOF:          "EOF",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Minus:        "Minus",
	Plus:         "Plus",
	Semicolon:    "Semicolon",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Slash:        "Slash",
	Identifier:   "Identifier",
	String:       "String",
	Number:       "Number",
	And:          "And",
	Class:        "Class",
	Contract:     "Contract",
	Else:         "Else",
	False:        "False",
	Func:         "Func",
	For:          "For",
	If:           "If",
	Nil:          "Nil",
	Or:           "Or",
	Print:        "Print",
	Return:       "Return",
	Super:        "Super",
	Self:         "Self",
	True:         "True",
	Let:          "Let",
	Const:        "Const",
	While:        "While",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsKeyword() bool {
	return k >= And && k <= While
}
