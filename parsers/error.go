package parsers

import (
	"fmt"

	"github.com/reusee/contra/tokens"
)

type Error struct {
	Line    int
	Message string
	Token   tokens.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error at %d: %s", e.Line, e.Message)
}
