package scanners

import (
	"fmt"
	"strings"
)

type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// Errors accumulates lexical errors in source order. Scanning never stops on them.
type Errors []*Error

func (e Errors) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Err returns nil if there is no error, so that a nil Errors never becomes a non-nil error interface.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Unwrap() []error {
	ret := make([]error, 0, len(e))
	for _, err := range e {
		ret = append(ret, err)
	}
	return ret
}
