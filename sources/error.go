package sources

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotText = errors.New("not a text file")

// LineError attaches a source location to a diagnostic.
type LineError struct {
	Err    error
	Source *Source
	Line   int
}

func (l LineError) Error() string {
	if l.Source == nil {
		return l.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(l.Err.Error())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  --> %s:%d\n", l.Source.Name, l.Line)

	if text, ok := l.Source.Line(l.Line); ok {
		prefix := fmt.Sprintf("%4d | ", l.Line)
		sb.WriteString(prefix)
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (l LineError) Unwrap() error {
	return l.Err
}

func WithLine(err error, source *Source, line int) error {
	if err == nil {
		return nil
	}
	var lineErr LineError
	if errors.As(err, &lineErr) {
		return err
	}
	return LineError{
		Err:    err,
		Source: source,
		Line:   line,
	}
}
