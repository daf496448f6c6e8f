package logs

import (
	"io"
	"os"
)

// Writer receives terminal logs. Stdout is left for compiler output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
