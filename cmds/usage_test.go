package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int) {}).Desc("QUX").Args("count"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()

	if !strings.Contains(out, "--help, -h, -help, help") {
		t.Fatalf("got %s", out)
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "    qux <count>") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "FOO") || !strings.Contains(out, "  bar") {
		t.Fatalf("got %s", out)
	}
}
