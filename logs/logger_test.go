package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func withLevel(t *testing.T, l slog.Level) {
	old := level.Level()
	level.Set(l)
	t.Cleanup(func() {
		level.Set(old)
	})
}

func TestHandler(t *testing.T) {
	withLevel(t, slog.LevelInfo)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithSource(context.Background(), "foo.contra")
		ctx = context.WithValue(ctx, SpanKey, Span("abc"))
		logger.InfoContext(ctx, "scanned", "tokens", 3)
		line := buf.String()
		if !strings.Contains(line, "source=foo.contra") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "logs.span=abc") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "tokens=3") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestLevel(t *testing.T) {
	withLevel(t, slog.LevelWarn)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		if buf.Len() > 0 {
			t.Fatalf("got %v", buf.String())
		}
		logger.With("a", 1).Warn("shown")
		if !strings.Contains(buf.String(), "shown") {
			t.Fatalf("got %v", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("foo")
	if WrapSpan(context.Background(), err) != err {
		t.Fatal()
	}
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("s1"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatal()
	}
	if !strings.Contains(wrapped.Error(), "span: s1") {
		t.Fatalf("got %v", wrapped)
	}
}

func TestToJournalKey(t *testing.T) {
	if k := toJournalKey("logs.span"); k != "LOGS_SPAN" {
		t.Fatalf("got %v", k)
	}
}
