package frontends

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/contra/configs"
	"github.com/reusee/contra/contraconfigs"
	"github.com/reusee/contra/exprs"
	"github.com/reusee/contra/modes"
	"github.com/reusee/contra/parsers"
	"github.com/reusee/contra/sources"
	"github.com/reusee/contra/tokens"
	"github.com/reusee/dscope"
)

func newScope(t *testing.T, config string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewDocumentLoader([]configs.Document{
				{Path: "contra.cue", Content: []byte(config)},
			}, contraconfigs.Schema())
		},
	)
}

func TestCompile(t *testing.T) {
	newScope(t, "").Call(func(
		compile Compile,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "1 + 2 * 3"))
		if err != nil {
			t.Fatal(err)
		}
		if !unit.OK() {
			t.Fatalf("got %v", unit.Diagnostics())
		}
		if str := exprs.Print(unit.Expr); str != "(+ 1 (* 2 3))" {
			t.Fatalf("got %s", str)
		}
		if len(unit.Tokens) != 6 {
			t.Fatalf("got %v", unit.Tokens)
		}
		if unit.Tokens[len(unit.Tokens)-1].Kind != tokens.EOF {
			t.Fatal()
		}
	})
}

func TestCompileParseError(t *testing.T) {
	newScope(t, "").Call(func(
		compile Compile,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "1 +\n(2"))
		if err != nil {
			t.Fatal(err)
		}
		if unit.OK() || unit.Expr != nil {
			t.Fatal()
		}
		var parseErr *parsers.Error
		if !errors.As(unit.Err, &parseErr) {
			t.Fatalf("got %v", unit.Err)
		}
		if parseErr.Error() != "Error at 2: Expect ')' after expression." {
			t.Fatalf("got %v", parseErr)
		}
		var lineErr sources.LineError
		if !errors.As(unit.Err, &lineErr) {
			t.Fatalf("got %v", unit.Err)
		}
		if lineErr.Line != 2 {
			t.Fatalf("got %v", lineErr.Line)
		}
		if !strings.Contains(unit.Err.Error(), "   2 | (2") {
			t.Fatalf("got %q", unit.Err.Error())
		}
	})
}

func TestNonStrictLexing(t *testing.T) {
	newScope(t, "").Call(func(
		compile Compile,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "1 @ + 2"))
		if err != nil {
			t.Fatal(err)
		}
		if len(unit.LexErrors) != 1 {
			t.Fatalf("got %v", unit.LexErrors)
		}
		if unit.LexErrors[0].Error() != "Line 1: Unexpected character: @" {
			t.Fatalf("got %v", unit.LexErrors[0])
		}
		if unit.Skipped {
			t.Fatal()
		}
		// the bad character is dropped, parsing continues
		if unit.Expr == nil || exprs.Print(unit.Expr) != "(+ 1 2)" {
			t.Fatalf("got %v", unit.Expr)
		}
		if unit.OK() {
			t.Fatal()
		}
		if len(unit.Diagnostics()) != 1 {
			t.Fatalf("got %v", unit.Diagnostics())
		}
	})
}

func TestStrictLexing(t *testing.T) {
	newScope(t, "strict_lexing: true").Call(func(
		compile Compile,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "1 @ + 2"))
		if err != nil {
			t.Fatal(err)
		}
		if !unit.Skipped {
			t.Fatal()
		}
		if unit.Expr != nil || unit.Err != nil {
			t.Fatal()
		}

		unit, err = compile(t.Context(), sources.NewSource("foo", "1 + 2"))
		if err != nil {
			t.Fatal(err)
		}
		if !unit.OK() {
			t.Fatalf("got %v", unit.Diagnostics())
		}
	})
}

func TestCompileCanceled(t *testing.T) {
	newScope(t, "").Call(func(
		compile Compile,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := compile(ctx, sources.NewSource("foo", "1"))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestCompileAll(t *testing.T) {
	newScope(t, "jobs: 2").Call(func(
		compileAll CompileAll,
		jobs contraconfigs.Jobs,
	) {
		if jobs != 2 {
			t.Fatalf("got %v", jobs)
		}
		var srcs []*sources.Source
		for i := range 20 {
			srcs = append(srcs, sources.NewSource(
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%d + %d", i, i),
			))
		}
		srcs = append(srcs, sources.NewSource("bad", "(1"))

		units, err := compileAll(t.Context(), srcs)
		if err != nil {
			t.Fatal(err)
		}
		if len(units) != len(srcs) {
			t.Fatalf("got %v", len(units))
		}
		for i, unit := range units[:20] {
			if unit.Source != srcs[i] {
				t.Fatalf("unit %d out of order", i)
			}
			expected := fmt.Sprintf("(+ %d %d)", i, i)
			if str := exprs.Print(unit.Expr); str != expected {
				t.Fatalf("got %s, expected %s", str, expected)
			}
		}
		if units[20].OK() {
			t.Fatal()
		}
	})
}

func TestCompileAllCanceled(t *testing.T) {
	newScope(t, "").Call(func(
		compileAll CompileAll,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := compileAll(ctx, []*sources.Source{
			sources.NewSource("foo", "1"),
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestCheck(t *testing.T) {
	source := sources.NewSource("foo", "1")
	unit := &Unit{
		Source: source,
		Tokens: []tokens.Token{
			{Kind: tokens.EOF, Offset: 1},
			{Kind: tokens.Number, Lexeme: "1", Line: 1, Offset: 0},
		},
	}
	if err := check(unit); !errors.Is(err, ErrInvariant) {
		t.Fatalf("got %v", err)
	}

	unit.Tokens = []tokens.Token{
		{Kind: tokens.Number, Lexeme: "2", Line: 1, Offset: 0},
		{Kind: tokens.EOF, Offset: 1},
	}
	if err := check(unit); !errors.Is(err, ErrInvariant) {
		t.Fatalf("got %v", err)
	}

	unit.Tokens = []tokens.Token{
		{Kind: tokens.Number, Lexeme: "1", Line: 1, Offset: 0},
		{Kind: tokens.EOF, Offset: 1},
	}
	if err := check(unit); err != nil {
		t.Fatal(err)
	}

	unit.Expr = &exprs.Unary{
		Operator: tokens.Token{Kind: tokens.Plus, Lexeme: "+"},
		Right:    &exprs.Literal{Value: "1", Kind: tokens.Number, Line: 1},
	}
	if err := check(unit); !errors.Is(err, ErrInvariant) {
		t.Fatalf("got %v", err)
	}

	if err := check(&Unit{Source: source}); !errors.Is(err, ErrInvariant) {
		t.Fatalf("got %v", err)
	}
}

func TestRender(t *testing.T) {
	newScope(t, "").Call(func(
		compile Compile,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "-(1)"))
		if err != nil {
			t.Fatal(err)
		}

		buf := new(bytes.Buffer)
		if err := WriteUnit(buf, unit, contraconfigs.FormatSExpr); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "(- (group 1))\n" {
			t.Fatalf("got %q", buf.String())
		}

		buf.Reset()
		if err := WriteUnit(buf, unit, contraconfigs.FormatTokens); err != nil {
			t.Fatal(err)
		}
		if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 5 {
			t.Fatalf("got %q", buf.String())
		}

		buf.Reset()
		if err := WriteUnit(buf, unit, contraconfigs.FormatJSON); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"type": "unary"`) {
			t.Fatalf("got %s", buf.String())
		}

		if err := WriteUnit(buf, unit, "xml"); err == nil {
			t.Fatal("should error")
		}
	})
}

func TestRenderProvider(t *testing.T) {
	newScope(t, `format: "json"`).Call(func(
		compile Compile,
		render Render,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "(1"))
		if err != nil {
			t.Fatal(err)
		}
		buf := new(bytes.Buffer)
		if err := render(buf, unit); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Fatalf("got %q", buf.String())
		}

		buf.Reset()
		if err := WriteDiagnostics(buf, unit); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), "Error at 1: Expect ')' after expression.\n") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestTapGlobals(t *testing.T) {
	newScope(t, "").Call(func(
		compile Compile,
		tapUnit TapUnit,
	) {
		unit, err := compile(t.Context(), sources.NewSource("foo", "1 < 2"))
		if err != nil {
			t.Fatal(err)
		}
		// no-op without -tap
		tapUnit(t.Context(), unit)

		globals := TapGlobals(unit)
		if globals["ast"] != unit.Expr {
			t.Fatal()
		}
		parse := globals["parse"].(func(string) string)
		if str := parse("!!true"); str != "(! (! true))" {
			t.Fatalf("got %s", str)
		}
		if str := parse("(1"); str != "Error at 1: Expect ')' after expression." {
			t.Fatalf("got %s", str)
		}
		sexpr := globals["sexpr"].(func() string)
		if str := sexpr(); str != "(< 1 2)" {
			t.Fatalf("got %s", str)
		}
		scan := globals["scan"].(func(string) []string)
		if toks := scan("x"); len(toks) != 2 {
			t.Fatalf("got %v", toks)
		}
	})
}
