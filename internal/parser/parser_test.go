package parser

import (
	"testing"

	"github.com/TurtlePU/odlang/internal/ast"
)

func mustParse(t *testing.T, src string) ast.Term {
	t.Helper()
	term, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return term
}

func TestParseIdentityAbs(t *testing.T) {
	term := mustParse(t, `\x:().x`)
	abs, ok := term.(ast.Abs)
	if !ok {
		t.Fatalf("got %T", term)
	}
	if abs.Param != "x" {
		t.Fatalf("got param %q", abs.Param)
	}
	if _, ok := abs.Of.(ast.TyUnit); !ok {
		t.Fatalf("got param type %T", abs.Of)
	}
	if v, ok := abs.Body.(ast.Var); !ok || v.Name != "x" {
		t.Fatalf("got body %#v", abs.Body)
	}
}

func TestParseApplication(t *testing.T) {
	term := mustParse(t, `(\x:().x) ()`)
	app, ok := term.(ast.App)
	if !ok {
		t.Fatalf("got %T", term)
	}
	if _, ok := app.Func.(ast.Abs); !ok {
		t.Fatalf("got func %T", app.Func)
	}
	if _, ok := app.Arg.(ast.Unit); !ok {
		t.Fatalf("got arg %T", app.Arg)
	}
}

func TestParseLeftAssociativeApplication(t *testing.T) {
	term := mustParse(t, `\x:().\y:(). x x`)
	outer := term.(ast.Abs)
	inner := outer.Body.(ast.Abs)
	app, ok := inner.Body.(ast.App)
	if !ok {
		t.Fatalf("got body %T", inner.Body)
	}
	if _, ok := app.Func.(ast.Var); !ok {
		t.Fatalf("got func %T", app.Func)
	}
	if _, ok := app.Arg.(ast.Var); !ok {
		t.Fatalf("got arg %T", app.Arg)
	}
}

func TestParseTypeAbsAndApp(t *testing.T) {
	term := mustParse(t, `(/\a. \x:a. x) [()] ()`)
	app, ok := term.(ast.App)
	if !ok {
		t.Fatalf("got %T", term)
	}
	tyApp, ok := app.Func.(ast.TyApp)
	if !ok {
		t.Fatalf("got func %T", app.Func)
	}
	if _, ok := tyApp.Func.(ast.TyAbs); !ok {
		t.Fatalf("got tyapp func %T", tyApp.Func)
	}
	if _, ok := tyApp.Arg.(ast.TyUnit); !ok {
		t.Fatalf("got tyapp arg %T", tyApp.Arg)
	}
}

func TestParseForallType(t *testing.T) {
	term := mustParse(t, `/\a. \x:a. x`)
	tyAbs, ok := term.(ast.TyAbs)
	if !ok {
		t.Fatalf("got %T", term)
	}
	if tyAbs.Param != "a" {
		t.Fatalf("got param %q", tyAbs.Param)
	}
}

func TestParseArrowRightAssociative(t *testing.T) {
	term := mustParse(t, `\f:() -> () -> (). f`)
	abs := term.(ast.Abs)
	arrow, ok := abs.Of.(ast.TyArrow)
	if !ok {
		t.Fatalf("got %T", abs.Of)
	}
	if _, ok := arrow.To.(ast.TyArrow); !ok {
		t.Fatalf("expected right-associative arrow, got %T", arrow.To)
	}
}

func TestParseHoleType(t *testing.T) {
	term := mustParse(t, `\x:_. x`)
	abs := term.(ast.Abs)
	if _, ok := abs.Of.(ast.TyHole); !ok {
		t.Fatalf("got %T", abs.Of)
	}
}

func TestParseUnknownSymbolIsReported(t *testing.T) {
	_, errs := Parse(`@`)
	if len(errs) == 0 {
		t.Fatalf("expected parse errors")
	}
}

func TestParseUnexpectedTokenIsReported(t *testing.T) {
	_, errs := Parse(`() ->`)
	if len(errs) == 0 {
		t.Fatalf("expected parse errors")
	}
}

func TestParseUnitShortForm(t *testing.T) {
	term := mustParse(t, `()`)
	if _, ok := term.(ast.Unit); !ok {
		t.Fatalf("got %T", term)
	}
}
