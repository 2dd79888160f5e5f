package ident

import (
	"testing"

	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/parser"
	"github.com/TurtlePU/odlang/internal/term"
)

func parseOK(t *testing.T, src string) term.Term {
	t.Helper()
	surface, errs := parser.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	got, _, _, unbound := Identify(surface)
	if len(unbound) != 0 {
		t.Fatalf("unexpected unbound names: %v", unbound)
	}
	return got
}

func TestIdentifyTrivialAbs(t *testing.T) {
	got := parseOK(t, `\x:().x`)
	abs, ok := got.(*term.Abs)
	if !ok {
		t.Fatalf("got %T", got)
	}
	v, ok := abs.Body.(*term.Var)
	if !ok || v.Ident != abs.Param {
		t.Fatalf("body does not reference the bound parameter: %#v", abs.Body)
	}
}

func TestIdentifyShadowingAssignsDistinctIdents(t *testing.T) {
	got := parseOK(t, `\y:(). (\x:(). \y:(). x) y`)
	outer := got.(*term.Abs)
	app := outer.Body.(*term.App)
	innerAbs := app.Func.(*term.Abs)
	innerInnerAbs := innerAbs.Body.(*term.Abs)
	bodyVar := innerInnerAbs.Body.(*term.Var)

	if bodyVar.Ident != innerAbs.Param {
		t.Fatalf("inner body should reference the outer-x binder")
	}
	if innerInnerAbs.Param == innerAbs.Param {
		t.Fatalf("shadowing binders must receive distinct idents")
	}
	argVar := app.Arg.(*term.Var)
	if argVar.Ident != outer.Param {
		t.Fatalf("application argument should reference the outermost y")
	}
}

func TestIdentifyUnboundNameIsReported(t *testing.T) {
	surface, errs := parser.Parse(`z`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	_, _, _, unbound := Identify(surface)
	if _, ok := unbound["z"]; !ok {
		t.Fatalf("expected z to be reported unbound: %v", unbound)
	}
}

func TestIdentifyRejectsTermVarInTypePosition(t *testing.T) {
	// x is bound as a term variable; annotating y's type with x reaches
	// into the term namespace from a type position, which the tagged
	// scope discipline rejects at identification time rather than typing.
	surface, errs := parser.Parse(`\x:(). \y:x. y`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	_, _, _, unbound := Identify(surface)
	if _, ok := unbound["x"]; !ok {
		t.Fatalf("expected x to be unbound in type position: %v", unbound)
	}
}

func TestIdentifyHoleMintsFreshAlpha(t *testing.T) {
	surface, errs := parser.Parse(`\x:_. x`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	got, _, alphas, unbound := Identify(surface)
	if len(unbound) != 0 {
		t.Fatalf("unexpected unbound: %v", unbound)
	}
	abs := got.(*term.Abs)
	if _, ok := abs.Of.(*term.TyAlpha); !ok {
		t.Fatalf("got param type %#v", abs.Of)
	}
	var zero atoms.AlphaGen
	if alphas == zero {
		t.Fatalf("expected the alpha counter to have advanced")
	}
}
