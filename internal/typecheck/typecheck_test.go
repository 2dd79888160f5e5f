package typecheck

import (
	"testing"

	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/ident"
	"github.com/TurtlePU/odlang/internal/parser"
	"github.com/TurtlePU/odlang/internal/term"
)

func synth(t *testing.T, src string) (term.Type, Errors) {
	t.Helper()
	surface, perrs := parser.Parse(src)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	internal, _, alphas, unbound := ident.Identify(surface)
	if len(unbound) != 0 {
		t.Fatalf("unexpected unbound names: %v", unbound)
	}
	return Synthesize(internal, &alphas)
}

func TestSynthesizeIdentity(t *testing.T) {
	ty, errs := synth(t, `\x:().x`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	arrow, ok := ty.(*term.TyArrow)
	if !ok {
		t.Fatalf("got %#v", ty)
	}
	if _, ok := arrow.From.(*term.TyUnit); !ok {
		t.Fatalf("got domain %#v", arrow.From)
	}
	if _, ok := arrow.To.(*term.TyUnit); !ok {
		t.Fatalf("got codomain %#v", arrow.To)
	}
}

func TestSynthesizePolymorphicIdentity(t *testing.T) {
	ty, errs := synth(t, `/\a. \x:a. x`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	forall, ok := ty.(*term.TyForall)
	if !ok {
		t.Fatalf("got %#v", ty)
	}
	arrow, ok := forall.Of.(*term.TyArrow)
	if !ok {
		t.Fatalf("got %#v", forall.Of)
	}
	fromVar, ok := arrow.From.(*term.TyVar)
	if !ok || fromVar.Ident != forall.Param {
		t.Fatalf("expected domain to reference the bound type var: %#v", arrow.From)
	}
}

func TestSynthesizeApplicationOfUnitIsNotAFunction(t *testing.T) {
	_, errs := synth(t, `() ()`)
	if len(errs) != 1 || errs[0].Kind != NotAFunction {
		t.Fatalf("got %v", errs)
	}
	if _, ok := errs[0].Type.(*term.TyUnit); !ok {
		t.Fatalf("expected the offending type to be unit: %#v", errs[0].Type)
	}
}

func TestSynthesizeSelfApplicationIsNotAFunction(t *testing.T) {
	_, errs := synth(t, `\x:().\y:(). x x`)
	if len(errs) != 1 || errs[0].Kind != NotAFunction {
		t.Fatalf("got %v", errs)
	}
}

func TestSynthesizeBetaReducesForallInstantiation(t *testing.T) {
	ty, errs := synth(t, `(/\a. \x:a. x) [()] ()`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := ty.(*term.TyUnit); !ok {
		t.Fatalf("got %#v", ty)
	}
}

func TestSynthesizeUnboundVarRecoversWithAlpha(t *testing.T) {
	surface, _ := parser.Parse(`z`)
	internal, _, alphas, _ := ident.Identify(surface)
	ty, errs := Synthesize(internal, &alphas)
	if len(errs) != 0 {
		t.Fatalf("the type checker itself reports no errors for an already-synthesized Alpha: %v", errs)
	}
	if _, ok := ty.(*term.TyAlpha); !ok {
		t.Fatalf("got %#v", ty)
	}
}

func TestSynthesizeDomainMismatchReportsNotEqual(t *testing.T) {
	var gen atoms.IdentGen
	x := gen.Next()
	fn := term.De.Abs(x, term.Ty.Unit(), term.De.Var(x))
	app := term.De.App(fn, term.De.TyAbs(gen.Next(), term.De.Unit()))
	_, errs := Synthesize(app, new(atoms.AlphaGen))
	if len(errs) != 1 || errs[0].Kind != NotEqual {
		t.Fatalf("got %v", errs)
	}
}
