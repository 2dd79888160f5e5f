// Package typecheck synthesises a System F type for an internal term,
// collecting every typing error in one left-to-right pass rather than
// aborting at the first one (spec's error-recovery policy): each
// judgement that fails still produces a plausible surrogate type so the
// traversal, and therefore the error list, is always complete.
package typecheck

import (
	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/diagnostic"
	"github.com/TurtlePU/odlang/internal/term"
)

// Kind identifies which of the three typing-error shapes an Error is.
type Kind int

const (
	// NotAFunction: App applied a non-arrow type.
	NotAFunction Kind = iota
	// NotAForall: TyApp instantiated a non-forall type.
	NotAForall
	// NotEqual: an application's argument type did not match the
	// function's declared domain.
	NotEqual
)

// Error is one typing diagnostic. Which of Type / Expected / Actual is
// populated depends on Kind; callers render the contained types with the
// pretty printer and the NameTable produced by the identifier pass.
type Error struct {
	Kind     Kind
	Type     term.Type // NotAFunction, NotAForall: the offending type
	Expected term.Type // NotEqual: the function's declared domain
	Actual   term.Type // NotEqual: the argument's synthesised type
}

// Errors is the ordered diagnostic list the type checker accumulates;
// order is left-to-right traversal order, which callers may rely on for
// stable output.
type Errors = diagnostic.List[Error]

// Result pairs a best-effort type with the Errors collected synthesising
// it. The type is meaningful only when Errors is empty.
type Result = diagnostic.MultiResult[term.Type, Errors]

// Synthesize type-checks t, threading alphas to mint fresh type unknowns
// during error recovery (App on a non-arrow, TyApp on a non-forall).
// alphas is typically the counter handed back by the identifier pass, so
// recovery unknowns never collide with holes already in the term.
func Synthesize(t term.Term, alphas *atoms.AlphaGen) (term.Type, Errors) {
	ctx := &context{env: make(map[atoms.Ident]term.Type), alphas: alphas}
	value, errs, _ := ctx.typeck(t).Result()
	return value, errs
}

type context struct {
	env    map[atoms.Ident]term.Type
	alphas *atoms.AlphaGen
}

func ok(t term.Type) Result {
	return diagnostic.Ok[term.Type, Errors](t)
}

func (c *context) typeck(t term.Term) Result {
	switch t := t.(type) {
	case *term.Unit:
		return ok(term.Ty.Unit())
	case *term.Var:
		if found, ok2 := c.env[t.Ident]; ok2 {
			return ok(found)
		}
		return ok(c.nextHole())
	case *term.Abs:
		c.env[t.Param] = t.Of
		body := c.typeck(t.Body)
		return diagnostic.Map(body, func(u term.Type) term.Type {
			return term.Ty.Arrow(t.Of, u)
		})
	case *term.App:
		f := c.typeck(t.Func)
		x := c.typeck(t.Arg)
		return diagnostic.Then(diagnostic.Combine2(f, x), func(p diagnostic.Pair[term.Type, term.Type]) Result {
			return c.assertApp(p.First, p.Second)
		})
	case *term.TyAbs:
		body := c.typeck(t.Body)
		return diagnostic.Map(body, func(u term.Type) term.Type {
			return term.Ty.Forall(t.Param, u)
		})
	case *term.TyApp:
		f := c.typeck(t.Func)
		return diagnostic.Then(f, func(fty term.Type) Result {
			return c.assertTyApp(fty, t.Arg)
		})
	default:
		panic("typecheck: unknown term node")
	}
}

// assertApp requires fn to be an arrow type, recovering with a fresh
// Alpha when it is not. When the argument type disagrees with the domain
// it reports the mismatch and still yields the declared codomain (taking
// the user at their word on the function side).
func (c *context) assertApp(fn, arg term.Type) Result {
	arrow, isArrow := fn.(*term.TyArrow)
	if !isArrow {
		return diagnostic.Fail(c.nextHole(), diagnostic.Single(Error{Kind: NotAFunction, Type: fn}))
	}
	if term.EqualType(arrow.From, arg) {
		return ok(arrow.To)
	}
	return diagnostic.Fail(arrow.To, diagnostic.Single(Error{Kind: NotEqual, Expected: arrow.From, Actual: arg}))
}

// assertTyApp requires fn to be a forall type, recovering with a fresh
// Alpha when it is not.
func (c *context) assertTyApp(fn term.Type, arg term.Type) Result {
	forall, isForall := fn.(*term.TyForall)
	if !isForall {
		return diagnostic.Fail(c.nextHole(), diagnostic.Single(Error{Kind: NotAForall, Type: fn}))
	}
	return ok(term.SubstType(forall.Of, forall.Param, arg))
}

func (c *context) nextHole() term.Type {
	return term.Ty.Alpha(c.alphas.Next())
}
