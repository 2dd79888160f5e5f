// Package eval reduces a type-checked internal term to call-by-value
// normal form. It assumes its input already satisfies the internal AST's
// invariants and passed type checking; running it on an ill-typed term is
// unspecified (the driver must not call Eval unless the type checker
// reported no errors).
package eval

import "github.com/TurtlePU/odlang/internal/term"

// Eval reduces t to normal form, including the bodies of term and type
// abstractions. Evaluation is total for this calculus in
// the absence of recursion primitives, so no fuel or cancellation check is
// needed; a future host wanting cancellation need only poll a token
// between recursive calls here.
func Eval(t term.Term) term.Term {
	switch t := t.(type) {
	case *term.App:
		f := Eval(t.Func)
		x := Eval(t.Arg)
		if abs, ok := f.(*term.Abs); ok {
			return Eval(term.SubstTerm(abs.Body, abs.Param, x))
		}
		if f == t.Func && x == t.Arg {
			return t
		}
		return term.De.App(f, x)
	case *term.TyApp:
		f := Eval(t.Func)
		if tyAbs, ok := f.(*term.TyAbs); ok {
			return Eval(term.SubstTypeInTerm(tyAbs.Body, tyAbs.Param, t.Arg))
		}
		if f == t.Func {
			return t
		}
		return term.De.TyApp(f, t.Arg)
	case *term.Abs:
		body := Eval(t.Body)
		if body == t.Body {
			return t
		}
		return term.De.Abs(t.Param, t.Of, body)
	case *term.TyAbs:
		body := Eval(t.Body)
		if body == t.Body {
			return t
		}
		return term.De.TyAbs(t.Param, body)
	default:
		// Unit and Var are already values.
		return t
	}
}
