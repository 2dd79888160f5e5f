package term

import "github.com/TurtlePU/odlang/internal/atoms"

// SubstType computes T[i := s]: a structural recursion replacing every
// TyVar(i) with s. Capture is impossible because binders carry globally
// unique identifiers, so no shifting or renaming is needed — the
// traversal simply stops descending into a TyForall that rebinds i, since
// the inner binding shadows the substitutee from that point down.
//
// Subtrees untouched by the substitution are returned unchanged (the very
// same pointer that was passed in), never rebuilt, so sharing is
// preserved on the parts of the tree the substitution doesn't touch.
func SubstType(t Type, i atoms.Ident, s Type) Type {
	switch t := t.(type) {
	case *TyUnit, *TyAlpha:
		return t
	case *TyVar:
		if t.Ident == i {
			return s
		}
		return t
	case *TyArrow:
		from := SubstType(t.From, i, s)
		to := SubstType(t.To, i, s)
		if from == t.From && to == t.To {
			return t
		}
		return &TyArrow{From: from, To: to}
	case *TyForall:
		if t.Param == i {
			return t
		}
		of := SubstType(t.Of, i, s)
		if of == t.Of {
			return t
		}
		return &TyForall{Param: t.Param, Of: of}
	default:
		return t
	}
}

// SubstTypeInTerm applies SubstType at every type occurrence embedded in
// a term — the binder annotation of an Abs and the argument of a TyApp —
// without touching the term skeleton otherwise. It is used when reducing
// TyApp(TyAbs(i, body), arg): every type inside body that mentions i is
// replaced by arg.
func SubstTypeInTerm(term Term, i atoms.Ident, s Type) Term {
	switch t := term.(type) {
	case *Unit, *Var:
		return t
	case *Abs:
		of := SubstType(t.Of, i, s)
		body := SubstTypeInTerm(t.Body, i, s)
		if of == t.Of && body == t.Body {
			return t
		}
		return &Abs{Param: t.Param, Of: of, Body: body}
	case *App:
		f := SubstTypeInTerm(t.Func, i, s)
		x := SubstTypeInTerm(t.Arg, i, s)
		if f == t.Func && x == t.Arg {
			return t
		}
		return &App{Func: f, Arg: x}
	case *TyAbs:
		if t.Param == i {
			return t
		}
		body := SubstTypeInTerm(t.Body, i, s)
		if body == t.Body {
			return t
		}
		return &TyAbs{Param: t.Param, Body: body}
	case *TyApp:
		f := SubstTypeInTerm(t.Func, i, s)
		arg := SubstType(t.Arg, i, s)
		if f == t.Func && arg == t.Arg {
			return t
		}
		return &TyApp{Func: f, Arg: arg}
	default:
		return term
	}
}

// SubstTerm computes b[i := v]: structural recursion over the term
// skeleton, replacing every Var(i) with v. Type components embedded in
// the term (Abs parameter annotations, TyApp arguments) are left
// untouched — term substitution never rewrites a type.
func SubstTerm(b Term, i atoms.Ident, v Term) Term {
	switch b := b.(type) {
	case *Unit:
		return b
	case *Var:
		if b.Ident == i {
			return v
		}
		return b
	case *Abs:
		if b.Param == i {
			return b
		}
		body := SubstTerm(b.Body, i, v)
		if body == b.Body {
			return b
		}
		return &Abs{Param: b.Param, Of: b.Of, Body: body}
	case *App:
		f := SubstTerm(b.Func, i, v)
		x := SubstTerm(b.Arg, i, v)
		if f == b.Func && x == b.Arg {
			return b
		}
		return &App{Func: f, Arg: x}
	case *TyAbs:
		body := SubstTerm(b.Body, i, v)
		if body == b.Body {
			return b
		}
		return &TyAbs{Param: b.Param, Body: body}
	case *TyApp:
		f := SubstTerm(b.Func, i, v)
		if f == b.Func {
			return b
		}
		return &TyApp{Func: f, Arg: b.Arg}
	default:
		return b
	}
}
