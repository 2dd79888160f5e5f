package term

import "github.com/TurtlePU/odlang/internal/atoms"

// EqualType reports whether a and b are the same type up to
// alpha-equivalence of forall-bound identifiers. Free identifiers (TyVar
// occurrences with no enclosing TyForall in the comparison) must be
// literally the same atoms.Ident, since those always originate from the
// same binder once the identifier pass has run.
func EqualType(a, b Type) bool {
	return equalType(a, b, nil)
}

// bijection is a local correspondence between the bound identifiers seen
// on a's side and on b's side while walking two types in lockstep.
type bijection struct {
	forward  map[atoms.Ident]atoms.Ident
	backward map[atoms.Ident]atoms.Ident
	parent   *bijection
}

func (bj *bijection) extend(a, b atoms.Ident) *bijection {
	return &bijection{
		forward:  map[atoms.Ident]atoms.Ident{a: b},
		backward: map[atoms.Ident]atoms.Ident{b: a},
		parent:   bj,
	}
}

func (bj *bijection) lookup(a atoms.Ident) (atoms.Ident, bool) {
	for env := bj; env != nil; env = env.parent {
		if b, ok := env.forward[a]; ok {
			return b, true
		}
	}
	return atoms.Ident{}, false
}

func (bj *bijection) lookupBackward(b atoms.Ident) (atoms.Ident, bool) {
	for env := bj; env != nil; env = env.parent {
		if a, ok := env.backward[b]; ok {
			return a, true
		}
	}
	return atoms.Ident{}, false
}

func equalType(a, b Type, env *bijection) bool {
	switch a := a.(type) {
	case *TyUnit:
		_, ok := b.(*TyUnit)
		return ok
	case *TyAlpha:
		bb, ok := b.(*TyAlpha)
		return ok && a.Alpha == bb.Alpha
	case *TyVar:
		bb, ok := b.(*TyVar)
		if !ok {
			return false
		}
		if mapped, found := env.lookup(a.Ident); found {
			return mapped == bb.Ident
		}
		if _, found := env.lookupBackward(bb.Ident); found {
			return false
		}
		return a.Ident == bb.Ident
	case *TyArrow:
		bb, ok := b.(*TyArrow)
		return ok && equalType(a.From, bb.From, env) && equalType(a.To, bb.To, env)
	case *TyForall:
		bb, ok := b.(*TyForall)
		if !ok {
			return false
		}
		return equalType(a.Of, bb.Of, env.extend(a.Param, bb.Param))
	default:
		return false
	}
}
