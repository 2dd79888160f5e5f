// Package pprint turns an internal Term or Type back into a source-like
// string, using the NameTable produced by the identifier pass to recover
// original binder names. Parentheses are inserted only where needed for
// re-parse fidelity (application of an abstraction, arrow whose domain is
// itself an arrow or forall).
//
// Printing re-derives display names rather than reusing the NameTable
// verbatim: two distinct binders can share one source name (shadowing),
// and printing both as that name would make the output ambiguous. A
// shadowing binder's display name gets a trailing "'" appended until it
// no longer collides with a name already active in the enclosing scope —
// this is what lets scenario inputs like `\y:(). (\x:(). \y:(). x) y`
// print as `\y: (). \y': (). y` instead of two indistinguishable `y`s.
package pprint

import (
	"fmt"

	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/term"
)

// scope is the print-time binder chain: for every enclosing binder it
// records the Ident it introduced and the display name that was actually
// chosen for it (which may differ from the source name on a collision).
type scope struct {
	ident   atoms.Ident
	display string
	parent  *scope
}

func (s *scope) lookup(id atoms.Ident) string {
	for fr := s; fr != nil; fr = fr.parent {
		if fr.ident == id {
			return fr.display
		}
	}
	return "?"
}

func (s *scope) displayInUse(name string) bool {
	for fr := s; fr != nil; fr = fr.parent {
		if fr.display == name {
			return true
		}
	}
	return false
}

func bind(s *scope, names *atoms.NameTable, id atoms.Ident) (*scope, string) {
	display := names.Name(id)
	for s.displayInUse(display) {
		display += "'"
	}
	return &scope{ident: id, display: display, parent: s}, display
}

// Term renders t as a source-like string using names to recover original
// binder names.
func Term(t term.Term, names *atoms.NameTable) string {
	return printTerm(t, nil, names)
}

// Type renders ty as a source-like string.
func Type(ty term.Type, names *atoms.NameTable) string {
	return printType(ty, nil, names)
}

func printTerm(t term.Term, sc *scope, names *atoms.NameTable) string {
	switch t := t.(type) {
	case *term.Unit:
		return "()"
	case *term.Var:
		return sc.lookup(t.Ident)
	case *term.Abs:
		inner, display := bind(sc, names, t.Param)
		return fmt.Sprintf("\\%s: %s. %s", display, printType(t.Of, sc, names), printTerm(t.Body, inner, names))
	case *term.App:
		funcStr := printTerm(t.Func, sc, names)
		if _, isAbs := t.Func.(*term.Abs); isAbs {
			funcStr = "(" + funcStr + ")"
		}
		return fmt.Sprintf("%s %s", funcStr, printTerm(t.Arg, sc, names))
	case *term.TyAbs:
		inner, display := bind(sc, names, t.Param)
		return fmt.Sprintf("/\\ %s. %s", display, printTerm(t.Body, inner, names))
	case *term.TyApp:
		funcStr := printTerm(t.Func, sc, names)
		if _, isTyAbs := t.Func.(*term.TyAbs); isTyAbs {
			funcStr = "(" + funcStr + ")"
		}
		return fmt.Sprintf("%s [%s]", funcStr, printType(t.Arg, sc, names))
	default:
		return "ERROR"
	}
}

func printType(ty term.Type, sc *scope, names *atoms.NameTable) string {
	switch ty := ty.(type) {
	case *term.TyUnit:
		return "()"
	case *term.TyAlpha:
		return ty.Alpha.String()
	case *term.TyVar:
		return sc.lookup(ty.Ident)
	case *term.TyArrow:
		fromStr := printType(ty.From, sc, names)
		switch ty.From.(type) {
		case *term.TyUnit, *term.TyAlpha, *term.TyVar:
		default:
			fromStr = "(" + fromStr + ")"
		}
		return fmt.Sprintf("%s -> %s", fromStr, printType(ty.To, sc, names))
	case *term.TyForall:
		inner, display := bind(sc, names, ty.Param)
		return fmt.Sprintf("/\\ %s => %s", display, printType(ty.Of, inner, names))
	default:
		return "ERROR"
	}
}
