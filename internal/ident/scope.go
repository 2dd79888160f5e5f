package ident

import "github.com/TurtlePU/odlang/internal/atoms"

// namespace tags a scope frame as belonging to the term-variable namespace
// or the type-variable namespace. Keeping them distinct means a term
// variable never resolves a type-position name and vice versa, rejecting
// e.g. `\x:(). \y:x. y` (term variable x used as a type) at identification
// time rather than deferring to typing (spec's tagged-namespace choice).
type namespace int

const (
	termNamespace namespace = iota
	typeNamespace
)

// frame is one cons cell of the lexical scope chain: name/Ident pairs are
// pushed on binder entry and the frame is simply dropped (not popped) when
// the enclosing call returns, since the chain is never mutated in place.
type frame struct {
	ns     namespace
	name   string
	ident  atoms.Ident
	parent *frame
}

// lookup walks the chain inside-out (innermost first), so a shadowing
// binder always wins, and only considers frames tagged with ns.
func (f *frame) lookup(ns namespace, name string) (atoms.Ident, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if fr.ns == ns && fr.name == name {
			return fr.ident, true
		}
	}
	return atoms.Ident{}, false
}
