// Package term holds the internal AST: the representation produced by the
// identifier pass, consumed read-only by the type checker, and rewritten by
// the evaluator. Unlike the surface AST, binder occurrences are resolved to
// atoms.Ident (term and type variables) or atoms.Alpha (type unknowns) rather than source
// names, so equality and substitution never have to consult a name table.
//
// Every node is a pointer to an immutable struct: once built, a node is
// never mutated, so it may be shared under many parents the way a
// reference-counted node would be shared — the garbage collector tracks
// the lifetime a refcount would otherwise track, and two pointers being
// equal is exactly "this is the same subtree", which is what
// substitution relies on to skip rebuilding unchanged branches.
package term

import "github.com/TurtlePU/odlang/internal/atoms"

// Term is any internal term node. The concrete variants are *Unit, *Var,
// *Abs, *App, *TyAbs and *TyApp; there is deliberately no error sentinel
// here, since invariant 3 of the internal AST rules it out after a
// successful identifier pass.
type Term interface {
	termNode()
}

// Type is any internal type node: *TyUnit, *TyAlpha, *TyVar, *TyArrow or
// *TyForall.
type Type interface {
	typeNode()
}

// Unit is the single inhabitant of the unit type.
type Unit struct{}

// Var is an occurrence of a term variable bound by some enclosing Abs.
type Var struct {
	Ident atoms.Ident
}

// Abs is a term-level lambda: \Param: Of. Body.
type Abs struct {
	Param atoms.Ident
	Of    Type
	Body  Term
}

// App is term application: Func applied to Arg.
type App struct {
	Func Term
	Arg  Term
}

// TyAbs is a type abstraction: /\ Param. Body.
type TyAbs struct {
	Param atoms.Ident
	Body  Term
}

// TyApp is type application: Func applied to the type Arg.
type TyApp struct {
	Func Term
	Arg  Type
}

func (*Unit) termNode()  {}
func (*Var) termNode()   {}
func (*Abs) termNode()   {}
func (*App) termNode()   {}
func (*TyAbs) termNode() {}
func (*TyApp) termNode() {}

// TyUnit is the unit type.
type TyUnit struct{}

// TyAlpha is a fresh opaque type unknown, minted from a source `_` or by
// the type checker during error recovery. It is equal only to itself.
type TyAlpha struct {
	Alpha atoms.Alpha
}

// TyVar is an occurrence of a type variable bound by some enclosing
// TyForall.
type TyVar struct {
	Ident atoms.Ident
}

// TyArrow is the function type From -> To.
type TyArrow struct {
	From Type
	To   Type
}

// TyForall is universal quantification: forall Param. Of.
type TyForall struct {
	Param atoms.Ident
	Of    Type
}

func (*TyUnit) typeNode()   {}
func (*TyAlpha) typeNode()  {}
func (*TyVar) typeNode()    {}
func (*TyArrow) typeNode()  {}
func (*TyForall) typeNode() {}

// De builds term nodes. Constructors always return a fresh pointer; share
// a returned Term across parents rather than building an equivalent one
// twice if cheap subtree reuse is wanted.
var De = struct {
	Unit  func() Term
	Var   func(i atoms.Ident) Term
	Abs   func(param atoms.Ident, of Type, body Term) Term
	App   func(f, x Term) Term
	TyAbs func(param atoms.Ident, body Term) Term
	TyApp func(f Term, arg Type) Term
}{
	Unit:  func() Term { return &Unit{} },
	Var:   func(i atoms.Ident) Term { return &Var{Ident: i} },
	Abs:   func(param atoms.Ident, of Type, body Term) Term { return &Abs{Param: param, Of: of, Body: body} },
	App:   func(f, x Term) Term { return &App{Func: f, Arg: x} },
	TyAbs: func(param atoms.Ident, body Term) Term { return &TyAbs{Param: param, Body: body} },
	TyApp: func(f Term, arg Type) Term { return &TyApp{Func: f, Arg: arg} },
}

// Ty builds type nodes, mirroring De for the type sublanguage.
var Ty = struct {
	Unit   func() Type
	Alpha  func(a atoms.Alpha) Type
	Var    func(i atoms.Ident) Type
	Arrow  func(from, to Type) Type
	Forall func(param atoms.Ident, of Type) Type
}{
	Unit:   func() Type { return &TyUnit{} },
	Alpha:  func(a atoms.Alpha) Type { return &TyAlpha{Alpha: a} },
	Var:    func(i atoms.Ident) Type { return &TyVar{Ident: i} },
	Arrow:  func(from, to Type) Type { return &TyArrow{From: from, To: to} },
	Forall: func(param atoms.Ident, of Type) Type { return &TyForall{Param: param, Of: of} },
}
