// Package ast defines the surface syntax tree produced by the parser: terms
// and types still keyed by source-text names, each carrying the atoms.Range
// it was parsed from.
package ast

import (
	"fmt"

	"github.com/TurtlePU/odlang/internal/atoms"
)

// Node is the common shape of every surface AST node.
type Node interface {
	fmt.Stringer
	Range() atoms.Range
}

// Term is a surface term node.
type Term interface {
	Node
	termNode()
}

// Type is a surface type node.
type Type interface {
	Node
	typeNode()
}

// Unit is the `()` term.
type Unit struct {
	R atoms.Range
}

// Var is a bare identifier occurrence, resolved during the identifier pass.
type Var struct {
	Name string
	R    atoms.Range
}

// Abs is `\name: Type. Term`.
type Abs struct {
	Param string
	Of    Type
	Body  Term
	R     atoms.Range
}

// App is term application by juxtaposition: `f x`.
type App struct {
	Func Term
	Arg  Term
	R    atoms.Range
}

// TyAbs is `/\name. Term`, a type abstraction.
type TyAbs struct {
	Param string
	Body  Term
	R     atoms.Range
}

// TyApp is `f [Type]`, a type application.
type TyApp struct {
	Func Term
	Arg  Type
	R    atoms.Range
}

// TmError is a parser-recovery sentinel; it must never reach the identifier
// pass on a success path (parse errors short-circuit the pipeline).
type TmError struct {
	R atoms.Range
}

func (Unit) termNode()    {}
func (Var) termNode()     {}
func (Abs) termNode()     {}
func (App) termNode()     {}
func (TyAbs) termNode()   {}
func (TyApp) termNode()   {}
func (TmError) termNode() {}

func (t Unit) Range() atoms.Range    { return t.R }
func (t Var) Range() atoms.Range     { return t.R }
func (t Abs) Range() atoms.Range     { return t.R }
func (t App) Range() atoms.Range     { return t.R }
func (t TyAbs) Range() atoms.Range   { return t.R }
func (t TyApp) Range() atoms.Range   { return t.R }
func (t TmError) Range() atoms.Range { return t.R }

func (t Unit) String() string    { return "()" }
func (t Var) String() string     { return t.Name }
func (t Abs) String() string     { return fmt.Sprintf("\\%s: %s. %s", t.Param, t.Of, t.Body) }
func (t App) String() string     { return fmt.Sprintf("%s %s", t.Func, t.Arg) }
func (t TyAbs) String() string   { return fmt.Sprintf("/\\ %s. %s", t.Param, t.Body) }
func (t TyApp) String() string   { return fmt.Sprintf("%s [%s]", t.Func, t.Arg) }
func (t TmError) String() string { return "<parse error>" }

// TyUnit is the `()` type.
type TyUnit struct {
	R atoms.Range
}

// TyHole is a `_` placeholder type.
type TyHole struct {
	R atoms.Range
}

// TyVar is a bare type identifier occurrence.
type TyVar struct {
	Name string
	R    atoms.Range
}

// TyArrow is `From -> To`, right-associative.
type TyArrow struct {
	From Type
	To   Type
	R    atoms.Range
}

// TyForall is `/\name => Type`.
type TyForall struct {
	Param string
	Of    Type
	R     atoms.Range
}

// TyErrorNode is a parser-recovery sentinel for types.
type TyErrorNode struct {
	R atoms.Range
}

func (TyUnit) typeNode()      {}
func (TyHole) typeNode()      {}
func (TyVar) typeNode()       {}
func (TyArrow) typeNode()     {}
func (TyForall) typeNode()    {}
func (TyErrorNode) typeNode() {}

func (t TyUnit) Range() atoms.Range      { return t.R }
func (t TyHole) Range() atoms.Range      { return t.R }
func (t TyVar) Range() atoms.Range       { return t.R }
func (t TyArrow) Range() atoms.Range     { return t.R }
func (t TyForall) Range() atoms.Range    { return t.R }
func (t TyErrorNode) Range() atoms.Range { return t.R }

func (t TyUnit) String() string      { return "()" }
func (t TyHole) String() string      { return "_" }
func (t TyVar) String() string       { return t.Name }
func (t TyArrow) String() string     { return fmt.Sprintf("%s -> %s", t.From, t.To) }
func (t TyForall) String() string    { return fmt.Sprintf("/\\ %s => %s", t.Param, t.Of) }
func (t TyErrorNode) String() string { return "<parse error>" }
