// Package ident implements the identifier pass: alpha-renaming from the
// surface AST (string-named binders) to the internal AST (Ident/Alpha
// keyed binders). It resolves every surface Var to the Ident of its
// nearest enclosing binder, reports unbound occurrences without aborting,
// and mints a fresh Alpha for every `_` hole.
package ident

import (
	"github.com/TurtlePU/odlang/internal/ast"
	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/diagnostic"
	"github.com/TurtlePU/odlang/internal/term"
)

// unboundSet is the error collection every sub-rename accumulates next to
// its best-effort value: the set of surface names seen unbound so far.
// Duplicates collapse since it is a Set, matching the "aggregated,
// de-duped" surfacing policy for unbound names.
type unboundSet = diagnostic.Set[string]

// Context owns the counters threaded through one identifier-pass run: the
// Ident generator (shared by term and type binders) and the Alpha
// generator (shared with the type checker's recovery unknowns), plus the
// NameTable built up for diagnostics and pretty-printing.
type Context struct {
	Names  *atoms.NameTable
	Idents atoms.IdentGen
	Alphas atoms.AlphaGen
}

// Identify renames a surface term into the internal AST. It always
// returns a term, even when names are unbound — unbound occurrences
// become fresh, never-bound Idents so the type checker's own context
// lookup naturally treats them as absent and recovers with an Alpha.
func Identify(input ast.Term) (term.Term, *atoms.NameTable, atoms.AlphaGen, diagnostic.Set[string]) {
	ctx := &Context{Names: atoms.NewNameTable()}
	value, unbound, _ := ctx.renameTerm(nil, input).Result()
	return value, ctx.Names, ctx.Alphas, unbound
}

func ok[T any](v T) diagnostic.MultiResult[T, unboundSet] {
	return diagnostic.Ok[T, unboundSet](v)
}

func renameVar[T any](scope *frame, ns namespace, name string, gen *atoms.IdentGen, ctor func(atoms.Ident) T) diagnostic.MultiResult[T, unboundSet] {
	if i, found := scope.lookup(ns, name); found {
		return ok(ctor(i))
	}
	placeholder := gen.Next()
	return diagnostic.Fail(ctor(placeholder), diagnostic.SetOf(name))
}

func (c *Context) bind(scope *frame, ns namespace, name string) (*frame, atoms.Ident) {
	v := c.Idents.Next()
	c.Names.Bind(v, name)
	return &frame{ns: ns, name: name, ident: v, parent: scope}, v
}

func (c *Context) renameTerm(scope *frame, in ast.Term) diagnostic.MultiResult[term.Term, unboundSet] {
	switch in := in.(type) {
	case ast.Unit:
		return ok[term.Term](term.De.Unit())
	case ast.Var:
		return renameVar(scope, termNamespace, in.Name, &c.Idents, term.De.Var)
	case ast.App:
		f := c.renameTerm(scope, in.Func)
		x := c.renameTerm(scope, in.Arg)
		return diagnostic.Map(diagnostic.Combine2(f, x), func(p diagnostic.Pair[term.Term, term.Term]) term.Term {
			return term.De.App(p.First, p.Second)
		})
	case ast.Abs:
		inner, v := c.bind(scope, termNamespace, in.Param)
		ty := c.renameType(inner, in.Of)
		body := c.renameTerm(inner, in.Body)
		return diagnostic.Map(diagnostic.Combine2(ty, body), func(p diagnostic.Pair[term.Type, term.Term]) term.Term {
			return term.De.Abs(v, p.First, p.Second)
		})
	case ast.TyAbs:
		inner, v := c.bind(scope, typeNamespace, in.Param)
		body := c.renameTerm(inner, in.Body)
		return diagnostic.Map(body, func(b term.Term) term.Term {
			return term.De.TyAbs(v, b)
		})
	case ast.TyApp:
		f := c.renameTerm(scope, in.Func)
		arg := c.renameType(scope, in.Arg)
		return diagnostic.Map(diagnostic.Combine2(f, arg), func(p diagnostic.Pair[term.Term, term.Type]) term.Term {
			return term.De.TyApp(p.First, p.Second)
		})
	default:
		panic("ident: surface TmError reached the identifier pass")
	}
}

func (c *Context) renameType(scope *frame, in ast.Type) diagnostic.MultiResult[term.Type, unboundSet] {
	switch in := in.(type) {
	case ast.TyUnit:
		return ok[term.Type](term.Ty.Unit())
	case ast.TyHole:
		return ok[term.Type](term.Ty.Alpha(c.Alphas.Next()))
	case ast.TyVar:
		return renameVar(scope, typeNamespace, in.Name, &c.Idents, term.Ty.Var)
	case ast.TyArrow:
		from := c.renameType(scope, in.From)
		to := c.renameType(scope, in.To)
		return diagnostic.Map(diagnostic.Combine2(from, to), func(p diagnostic.Pair[term.Type, term.Type]) term.Type {
			return term.Ty.Arrow(p.First, p.Second)
		})
	case ast.TyForall:
		inner, v := c.bind(scope, typeNamespace, in.Param)
		body := c.renameType(inner, in.Of)
		return diagnostic.Map(body, func(b term.Type) term.Type {
			return term.Ty.Forall(v, b)
		})
	default:
		panic("ident: surface TyError reached the identifier pass")
	}
}
