package atoms

import "fmt"

// Ident is an opaque token minted by IdentGen to distinguish binders. Two
// binders that textually share a source name still receive distinct Idents;
// equality of Ident values is the only equality the rest of the pipeline
// relies on for variable identity.
type Ident struct{ id uint64 }

func (i Ident) String() string {
	return fmt.Sprintf("#%d", i.id)
}

// IdentGen is a monotonically increasing counter owned by the identifier
// pass for the duration of one REPL line.
type IdentGen struct{ next uint64 }

// Next mints a fresh, previously unused Ident.
func (g *IdentGen) Next() Ident {
	g.next++
	return Ident{id: g.next}
}

// Alpha is an opaque fresh type unknown, distinct from every Ident and from
// every other Alpha. Produced for `_` placeholders and for type-checker
// recovery after a typing error.
type Alpha struct{ id uint64 }

func (a Alpha) String() string {
	return fmt.Sprintf("_%d", a.id)
}

// AlphaGen is the counter that mints Alphas, owned by the identifier pass
// and advanced further by the type checker during error recovery.
type AlphaGen struct{ next uint64 }

// Next mints a fresh Alpha.
func (g *AlphaGen) Next() Alpha {
	g.next++
	return Alpha{id: g.next}
}

// NameTable maps each Ident to the source name of the binder that produced
// it, for diagnostics and pretty-printing only — it is never consulted for
// equality.
type NameTable struct {
	names map[Ident]string
}

// NewNameTable returns an empty table.
func NewNameTable() *NameTable {
	return &NameTable{names: make(map[Ident]string)}
}

// Bind records the source name for a freshly minted Ident.
func (t *NameTable) Bind(id Ident, name string) {
	t.names[id] = name
}

// Name looks up the source name of id, or "?" if id was never bound (should
// not happen for a well-formed internal term).
func (t *NameTable) Name(id Ident) string {
	if name, ok := t.names[id]; ok {
		return name
	}
	return "?"
}
