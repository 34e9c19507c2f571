// Package lookup implements the global package/class name trie and the
// per-unit ordered lookup chain: imports, members, package, wildcards,
// root namespace, fully-qualified fallback.
package lookup

import "github.com/cpovirk/turbine/sym"

// Result is the outcome of a short-name Scope lookup. A lookup can miss,
// hit exactly one symbol, or — for wildcard scopes — hit more than one
// distinct symbol, which must be reported rather than silently resolved.
type Result struct {
	Sym       sym.ClassSymbol
	Found     bool
	Ambiguous bool
}

// Scope maps a short name to a class symbol within some bounded lexical
// region.
type Scope interface {
	Lookup(name string) Result
}

// MapScope is a Scope backed by a plain map: the simplest building block,
// used for single-type import tables, same-package scopes, and member
// short-name maps.
type MapScope map[string]sym.ClassSymbol

func (m MapScope) Lookup(name string) Result {
	if s, ok := m[name]; ok {
		return Result{Sym: s, Found: true}
	}
	return Result{}
}

// -----------------------------------------------------------------------------

// CompoundScope composes scopes by priority: the most recently appended
// layer is checked first and the base layer last, and Lookup stops at the
// first layer that either hits or reports ambiguity.
type CompoundScope struct {
	layers []Scope
}

// NewCompoundScope starts a chain with base as its lowest-priority layer.
func NewCompoundScope(base Scope) *CompoundScope {
	return &CompoundScope{layers: []Scope{base}}
}

// Append adds s as a higher-priority layer, checked before every layer
// already present. Returns a new CompoundScope; the receiver is
// unchanged.
func (c *CompoundScope) Append(s Scope) *CompoundScope {
	layers := make([]Scope, len(c.layers)+1)
	layers[0] = s
	copy(layers[1:], c.layers)
	return &CompoundScope{layers: layers}
}

func (c *CompoundScope) Lookup(name string) Result {
	for _, l := range c.layers {
		if l == nil {
			continue
		}
		if r := l.Lookup(name); r.Found || r.Ambiguous {
			return r
		}
	}
	return Result{}
}

// -----------------------------------------------------------------------------

// WildScope composes two or more wildcard import sources. Unlike
// CompoundScope, a name that two sources resolve to different symbols is
// reported ambiguous rather than resolved by priority.
type WildScope struct {
	sources []Scope
}

// NewWildScope builds a wildcard scope over the given sources.
func NewWildScope(sources ...Scope) *WildScope {
	return &WildScope{sources: sources}
}

func (w *WildScope) Lookup(name string) Result {
	var found Result
	hit := false
	for _, s := range w.sources {
		if s == nil {
			continue
		}
		r := s.Lookup(name)
		if !r.Found {
			continue
		}
		if hit && r.Sym != found.Sym {
			return Result{Ambiguous: true}
		}
		found, hit = r, true
	}
	return found
}
