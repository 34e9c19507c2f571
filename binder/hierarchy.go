package binder

import (
	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/env"
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
)

// RootObjectName is the binary name of the implicit root supertype every
// class (and interface) without an explicit superclass extends.
const RootObjectName = "lang/Object"

// RootEnumName is the binary name of the implicit supertype every enum
// extends; enums cannot write their own extends clause.
const RootEnumName = "lang/Enum"

// RootAnnotationName is the binary name of the annotation-root interface
// every annotation type both extends and implicitly implements.
const RootAnnotationName = "lang/annotation/Annotation"

// bindHierarchy builds the lazy environment that completes every source
// class's HeaderBoundClass view on demand, then checks the resulting
// graph for supertype cycles.
func (b *Binder) bindHierarchy() env.Env[sym.ClassSymbol, bound.HeaderBoundClass] {
	completers := map[sym.ClassSymbol]env.Completer[sym.ClassSymbol, bound.HeaderBoundClass]{}
	for s := range b.sourceClasses {
		completers[s] = func(self *env.Lazy[sym.ClassSymbol, bound.HeaderBoundClass], k sym.ClassSymbol) (bound.HeaderBoundClass, error) {
			return b.headerCompleter(self, k)
		}
	}
	lazy := env.NewLazy(completers, b.classpathHeaderBase())
	b.headerEnv = lazy

	for s := range b.sourceClasses {
		if _, err := lazy.GetOrError(s); err != nil {
			if _, isCycle := err.(*env.CycleError[sym.ClassSymbol]); isCycle {
				continue // surfaced by checkHierarchyCycles with a proper diagnostic
			}
		}
	}
	b.checkHierarchyCycles(lazy)
	return lazy
}

func (b *Binder) headerCompleter(self *env.Lazy[sym.ClassSymbol, bound.HeaderBoundClass], s sym.ClassSymbol) (bound.HeaderBoundClass, error) {
	sc := b.sourceClasses[s]
	ctx := sc.Source.Context()
	us := b.unitScopes[b.unitOf[s]]
	scope := b.composeScope(s, us, self)

	h := &bound.SourceHeaderBoundClass{SourceBoundClass: sc}

	for _, tp := range sc.Decl.TyParams {
		h.TyParamSyms = append(h.TyParamSyms, sym.TyVarSymbol{Owner: s, Name: tp.Name})
	}
	tv := b.tyVarLookup(s, nil)

	switch {
	case sc.Decl.Extends != nil:
		if cs := classSymOf(b.resolveTypeUse(*sc.Decl.Extends, scope, tv, ctx)); !cs.IsZero() {
			h.SuperSym, h.HasSuper = cs, true
		}
	case sc.Kind == sym.KindEnum:
		h.SuperSym, h.HasSuper = sym.NewClassSymbol(RootEnumName), true
	case sc.Kind == sym.KindAnnotation:
		h.SuperSym, h.HasSuper = sym.NewClassSymbol(RootAnnotationName), true
	case s.Name() != RootObjectName:
		// Classes and interfaces alike implicitly extend the root type;
		// interfaces never write an extends clause of their own.
		h.SuperSym, h.HasSuper = sym.NewClassSymbol(RootObjectName), true
	}

	for _, impl := range sc.Decl.Implements {
		if cs := classSymOf(b.resolveTypeUse(impl, scope, tv, ctx)); !cs.IsZero() {
			h.InterfaceSyms = append(h.InterfaceSyms, cs)
		}
	}
	if sc.Kind == sym.KindAnnotation {
		h.InterfaceSyms = append(h.InterfaceSyms, sym.NewClassSymbol(RootAnnotationName))
	}

	return h, nil
}

// tyVarLookup resolves a name against the type parameters visible at s's
// declaration: s's own, then each further enclosing class's, outermost
// last. extra, if given, is checked first (a method's own parameters).
func (b *Binder) tyVarLookup(s sym.ClassSymbol, extra []sym.TyVarSymbol) tyVarLookup {
	return func(name string) (sym.TyVarSymbol, bool) {
		for _, tp := range extra {
			if tp.Name == name {
				return tp, true
			}
		}
		cur := s
		for {
			sc, ok := b.sourceClasses[cur]
			if !ok {
				return sym.TyVarSymbol{}, false
			}
			for _, tp := range sc.Decl.TyParams {
				if tp.Name == name {
					return sym.TyVarSymbol{Owner: cur, Name: name}, true
				}
			}
			if !sc.HasOwner {
				return sym.TyVarSymbol{}, false
			}
			cur = sc.Owner
		}
	}
}

// checkHierarchyCycles walks the supertype graph with a three-color
// marking (white: unvisited, grey: on the current path, black: finished)
// and reports a diagnostic the first time a grey node is revisited.
// Consumers elsewhere guard their own supertype walks with a visited
// set, so a reported cycle never causes an infinite loop downstream.
func (b *Binder) checkHierarchyCycles(headerEnv env.Env[sym.ClassSymbol, bound.HeaderBoundClass]) {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	colors := map[sym.ClassSymbol]int{}

	var visit func(c sym.ClassSymbol)
	visit = func(c sym.ClassSymbol) {
		switch colors[c] {
		case black:
			return
		case grey:
			sc, ok := b.sourceClasses[c]
			if ok {
				b.rp.CompileError(sc.Source.Context(), sc.Decl.Pos, report.KindCyclicHierarchy,
					"cyclic hierarchy: %s is its own supertype, directly or transitively", c)
			}
			return
		}
		colors[c] = grey
		if hc, ok := headerEnv.Get(c); ok {
			if sup, has := hc.Super(); has {
				visit(sup)
			}
			for _, iface := range hc.Interfaces() {
				visit(iface)
			}
		}
		colors[c] = black
	}

	for s := range b.sourceClasses {
		visit(s)
	}
}
