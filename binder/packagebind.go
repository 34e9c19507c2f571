package binder

import (
	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/env"
	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tree"
)

// rootNamespacePackage is the implicit wildcard import every unit gets
// for free, lowest priority of the wildcard tiers.
var rootNamespacePackage = []string{"lang"}

// unitScope holds the per-unit lookup-chain components built by
// packageBind. They stay separate, rather than collapsing into one
// pre-composed Scope, because the "enclosing class members" tier has to
// be re-inserted at a different priority for each class in the unit
// (tier 2 sits between the explicit imports and same-package tiers).
type unitScope struct {
	imports       lookup.Scope
	samePackage   lookup.Scope
	wildcards     lookup.Scope
	rootNamespace lookup.Scope
	memberImports *lookup.MemberImportIndex
}

// packageBind builds each compilation unit's lookup chain: explicit
// imports, same-package classes, on-demand wildcard imports, and the
// implicit root-namespace wildcard.
func (b *Binder) packageBind(units []*tree.CompUnit) {
	for _, u := range units {
		ctx := u.Source.Context()

		resolveType := func(path []string, pos *report.TextPosition) (sym.ClassSymbol, bool) {
			return b.resolveName(path, nil, pos, ctx)
		}
		memberScope := func(owner sym.ClassSymbol) lookup.Scope {
			if sc, ok := b.sourceClasses[owner]; ok {
				return lookup.MapScope(sc.Children)
			}
			return lookup.MapScope{}
		}

		us := &unitScope{
			imports:       lookup.BuildImportIndex(b.rp, ctx, u.Imports, resolveType),
			wildcards:     lookup.BuildWildImportIndex(b.tli, u.Imports, resolveType, memberScope),
			rootNamespace: b.tli.LookupPackage(rootNamespacePackage),
			memberImports: lookup.BuildMemberImportIndex(u.Imports, resolveType),
		}
		if u.Pkg != nil {
			us.samePackage = b.tli.LookupPackage(u.Pkg.Name)
		}
		b.unitScopes[u] = us

		for _, s := range b.unitTop[u] {
			b.wrapPackageBound(s, us)
		}
	}
}

func (b *Binder) wrapPackageBound(s sym.ClassSymbol, us *unitScope) {
	sc := b.sourceClasses[s]
	b.packageBound[s] = &bound.PackageSourceBoundClass{
		SourceBoundClass: sc,
		Scope:            b.composeScope(s, us, nil),
		MemberImports:    us.memberImports,
	}
	for _, child := range sc.Children {
		b.wrapPackageBound(child, us)
	}
}

// composeScope assembles the full, correctly prioritized lookup chain
// for a use appearing inside s's declaration: explicit imports rank
// highest, then s's enclosing-class members (including inherited member
// classes, if headerEnv is available), then same-package classes, then
// wildcard imports, then the implicit root-namespace wildcard.
func (b *Binder) composeScope(s sym.ClassSymbol, us *unitScope, headerEnv env.Env[sym.ClassSymbol, bound.HeaderBoundClass]) lookup.Scope {
	cs := lookup.NewCompoundScope(us.rootNamespace).
		Append(us.wildcards).
		Append(us.samePackage).
		Append(b.enclosingScope(s, headerEnv)).
		Append(us.imports)
	return cs
}

// enclosingScope collects the member classes of every class lexically
// enclosing s, innermost first, including each enclosing class's
// inherited member classes when headerEnv can supply its superclass
// chain.
func (b *Binder) enclosingScope(s sym.ClassSymbol, headerEnv env.Env[sym.ClassSymbol, bound.HeaderBoundClass]) lookup.Scope {
	m := lookup.MapScope{}
	sc, ok := b.sourceClasses[s]
	if !ok || !sc.HasOwner {
		return m
	}
	cur := sc.Owner
	for {
		b.collectMemberClasses(cur, headerEnv, m)
		owner, ok := b.sourceClasses[cur]
		if !ok || !owner.HasOwner {
			break
		}
		cur = owner.Owner
	}
	return m
}

func (b *Binder) collectMemberClasses(owner sym.ClassSymbol, headerEnv env.Env[sym.ClassSymbol, bound.HeaderBoundClass], into lookup.MapScope) {
	seen := map[sym.ClassSymbol]bool{}
	var walk func(c sym.ClassSymbol)
	walk = func(c sym.ClassSymbol) {
		if c.IsZero() || seen[c] {
			return
		}
		seen[c] = true
		if sc, ok := b.sourceClasses[c]; ok {
			for name, child := range sc.Children {
				if _, exists := into[name]; !exists {
					into[name] = child
				}
			}
		}
		if headerEnv == nil {
			return
		}
		hc, ok := headerEnv.Get(c)
		if !ok {
			return
		}
		if sup, hasSup := hc.Super(); hasSup {
			walk(sup)
		}
		for _, iface := range hc.Interfaces() {
			walk(iface)
		}
	}
	walk(owner)
}
