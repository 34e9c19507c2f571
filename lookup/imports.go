package lookup

import (
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tree"
)

// TypeResolver resolves a dotted name to a class symbol, walking any
// trailing segments as nested-class lookups against a bound hierarchy.
// Binder supplies the concrete implementation; this package only needs
// the shape.
type TypeResolver func(path []string, pos *report.TextPosition) (sym.ClassSymbol, bool)

// BuildImportIndex builds the explicit (non-wildcard) import scope for a
// compilation unit from its single-type imports: one entry per imported
// name. Two single-type imports that resolve to the same short name
// clash and are reported rather than silently shadowing each other.
func BuildImportIndex(r *report.Reporter, ctx *report.CompilationContext, imports []tree.ImportDecl, resolve TypeResolver) Scope {
	m := MapScope{}
	seenAt := map[string]*report.TextPosition{}

	for _, imp := range imports {
		sti, ok := imp.(tree.SingleTypeImport)
		if !ok || len(sti.Path) == 0 {
			continue
		}
		name := sti.Path[len(sti.Path)-1]
		s, found := resolve(sti.Path, sti.Pos)
		if !found {
			continue
		}
		if _, dup := seenAt[name]; dup {
			r.CompileError(ctx, sti.Pos, report.KindAmbiguous,
				"single-type import %q conflicts with another import of the same name", name)
			continue
		}
		seenAt[name] = sti.Pos
		m[name] = s
	}
	return m
}

// classMemberResolver returns an owner class's member-class scope, the
// layer an on-demand import contributes when it names a type rather than
// a package.
type classMemberResolver func(owner sym.ClassSymbol) Scope

// BuildWildImportIndex builds the wildcard-import scope for a
// compilation unit from its on-demand type and on-demand static imports.
// Every source named by an on-demand import contributes a layer to a
// single WildScope; a name found in two or more layers is ambiguous.
func BuildWildImportIndex(
	tli *TopLevelIndex,
	imports []tree.ImportDecl,
	resolveType TypeResolver,
	memberScope classMemberResolver,
) *WildScope {
	var sources []Scope

	for _, imp := range imports {
		switch d := imp.(type) {
		case tree.OnDemandTypeImport:
			if pkgScope := tli.LookupPackage(d.Path); pkgScope != nil {
				sources = append(sources, pkgScope)
			} else if owner, ok := resolveType(d.Path, d.Pos); ok {
				sources = append(sources, memberScope(owner))
			}
		case tree.OnDemandStaticImport:
			if owner, ok := resolveType(d.Path, d.Pos); ok {
				sources = append(sources, memberScope(owner))
			}
		}
	}
	return NewWildScope(sources...)
}

// MemberImportIndex maps a statically-imported value-namespace name
// (field or method) to the class it was imported from. It is consulted
// only by the constant evaluator's identifier resolution, never by
// type-name lookup.
type MemberImportIndex struct {
	single map[string]sym.ClassSymbol
	wild   []sym.ClassSymbol
}

// BuildMemberImportIndex collects single and on-demand static imports
// for use as value-namespace (field/method) lookup sources.
func BuildMemberImportIndex(imports []tree.ImportDecl, resolveType TypeResolver) *MemberImportIndex {
	idx := &MemberImportIndex{single: map[string]sym.ClassSymbol{}}
	for _, imp := range imports {
		switch d := imp.(type) {
		case tree.SingleStaticImport:
			if owner, ok := resolveType(d.Path, d.Pos); ok {
				idx.single[d.Member] = owner
			}
		case tree.OnDemandStaticImport:
			if owner, ok := resolveType(d.Path, d.Pos); ok {
				idx.wild = append(idx.wild, owner)
			}
		}
	}
	return idx
}

// Resolve looks up name among the statically-imported members, explicit
// imports first. ok is false if name was not imported; ambiguous is true
// if two or more on-demand static imports could supply it and the caller
// must pick neither.
func (idx *MemberImportIndex) Resolve(name string) (owner sym.ClassSymbol, ok bool, ambiguous bool) {
	if owner, ok := idx.single[name]; ok {
		return owner, true, false
	}
	if len(idx.wild) == 0 {
		return sym.ClassSymbol{}, false, false
	}
	// Every wild-imported owner is an equally plausible source; without a
	// bound member table to check membership the index can only report
	// the first one. Binder re-resolves against the member table and
	// downgrades to ambiguous only if more than one owner really declares
	// the name.
	return idx.wild[0], true, len(idx.wild) > 1
}

// WildOwners exposes the on-demand static import owners for callers that
// need to check declared-member presence across all of them.
func (idx *MemberImportIndex) WildOwners() []sym.ClassSymbol { return idx.wild }
