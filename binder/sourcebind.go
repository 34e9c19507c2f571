package binder

import (
	"strings"

	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tree"
)

// sourceBind allocates a symbol for every declared class, top-level and
// nested, and registers each top-level symbol with the top-level index.
// Nothing here looks at any other compilation unit; a class's own
// declaration and its enclosing-class chain are all sourceBind needs.
func (b *Binder) sourceBind(units []*tree.CompUnit) {
	for _, u := range units {
		var pkgPrefix string
		if u.Pkg != nil {
			pkgPrefix = strings.Join(u.Pkg.Name, "/")
		}
		decls := u.Decls
		if u.Pkg != nil && len(u.Pkg.Annos) > 0 {
			decls = append(append([]*tree.TyDecl{}, u.Decls...), packageInfoDecl(u.Pkg))
		}
		for _, decl := range decls {
			s := b.bindTyDecl(decl, pkgPrefix, sym.ClassSymbol{}, false, u)
			b.tli.Insert(s)
			b.unitTop[u] = append(b.unitTop[u], s)
		}
	}
}

// packageInfoDecl fakes up the synthetic type declaration that carries a
// package declaration's own annotations, the way a package-info.java
// file's sole class would: an empty, synthetic interface named
// "package-info".
func packageInfoDecl(pkg *tree.PkgDecl) *tree.TyDecl {
	return &tree.TyDecl{
		Name:  "package-info",
		Kind:  sym.KindInterface,
		Mods:  tree.AccSynthetic,
		Annos: pkg.Annos,
		Pos:   pkg.Pos,
	}
}

func (b *Binder) bindTyDecl(decl *tree.TyDecl, pkgPrefix string, owner sym.ClassSymbol, hasOwner bool, u *tree.CompUnit) sym.ClassSymbol {
	var name string
	switch {
	case hasOwner:
		name = owner.Name() + "$" + decl.Name
	case pkgPrefix != "":
		name = pkgPrefix + "/" + decl.Name
	default:
		name = decl.Name
	}
	s := sym.NewClassSymbol(name)

	sb := &bound.SourceBoundClass{
		Sym:      s,
		Decl:     decl,
		Owner:    owner,
		HasOwner: hasOwner,
		Kind:     decl.Kind,
		Access:   decl.Mods,
		Children: map[string]sym.ClassSymbol{},
		Source:   u.Source,
	}
	b.sourceClasses[s] = sb
	b.unitOf[s] = u

	for _, m := range decl.Members {
		if nested, ok := m.(*tree.TyDecl); ok {
			childSym := b.bindTyDecl(nested, pkgPrefix, s, true, u)
			sb.Children[nested.Name] = childSym
		}
	}
	return s
}
