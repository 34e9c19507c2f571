package binder

import (
	"strings"

	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
	"github.com/cpovirk/turbine/tree"
)

// tyVarLookup resolves a bare name to a type-variable symbol within the
// generic scopes enclosing the point of use: a method's own type
// parameters (if any), then its owning class's, then each further
// enclosing class's, outermost last.
type tyVarLookup func(name string) (sym.TyVarSymbol, bool)

// memberClass resolves a nested-class short name against an already
// resolved owner. Source owners consult their declared children; a
// classpath owner's nested classes are addressed directly by
// constructing the binary name, since scanned classpath records carry no
// enclosing-class back-reference.
func (b *Binder) memberClass(owner sym.ClassSymbol, name string) (sym.ClassSymbol, bool) {
	if sc, ok := b.sourceClasses[owner]; ok {
		child, ok := sc.Children[name]
		return child, ok
	}
	nested := sym.NewClassSymbol(owner.Name() + "$" + name)
	if b.classExists(nested) {
		return nested, true
	}
	return sym.ClassSymbol{}, false
}

func (b *Binder) classExists(s sym.ClassSymbol) bool {
	if _, ok := b.sourceClasses[s]; ok {
		return true
	}
	if b.classpath != nil && b.classpath.Has(s) {
		return true
	}
	if b.bootclasspath != nil && b.bootclasspath.Has(s) {
		return true
	}
	return false
}

// resolveFirst resolves path[0] against scope (tiers 1-5), falling back
// to a fully-qualified lookup against the top-level index (tier 6) if
// the scope misses entirely. It returns the resolved top-level symbol and
// whatever trailing segments were not consumed.
func (b *Binder) resolveFirst(path []string, scope lookup.Scope, pos *report.TextPosition, ctx *report.CompilationContext) (sym.ClassSymbol, []string, bool) {
	if len(path) == 0 {
		return sym.ClassSymbol{}, nil, false
	}
	if scope != nil {
		r := scope.Lookup(path[0])
		if r.Ambiguous {
			b.rp.CompileError(ctx, pos, report.KindAmbiguous, "%q is ambiguous", path[0])
			return sym.ClassSymbol{}, nil, false
		}
		if r.Found {
			return r.Sym, path[1:], true
		}
	}
	if lr, ok := b.tli.Lookup(path); ok {
		return lr.Sym, lr.Remaining, true
	}
	b.rp.CompileError(ctx, pos, report.KindNotFound, "cannot resolve %q", strings.Join(path, "."))
	return sym.ClassSymbol{}, nil, false
}

// resolveName resolves a full dotted path to a class symbol, walking any
// trailing segments as nested-class lookups.
func (b *Binder) resolveName(path []string, scope lookup.Scope, pos *report.TextPosition, ctx *report.CompilationContext) (sym.ClassSymbol, bool) {
	first, remaining, ok := b.resolveFirst(path, scope, pos, ctx)
	if !ok {
		return sym.ClassSymbol{}, false
	}
	cur := first
	for _, seg := range remaining {
		child, ok := b.memberClass(cur, seg)
		if !ok {
			b.rp.CompileError(ctx, pos, report.KindNotFound, "cannot find nested class %q in %s", seg, cur)
			return sym.ClassSymbol{}, false
		}
		cur = child
	}
	return cur, true
}

// classSymOf extracts the class symbol a resolved type names, if it is a
// class type at all (not a primitive, type variable, array, or error).
func classSymOf(t tipe.Type) sym.ClassSymbol {
	if ct, ok := t.(*tipe.ClassType); ok {
		return ct.Sym()
	}
	return sym.ClassSymbol{}
}

// resolveTypeUse converts a raw syntax-tree type reference into a bound
// tipe.Type, resolving every class and type-variable name it contains.
func (b *Binder) resolveTypeUse(tu tree.TypeUse, scope lookup.Scope, tv tyVarLookup, ctx *report.CompilationContext) tipe.Type {
	switch t := tu.(type) {
	case tree.PrimitiveTypeUse:
		return &tipe.PrimitiveType{Kind: t.Kind, Annos_: b.resolveAnnos(t.Annos, scope, ctx)}
	case tree.VoidTypeUse:
		return tipe.VoidType{}
	case tree.ArrayTypeUse:
		return &tipe.ArrayType{
			Element: b.resolveTypeUse(t.Element, scope, tv, ctx),
			Annos_:  b.resolveAnnos(t.Annos, scope, ctx),
		}
	case tree.WildcardTypeUse:
		var bnd tipe.Type
		if t.Bound != nil {
			bnd = b.resolveTypeUse(t.Bound, scope, tv, ctx)
		}
		return &tipe.WildcardType{BoundKind: t.BoundKind, Bound: bnd, Annos_: b.resolveAnnos(t.Annos, scope, ctx)}
	case tree.ClassOrTyVarUse:
		return b.resolveClassOrTyVar(t, scope, tv, ctx)
	default:
		return &tipe.ErrorType{Name: "<unknown type use>"}
	}
}

func (b *Binder) resolveClassOrTyVar(t tree.ClassOrTyVarUse, scope lookup.Scope, tv tyVarLookup, ctx *report.CompilationContext) tipe.Type {
	if len(t.Segments) == 0 {
		return &tipe.ErrorType{Name: "<empty>"}
	}
	if len(t.Segments) == 1 && len(t.Segments[0].TypeArgs) == 0 {
		if s, ok := tv(t.Segments[0].Name); ok {
			return &tipe.TypeVariableType{Sym: s, Annos_: b.resolveAnnos(t.Segments[0].Annos, scope, ctx)}
		}
	}

	path := make([]string, len(t.Segments))
	for i, seg := range t.Segments {
		path[i] = seg.Name
	}
	pos := t.Segments[0].Pos

	first, remaining, ok := b.resolveFirst(path, scope, pos, ctx)
	if !ok {
		return &tipe.ErrorType{Name: strings.Join(path, ".")}
	}

	consumed := len(path) - len(remaining)
	segs := []tipe.ClassSegment{{
		Sym:      first,
		TypeArgs: b.resolveTypeArgs(t.Segments[0].TypeArgs, scope, tv, ctx),
		Annos_:   b.resolveAnnos(t.Segments[0].Annos, scope, ctx),
	}}

	cur := first
	for i, seg := range remaining {
		child, ok := b.memberClass(cur, seg)
		if !ok {
			idx := consumed + i
			b.rp.CompileError(ctx, t.Segments[idx].Pos, report.KindNotFound, "cannot find nested class %q in %s", seg, cur)
			return &tipe.ErrorType{Name: strings.Join(path, ".")}
		}
		cur = child
		idx := consumed + i
		segs = append(segs, tipe.ClassSegment{
			Sym:      child,
			TypeArgs: b.resolveTypeArgs(t.Segments[idx].TypeArgs, scope, tv, ctx),
			Annos_:   b.resolveAnnos(t.Segments[idx].Annos, scope, ctx),
		})
	}
	return &tipe.ClassType{Segments: segs}
}

func (b *Binder) resolveTypeArgs(args []tree.TypeUse, scope lookup.Scope, tv tyVarLookup, ctx *report.CompilationContext) []tipe.Type {
	if len(args) == 0 {
		return nil
	}
	out := make([]tipe.Type, len(args))
	for i, a := range args {
		out[i] = b.resolveTypeUse(a, scope, tv, ctx)
	}
	return out
}

// resolveAnnos resolves each annotation's type name but leaves its
// argument expressions unevaluated; the constant evaluator substitutes
// evaluated values into these same maps in place once it runs.
func (b *Binder) resolveAnnos(uses []tree.AnnotationUse, scope lookup.Scope, ctx *report.CompilationContext) []tipe.Annotation {
	if len(uses) == 0 {
		return nil
	}
	out := make([]tipe.Annotation, 0, len(uses))
	for _, u := range uses {
		s, ok := b.resolveName(strings.Split(u.Name, "."), scope, u.Pos, ctx)
		if !ok {
			continue
		}
		args := map[string]interface{}{}
		for k, v := range u.Args {
			args[k] = v
		}
		out = append(out, tipe.Annotation{Sym: s, Args: args})
	}
	return out
}
