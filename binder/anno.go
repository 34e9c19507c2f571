package binder

import (
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
	"github.com/cpovirk/turbine/tree"
)

// targetAnnotationName is the binary name of the meta-annotation that
// declares an annotation type's own applicable targets.
const targetAnnotationName = "lang/annotation/Target"

// disambiguateAnnotations splits each declaration-position annotation
// list into the subset that stays a declaration annotation and the
// subset that also applies to the declaration's type use, based on the
// annotation type's own @Target. An annotation whose targets name neither
// the declaration position nor TYPE_USE stays a declaration annotation.
// An annotation type whose target set cannot be determined defaults to
// declaration-annotation only, and a diagnostic is produced.
func (b *Binder) disambiguateAnnotations() {
	for _, tb := range b.result {
		ctx := tb.Source.Context()
		for _, fi := range tb.FieldInfos {
			var pos *report.TextPosition
			if fi.Decl != nil {
				pos = fi.Decl.Pos
			}
			fi.DeclAnnos, fi.TypeAnnos = b.splitAnnos(fi.DeclAnnos, tree.TargetField, ctx, pos)
		}
		for _, mi := range tb.MethodInfos {
			var pos *report.TextPosition
			if mi.Decl != nil {
				pos = mi.Decl.Pos
			}
			mi.ReturnDeclAnnos, mi.ReturnTypeAnnos = b.splitAnnos(mi.ReturnDeclAnnos, tree.TargetMethod, ctx, pos)
		}
	}
}

func (b *Binder) splitAnnos(annos []tipe.Annotation, declTarget tree.TargetKind, ctx *report.CompilationContext, pos *report.TextPosition) (decl, typ []tipe.Annotation) {
	for _, a := range annos {
		targets := b.metaTargetsOf(a.Sym)
		if targets == nil {
			decl = append(decl, a)
			b.rp.CompileWarning(ctx, pos, report.KindAmbiguous,
				"cannot determine applicable targets of annotation %s; defaulting to declaration annotation", a.Sym)
			continue
		}
		appliesDecl, appliesType := false, false
		for _, t := range targets {
			if t == declTarget {
				appliesDecl = true
			}
			if t == tree.TargetTypeUse {
				appliesType = true
			}
		}
		if !appliesDecl && !appliesType {
			appliesDecl = true
		}
		if appliesDecl {
			decl = append(decl, a)
		}
		if appliesType {
			typ = append(typ, a)
		}
	}
	return decl, typ
}

// metaTargetsOf resolves an annotation type's own @Target meta-annotation.
// A source-declared annotation type already has its target set resolved
// by the parser (TyDecl.MetaTargets); a classpath-declared one carries no
// such field, so its own decoded annotations are searched for @Target
// instead. nil means indeterminate either way: no @Target was declared,
// or the annotation type is neither a source class nor resolvable on the
// classpath.
func (b *Binder) metaTargetsOf(s sym.ClassSymbol) []tree.TargetKind {
	if sc, ok := b.sourceClasses[s]; ok {
		if sc.Decl == nil {
			return nil
		}
		return sc.Decl.MetaTargets
	}
	tc, ok := b.typeEnv.Get(s)
	if !ok {
		return nil
	}
	for _, a := range tc.Annotations() {
		if a.Sym.Name() != targetAnnotationName {
			continue
		}
		return decodeTargetArg(a.Args["value"])
	}
	return nil
}

// decodeTargetArg interprets a decoded @Target(value) argument, which is
// either a single element-type name or an array of them.
func decodeTargetArg(raw interface{}) []tree.TargetKind {
	switch v := raw.(type) {
	case string:
		if tk, ok := targetKindOf(v); ok {
			return []tree.TargetKind{tk}
		}
		return nil
	case []interface{}:
		var out []tree.TargetKind
		for _, e := range v {
			if name, ok := e.(string); ok {
				if tk, ok := targetKindOf(name); ok {
					out = append(out, tk)
				}
			}
		}
		return out
	default:
		return nil
	}
}

func targetKindOf(name string) (tree.TargetKind, bool) {
	switch name {
	case "TYPE":
		return tree.TargetTypeDecl, true
	case "FIELD":
		return tree.TargetField, true
	case "METHOD":
		return tree.TargetMethod, true
	case "PARAMETER":
		return tree.TargetParameter, true
	case "TYPE_USE":
		return tree.TargetTypeUse, true
	default:
		return 0, false
	}
}

// canonicalize makes every enclosing level of every ClassType explicit.
// A type use can resolve straight to a nested class symbol without ever
// writing its enclosing names (an inherited member class referenced by
// its short name, for instance), leaving the ClassType's segment chain
// starting below the outermost declared class. This walks each such
// chain's owner links and prepends the missing segments so consumers
// never have to re-derive ownership themselves.
func (b *Binder) canonicalize() {
	for _, tb := range b.result {
		for _, fi := range tb.FieldInfos {
			fi.Type = b.canonicalizeType(fi.Type)
		}
		for _, mi := range tb.MethodInfos {
			mi.Return = b.canonicalizeType(mi.Return)
			for i := range mi.Params {
				mi.Params[i].Type = b.canonicalizeType(mi.Params[i].Type)
			}
			for i := range mi.Thrown {
				mi.Thrown[i] = b.canonicalizeType(mi.Thrown[i])
			}
			for tv, bounds := range mi.TyParamBounds {
				for i := range bounds {
					bounds[i] = b.canonicalizeType(bounds[i])
				}
				mi.TyParamBounds[tv] = bounds
			}
		}
		for tv, bounds := range tb.Bounds {
			for i := range bounds {
				bounds[i] = b.canonicalizeType(bounds[i])
			}
			tb.Bounds[tv] = bounds
		}
	}
}

func (b *Binder) canonicalizeType(t tipe.Type) tipe.Type {
	switch v := t.(type) {
	case *tipe.ClassType:
		return b.canonicalizeClassType(v)
	case *tipe.ArrayType:
		v.Element = b.canonicalizeType(v.Element)
		return v
	case *tipe.WildcardType:
		if v.Bound != nil {
			v.Bound = b.canonicalizeType(v.Bound)
		}
		return v
	default:
		return t
	}
}

func (b *Binder) canonicalizeClassType(c *tipe.ClassType) *tipe.ClassType {
	if len(c.Segments) == 0 {
		return c
	}
	for i := range c.Segments {
		for j, arg := range c.Segments[i].TypeArgs {
			c.Segments[i].TypeArgs[j] = b.canonicalizeType(arg)
		}
	}

	var prefix []tipe.ClassSegment
	cur := c.Segments[0].Sym
	for {
		owner, has := b.ownerOf(cur)
		if !has {
			break
		}
		prefix = append([]tipe.ClassSegment{{Sym: owner}}, prefix...)
		cur = owner
	}
	if len(prefix) == 0 {
		return c
	}
	c.Segments = append(prefix, c.Segments...)
	return c
}

func (b *Binder) ownerOf(s sym.ClassSymbol) (sym.ClassSymbol, bool) {
	if b.headerEnv == nil {
		return sym.ClassSymbol{}, false
	}
	if hc, ok := b.headerEnv.Get(s); ok {
		return hc.Owner()
	}
	return sym.ClassSymbol{}, false
}
