package binder

import (
	"fmt"

	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/env"
	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
	"github.com/cpovirk/turbine/tree"
)

// bindTypes resolves every class's type-parameter bounds, field types,
// and method signatures. Field initializers and annotation arguments are
// left unevaluated; the constant evaluator fills those in afterward.
func (b *Binder) bindTypes() env.Env[sym.ClassSymbol, bound.TypeBoundClass] {
	completers := map[sym.ClassSymbol]env.Completer[sym.ClassSymbol, bound.TypeBoundClass]{}
	for s := range b.sourceClasses {
		completers[s] = func(self *env.Lazy[sym.ClassSymbol, bound.TypeBoundClass], k sym.ClassSymbol) (bound.TypeBoundClass, error) {
			return b.typeCompleter(self, k)
		}
	}
	lazy := env.NewLazy(completers, b.classpathTypeBase())
	for s := range b.sourceClasses {
		lazy.Get(s)
	}
	return lazy
}

func (b *Binder) typeCompleter(self *env.Lazy[sym.ClassSymbol, bound.TypeBoundClass], s sym.ClassSymbol) (bound.TypeBoundClass, error) {
	hc, _ := b.headerEnv.Get(s)
	sh, ok := hc.(*bound.SourceHeaderBoundClass)
	if !ok {
		sh = &bound.SourceHeaderBoundClass{SourceBoundClass: b.sourceClasses[s]}
	}
	sc := sh.SourceBoundClass
	ctx := sc.Source.Context()
	us := b.unitScopes[b.unitOf[s]]
	scope := b.composeScope(s, us, b.headerEnv)
	tv := b.tyVarLookup(s, nil)

	tb := &bound.SourceTypeBoundClass{
		SourceHeaderBoundClass: sh,
		Bounds:                 map[sym.TyVarSymbol][]tipe.Type{},
	}

	for i, tp := range sc.Decl.TyParams {
		var bounds []tipe.Type
		for _, use := range tp.Bounds {
			bounds = append(bounds, b.resolveTypeUse(use, scope, tv, ctx))
		}
		tb.Bounds[sh.TyParamSyms[i]] = bounds
	}

	for _, m := range sc.Decl.Members {
		switch mem := m.(type) {
		case *tree.FieldDecl:
			tb.FieldInfos = append(tb.FieldInfos, &bound.FieldInfo{
				Sym:       sym.FieldSymbol{Owner: s, Name: mem.Name},
				Access:    mem.Mods,
				Type:      b.resolveTypeUse(mem.Type, scope, tv, ctx),
				Decl:      mem,
				DeclAnnos: b.resolveAnnos(mem.Annos, scope, ctx),
			})
		case *tree.MethodDecl:
			tb.MethodInfos = append(tb.MethodInfos, b.bindMethod(s, mem, scope, tv, ctx))
		}
	}

	tb.Annos = b.resolveAnnos(sc.Decl.Annos, scope, ctx)

	b.result[s] = tb
	return tb, nil
}

func (b *Binder) bindMethod(s sym.ClassSymbol, mem *tree.MethodDecl, scope lookup.Scope, classTv tyVarLookup, ctx *report.CompilationContext) *bound.MethodInfo {
	methodSym := sym.MethodSymbol{Owner: s, Name: mem.Name, Descriptor: fmt.Sprintf("#%d", len(mem.Params))}

	mi := &bound.MethodInfo{Sym: methodSym, Access: mem.Mods, Decl: mem}
	for _, tp := range mem.TyParams {
		mi.TyParams = append(mi.TyParams, sym.TyVarSymbol{Owner: methodSym, Name: tp.Name})
	}

	methodTv := func(name string) (sym.TyVarSymbol, bool) {
		for _, tp := range mi.TyParams {
			if tp.Name == name {
				return tp, true
			}
		}
		return classTv(name)
	}

	mi.TyParamBounds = map[sym.TyVarSymbol][]tipe.Type{}
	for i, tp := range mem.TyParams {
		var bounds []tipe.Type
		for _, use := range tp.Bounds {
			bounds = append(bounds, b.resolveTypeUse(use, scope, methodTv, ctx))
		}
		mi.TyParamBounds[mi.TyParams[i]] = bounds
	}

	for _, p := range mem.Params {
		mi.Params = append(mi.Params, bound.ParamInfo{
			Name:  p.Name,
			Type:  b.resolveTypeUse(p.Type, scope, methodTv, ctx),
			Annos: b.resolveAnnos(p.Annos, scope, ctx),
		})
	}
	mi.Return = b.resolveTypeUse(mem.Return, scope, methodTv, ctx)
	mi.ReturnDeclAnnos = b.resolveAnnos(mem.ReturnAnnos, scope, ctx)
	for _, th := range mem.Thrown {
		mi.Thrown = append(mi.Thrown, b.resolveTypeUse(th, scope, methodTv, ctx))
	}
	return mi
}
