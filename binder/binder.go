// Package binder orchestrates the full pass pipeline: source binding,
// package binding, hierarchy binding, type binding, constant evaluation,
// type-annotation disambiguation, and canonicalization. Each pass reads
// only what earlier passes published and never mutates it, except for
// the constant evaluator, the annotation disambiguator and the
// canonicalizer, which fill in or rewrite fields the type pass left for
// them (an annotation argument's raw expression, a declaration's
// annotation lists, an implicit enclosing-type segment).
package binder

import (
	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/bytecode"
	"github.com/cpovirk/turbine/env"
	"github.com/cpovirk/turbine/konst"
	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tree"
)

// Binder holds all shared state across one Bind invocation. A fresh
// Binder is created per invocation; nothing here is safe to reuse or
// share across invocations.
type Binder struct {
	rp  *report.Reporter
	tli *lookup.TopLevelIndex

	classpath     *bytecode.ClassPathBinder
	bootclasspath *bytecode.ClassPathBinder

	sourceClasses map[sym.ClassSymbol]*bound.SourceBoundClass
	unitOf        map[sym.ClassSymbol]*tree.CompUnit
	unitTop       map[*tree.CompUnit][]sym.ClassSymbol
	unitScopes    map[*tree.CompUnit]*unitScope
	packageBound  map[sym.ClassSymbol]*bound.PackageSourceBoundClass

	headerEnv env.Env[sym.ClassSymbol, bound.HeaderBoundClass]
	typeEnv   env.Env[sym.ClassSymbol, bound.TypeBoundClass]

	fieldInfo map[sym.FieldSymbol]*bound.FieldInfo
	constEnv  *env.Lazy[sym.FieldSymbol, *konst.Value]

	result map[sym.ClassSymbol]*bound.SourceTypeBoundClass
}

// Result is the outcome of a Bind invocation.
type Result struct {
	Classes map[sym.ClassSymbol]*bound.SourceTypeBoundClass
	OK      bool
}

// Bind runs every pass over units, consulting classpath and
// bootclasspath archives for classes the units themselves don't declare.
// It stops early, returning OK == false, if any pass leaves the reporter
// with recorded errors — later passes assume the bound state they
// consume is already error-free.
func Bind(rp *report.Reporter, units []*tree.CompUnit, bootclasspathArchives, classpathArchives []string) (*Result, error) {
	boot, err := bytecode.NewClassPathBinder(bootclasspathArchives)
	if err != nil {
		return nil, err
	}
	cp, err := bytecode.NewClassPathBinder(classpathArchives)
	if err != nil {
		return nil, err
	}

	b := &Binder{
		rp:            rp,
		tli:           lookup.NewTopLevelIndex(),
		classpath:     cp,
		bootclasspath: boot,
		sourceClasses: map[sym.ClassSymbol]*bound.SourceBoundClass{},
		unitOf:        map[sym.ClassSymbol]*tree.CompUnit{},
		unitTop:       map[*tree.CompUnit][]sym.ClassSymbol{},
		unitScopes:    map[*tree.CompUnit]*unitScope{},
		packageBound:  map[sym.ClassSymbol]*bound.PackageSourceBoundClass{},
		result:        map[sym.ClassSymbol]*bound.SourceTypeBoundClass{},
	}

	b.sourceBind(units)
	if !rp.ShouldProceed() {
		return &Result{OK: false}, nil
	}

	// TopLevelIndex.Insert is first-insert-wins, so source symbols must
	// be registered before either archive: a name declared both in a
	// source unit and on the boot/classpath always resolves to the
	// source symbol.
	boot.Register(b.tli)
	cp.Register(b.tli)

	b.packageBind(units)
	if !rp.ShouldProceed() {
		return &Result{OK: false}, nil
	}

	b.headerEnv = b.bindHierarchy()

	b.typeEnv = b.bindTypes()
	if !rp.ShouldProceed() {
		return &Result{OK: false}, nil
	}

	b.evalConstants()
	b.disambiguateAnnotations()
	b.canonicalize()

	return &Result{Classes: b.result, OK: rp.ShouldProceed()}, nil
}

func (b *Binder) classpathHeaderBase() env.Env[sym.ClassSymbol, bound.HeaderBoundClass] {
	return headerClasspathEnv{b}
}

func (b *Binder) classpathTypeBase() env.Env[sym.ClassSymbol, bound.TypeBoundClass] {
	return typeClasspathEnv{b}
}

type headerClasspathEnv struct{ b *Binder }

func (e headerClasspathEnv) Get(s sym.ClassSymbol) (bound.HeaderBoundClass, bool) {
	if e.b.bootclasspath != nil {
		if bc := e.b.bootclasspath.BoundClass(s); bc != nil {
			return bc, true
		}
	}
	if e.b.classpath != nil {
		if bc := e.b.classpath.BoundClass(s); bc != nil {
			return bc, true
		}
	}
	return nil, false
}

type typeClasspathEnv struct{ b *Binder }

func (e typeClasspathEnv) Get(s sym.ClassSymbol) (bound.TypeBoundClass, bool) {
	if e.b.bootclasspath != nil {
		if bc := e.b.bootclasspath.BoundClass(s); bc != nil {
			return bc, true
		}
	}
	if e.b.classpath != nil {
		if bc := e.b.classpath.BoundClass(s); bc != nil {
			return bc, true
		}
	}
	return nil, false
}
