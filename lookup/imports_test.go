package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tree"
)

func resolverFor(m map[string]sym.ClassSymbol) TypeResolver {
	return func(path []string, pos *report.TextPosition) (sym.ClassSymbol, bool) {
		s, ok := m[path[len(path)-1]]
		return s, ok
	}
}

func TestBuildImportIndex_ResolvesEachSingleTypeImport(t *testing.T) {
	resolve := resolverFor(map[string]sym.ClassSymbol{
		"Widget": sym.NewClassSymbol("a/Widget"),
	})
	imports := []tree.ImportDecl{
		tree.SingleTypeImport{Path: []string{"a", "Widget"}},
	}
	rp := report.New(report.LogLevelSilent)

	scope := BuildImportIndex(rp, nil, imports, resolve)
	r := scope.Lookup("Widget")
	assert.True(t, r.Found)
	assert.Equal(t, sym.NewClassSymbol("a/Widget"), r.Sym)
}

func TestBuildImportIndex_UnresolvedImportIsSkipped(t *testing.T) {
	resolve := resolverFor(map[string]sym.ClassSymbol{})
	imports := []tree.ImportDecl{
		tree.SingleTypeImport{Path: []string{"a", "Missing"}},
	}
	rp := report.New(report.LogLevelSilent)

	scope := BuildImportIndex(rp, nil, imports, resolve)
	r := scope.Lookup("Missing")
	assert.False(t, r.Found)
}

func TestBuildImportIndex_DuplicateNameReportsAndKeepsFirst(t *testing.T) {
	resolve := resolverFor(map[string]sym.ClassSymbol{
		"Widget": sym.NewClassSymbol("a/Widget"),
	})
	imports := []tree.ImportDecl{
		tree.SingleTypeImport{Path: []string{"a", "Widget"}, Pos: &report.TextPosition{}},
		tree.SingleTypeImport{Path: []string{"b", "Widget"}, Pos: &report.TextPosition{}},
	}
	rp := report.New(report.LogLevelSilent)

	scope := BuildImportIndex(rp, &report.CompilationContext{}, imports, resolve)
	r := scope.Lookup("Widget")
	assert.True(t, r.Found)
	assert.Equal(t, sym.NewClassSymbol("a/Widget"), r.Sym, "the first import of a clashing name wins")
	assert.Equal(t, 1, rp.ErrorCount(), "the second import of the name is reported")
}

func TestBuildWildImportIndex_CombinesPackageAndMemberSources(t *testing.T) {
	tli := NewTopLevelIndex()
	tli.Insert(sym.NewClassSymbol("a/Gadget"))

	ownerSym := sym.NewClassSymbol("b/Holder")
	resolve := resolverFor(map[string]sym.ClassSymbol{"Holder": ownerSym})
	memberScope := func(owner sym.ClassSymbol) Scope {
		return MapScope{"Nested": sym.NewClassSymbol(owner.BinaryName() + "$Nested")}
	}

	imports := []tree.ImportDecl{
		tree.OnDemandTypeImport{Path: []string{"a"}},
		tree.OnDemandTypeImport{Path: []string{"b", "Holder"}},
	}

	ws := BuildWildImportIndex(tli, imports, resolve, memberScope)

	r := ws.Lookup("Gadget")
	assert.True(t, r.Found)

	r = ws.Lookup("Nested")
	assert.True(t, r.Found)
}

func TestMemberImportIndex_SingleStaticImportWins(t *testing.T) {
	owner := sym.NewClassSymbol("a/Consts")
	resolve := resolverFor(map[string]sym.ClassSymbol{"Consts": owner})
	imports := []tree.ImportDecl{
		tree.SingleStaticImport{Path: []string{"a", "Consts"}, Member: "MAX"},
	}

	idx := BuildMemberImportIndex(imports, resolve)
	o, ok, ambiguous := idx.Resolve("MAX")
	assert.True(t, ok)
	assert.False(t, ambiguous)
	assert.Equal(t, owner, o)
}

func TestMemberImportIndex_UnimportedNameMisses(t *testing.T) {
	idx := BuildMemberImportIndex(nil, resolverFor(nil))
	_, ok, _ := idx.Resolve("MISSING")
	assert.False(t, ok)
}

func TestMemberImportIndex_TwoOnDemandStaticImportsAreConservativelyAmbiguous(t *testing.T) {
	a := sym.NewClassSymbol("a/Consts")
	b := sym.NewClassSymbol("b/Consts")
	resolve := resolverFor(map[string]sym.ClassSymbol{"Consts": a}) // first wins for both paths below
	imports := []tree.ImportDecl{
		tree.OnDemandStaticImport{Path: []string{"a", "Consts"}},
		tree.OnDemandStaticImport{Path: []string{"b", "Consts"}},
	}
	idx := BuildMemberImportIndex(imports, resolve)

	owners := idx.WildOwners()
	assert.Len(t, owners, 2)

	_, ok, ambiguous := idx.Resolve("ANY")
	assert.True(t, ok)
	assert.True(t, ambiguous, "the index alone cannot tell whether both owners really declare the name")
	_ = b
}

func TestMemberImportIndex_SingleOnDemandStaticImportIsNotAmbiguous(t *testing.T) {
	owner := sym.NewClassSymbol("a/Consts")
	resolve := resolverFor(map[string]sym.ClassSymbol{"Consts": owner})
	imports := []tree.ImportDecl{
		tree.OnDemandStaticImport{Path: []string{"a", "Consts"}},
	}
	idx := BuildMemberImportIndex(imports, resolve)

	o, ok, ambiguous := idx.Resolve("ANY")
	assert.True(t, ok)
	assert.False(t, ambiguous)
	assert.Equal(t, owner, o)
}
