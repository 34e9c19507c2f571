// Package bound defines the stage-tagged class records the binder
// produces: each pass publishes a richer record than the last, and never
// mutates a record once it has been handed to the next stage. The one
// exception is the final SourceTypeBoundClass, which the last passes fill
// in in place.
package bound

import (
	"github.com/cpovirk/turbine/konst"
	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
	"github.com/cpovirk/turbine/tree"
)

// SourceBoundClass is the first stage: a class symbol tied to its
// declaration, its enclosing class (if nested), and its directly
// declared member classes by short name. Nothing here requires looking
// at any other class.
type SourceBoundClass struct {
	Sym      sym.ClassSymbol
	Decl     *tree.TyDecl
	Owner    sym.ClassSymbol
	HasOwner bool
	Kind     sym.Kind
	Access   tree.AccessFlag
	Children map[string]sym.ClassSymbol
	Source   tree.Source
}

// PackageSourceBoundClass adds the per-unit lexical scope: the composed
// import/member/package/wildcard chain used to resolve every unqualified
// name this class's declaration (and its members') can reference.
type PackageSourceBoundClass struct {
	*SourceBoundClass

	// Scope is the fully composed per-unit lookup chain. The binder
	// package owns its construction, since building it requires walking
	// sibling classes and import declarations.
	Scope lookup.Scope

	MemberImports *lookup.MemberImportIndex
}

// HeaderBoundClass is implemented by both classpath-derived classes
// (bytecode package) and source classes once the hierarchy pass has run:
// it is the common surface the hierarchy and type passes need regardless
// of where a referenced class came from.
type HeaderBoundClass interface {
	ClassKind() sym.Kind
	Super() (sym.ClassSymbol, bool)
	Interfaces() []sym.ClassSymbol
	TyParams() []sym.TyVarSymbol
	Owner() (sym.ClassSymbol, bool)
}

// SourceHeaderBoundClass is the source-derived HeaderBoundClass: the
// superclass and superinterfaces have been resolved to symbols (not yet
// validated acyclic; that is the hierarchy pass's job one level up), and
// every declared type parameter has its own symbol.
type SourceHeaderBoundClass struct {
	*SourceBoundClass

	SuperSym      sym.ClassSymbol
	HasSuper      bool
	InterfaceSyms []sym.ClassSymbol
	TyParamSyms   []sym.TyVarSymbol
}

func (h *SourceHeaderBoundClass) ClassKind() sym.Kind            { return h.Kind }
func (h *SourceHeaderBoundClass) Super() (sym.ClassSymbol, bool) { return h.SuperSym, h.HasSuper }
func (h *SourceHeaderBoundClass) Interfaces() []sym.ClassSymbol  { return h.InterfaceSyms }
func (h *SourceHeaderBoundClass) TyParams() []sym.TyVarSymbol    { return h.TyParamSyms }
func (h *SourceHeaderBoundClass) Owner() (sym.ClassSymbol, bool) { return h.SourceBoundClass.Owner, h.HasOwner }

// TypeBoundClass extends HeaderBoundClass with everything the type pass
// adds: type parameter bounds, field and method signatures, and
// annotations. Implemented by both classpath classes and
// SourceTypeBoundClass.
type TypeBoundClass interface {
	HeaderBoundClass
	TyParamBounds() map[sym.TyVarSymbol][]tipe.Type
	Fields() []*FieldInfo
	Methods() []*MethodInfo
	Annotations() []tipe.Annotation
}

// SourceTypeBoundClass is the source-derived TypeBoundClass, and also the
// final stage: once the constant evaluator, annotation disambiguator,
// and canonicalizer have all run over it in place, this record is the
// finished "Bound" class the rest of the world sees.
type SourceTypeBoundClass struct {
	*SourceHeaderBoundClass

	Bounds      map[sym.TyVarSymbol][]tipe.Type
	FieldInfos  []*FieldInfo
	MethodInfos []*MethodInfo
	Annos       []tipe.Annotation
}

func (t *SourceTypeBoundClass) TyParamBounds() map[sym.TyVarSymbol][]tipe.Type { return t.Bounds }
func (t *SourceTypeBoundClass) Fields() []*FieldInfo                          { return t.FieldInfos }
func (t *SourceTypeBoundClass) Methods() []*MethodInfo                        { return t.MethodInfos }
func (t *SourceTypeBoundClass) Annotations() []tipe.Annotation                { return t.Annos }

// FieldInfo is one field's bound signature, plus its evaluated constant
// value once the constant evaluator has run (nil if absent or not a
// compile-time constant).
type FieldInfo struct {
	Sym       sym.FieldSymbol
	Access    tree.AccessFlag
	Type      tipe.Type
	Decl      *tree.FieldDecl
	Value     *konst.Value
	DeclAnnos []tipe.Annotation
	TypeAnnos []tipe.Annotation
}

// ParamInfo is one formal parameter's bound signature.
type ParamInfo struct {
	Name  string
	Type  tipe.Type
	Annos []tipe.Annotation
}

// MethodInfo is one method's bound signature.
type MethodInfo struct {
	Sym             sym.MethodSymbol
	Access          tree.AccessFlag
	TyParams        []sym.TyVarSymbol
	TyParamBounds   map[sym.TyVarSymbol][]tipe.Type
	Params          []ParamInfo
	Return          tipe.Type
	ReturnDeclAnnos []tipe.Annotation
	ReturnTypeAnnos []tipe.Annotation
	Thrown          []tipe.Type
	Decl            *tree.MethodDecl
}
