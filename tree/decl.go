package tree

import (
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/sym"
)

// Member is the closed set of things that can appear inside a TyDecl's
// body: a nested type, a field, or a method.
type Member interface {
	memberSealed()
}

// TargetKind enumerates the declaration positions (plus the type-use
// position) an annotation's own @Target meta-annotation can name. Target
// arguments are drawn from a small, fixed enum domain, so the parser
// resolves them to TargetKind values directly rather than leaving them
// as raw constant expressions.
type TargetKind int

const (
	TargetTypeDecl TargetKind = iota
	TargetField
	TargetMethod
	TargetParameter
	TargetTypeUse
)

// TyDecl is a class/interface/enum/annotation declaration, top-level or
// nested.
type TyDecl struct {
	Name       string
	Kind       sym.Kind
	Mods       AccessFlag
	TyParams   []TyParamDecl
	Extends    *TypeUse // nil if absent (implicit root type, or n/a for INTERFACE)
	Implements []TypeUse
	Members    []Member
	Annos      []AnnotationUse

	// MetaTargets is populated only when Kind == sym.KindAnnotation: the
	// declared @Target meta-annotation's resolved target set, or nil if
	// the annotation type declares no @Target. The binder treats nil as an
	// indeterminate target set, the same way as an unresolved annotation
	// type.
	MetaTargets []TargetKind

	Pos *report.TextPosition
}

func (*TyDecl) memberSealed() {}

// TyParamDecl is a declared type parameter, name plus bounds (bounds are
// resolved later, by the type pass).
type TyParamDecl struct {
	Name   string
	Bounds []TypeUse
	Pos    *report.TextPosition
}

// FieldDecl is a field declaration.
type FieldDecl struct {
	Name  string
	Mods  AccessFlag
	Type  TypeUse
	Init  Expr // nil if there is no initializer
	Annos []AnnotationUse
	Pos   *report.TextPosition
}

func (*FieldDecl) memberSealed() {}

// ParamDecl is one formal parameter of a method.
type ParamDecl struct {
	Name  string
	Type  TypeUse
	Annos []AnnotationUse
}

// MethodDecl is a method declaration (signature only; method bodies are
// never bound or checked).
type MethodDecl struct {
	Name          string
	Mods          AccessFlag
	TyParams      []TyParamDecl
	ReceiverAnnos []AnnotationUse // annotations on an explicit receiver parameter, if any
	Params        []ParamDecl
	Return        TypeUse
	ReturnAnnos   []AnnotationUse
	Thrown        []TypeUse
	Pos           *report.TextPosition
}

func (*MethodDecl) memberSealed() {}
