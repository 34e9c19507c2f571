package tree

import (
	"github.com/cpovirk/turbine/konst"
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/tipe"
)

// TypeUse is a raw, unresolved type reference as written in source: a
// primitive keyword, `void`, a (possibly generic, possibly nested) class
// or type-variable name, an array, or a wildcard. The TypePass resolves
// these into tipe.Type values.
type TypeUse interface {
	typeUseSealed()
}

// PrimitiveTypeUse is a primitive keyword.
type PrimitiveTypeUse struct {
	Kind  tipe.PrimKind
	Annos []AnnotationUse
}

func (PrimitiveTypeUse) typeUseSealed() {}

// VoidTypeUse is the `void` keyword.
type VoidTypeUse struct{}

func (VoidTypeUse) typeUseSealed() {}

// NameSegment is one '.'-qualified segment of a class-or-type-variable
// name, with its own type arguments and annotations: type arguments are
// carried on the segment where the generic parameters are declared.
type NameSegment struct {
	Name     string
	TypeArgs []TypeUse
	Annos    []AnnotationUse
	Pos      *report.TextPosition
}

// ClassOrTyVarUse is a dotted name reference that could resolve to either
// a type variable (if it is a single unqualified segment) or a class: a
// type-variable name is resolved by walking outward through enclosing
// generic scopes before falling back to class-name lookup.
type ClassOrTyVarUse struct {
	Segments []NameSegment
}

func (ClassOrTyVarUse) typeUseSealed() {}

// ArrayTypeUse is Element[].
type ArrayTypeUse struct {
	Element TypeUse
	Annos   []AnnotationUse
}

func (ArrayTypeUse) typeUseSealed() {}

// WildcardTypeUse is a '?' type argument.
type WildcardTypeUse struct {
	BoundKind tipe.WildBound
	Bound     TypeUse // nil when BoundKind == tipe.WildNone
	Annos     []AnnotationUse
}

func (WildcardTypeUse) typeUseSealed() {}

// -----------------------------------------------------------------------------

// AnnotationUse is an annotation application as written in source: the
// (possibly qualified) annotation type name plus its raw, unevaluated
// argument expressions.
type AnnotationUse struct {
	Name string
	Args map[string]Expr
	Pos  *report.TextPosition
}

// -----------------------------------------------------------------------------

// Expr is the closed set of expression forms the constant evaluator
// understands. Statement-level expression forms are out of scope (method
// bodies are never checked).
type Expr interface {
	exprSealed()
	Position() *report.TextPosition
}

type exprBase struct {
	Pos *report.TextPosition
}

func (e exprBase) Position() *report.TextPosition { return e.Pos }

// LitExpr is a literal constant.
type LitExpr struct {
	exprBase
	Value konst.Value
}

func (LitExpr) exprSealed() {}

// NameExpr is a bare identifier reference: a field (local, inherited, or
// imported) or the start of a qualified field-access chain.
type NameExpr struct {
	exprBase
	Name string
}

func (NameExpr) exprSealed() {}

// FieldAccessExpr is `Expr.Name`, used both for `pkg.Class.FIELD` chains
// and for accessing a field through an expression.
type FieldAccessExpr struct {
	exprBase
	Operand Expr
	Name    string
}

func (FieldAccessExpr) exprSealed() {}

// BinaryExpr applies a binary operator; Op is the token text (e.g. "+",
// "&&", "<<").
type BinaryExpr struct {
	exprBase
	Op          string
	Left, Right Expr
}

func (BinaryExpr) exprSealed() {}

// UnaryExpr applies a unary operator; Op is the token text (e.g. "-",
// "!", "~").
type UnaryExpr struct {
	exprBase
	Op      string
	Operand Expr
}

func (UnaryExpr) exprSealed() {}

// CastExpr narrows or widens Operand to Type.
type CastExpr struct {
	exprBase
	Type    TypeUse
	Operand Expr
}

func (CastExpr) exprSealed() {}

// TernaryExpr is `Cond ? Then : Else`; only the selected branch is
// evaluated.
type TernaryExpr struct {
	exprBase
	Cond, Then, Else Expr
}

func (TernaryExpr) exprSealed() {}
