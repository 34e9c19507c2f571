// Package tipe defines the bound Type variant: primitive, void, class
// (with nested simple-class segments and type arguments), type-variable,
// array, and wildcard.
package tipe

import (
	"strings"

	"github.com/cpovirk/turbine/sym"
)

// PrimKind enumerates the primitive kinds.
type PrimKind int

const (
	PrimByte PrimKind = iota
	PrimShort
	PrimInt
	PrimLong
	PrimFloat
	PrimDouble
	PrimBoolean
	PrimChar
)

func (p PrimKind) String() string {
	switch p {
	case PrimByte:
		return "byte"
	case PrimShort:
		return "short"
	case PrimInt:
		return "int"
	case PrimLong:
		return "long"
	case PrimFloat:
		return "float"
	case PrimDouble:
		return "double"
	case PrimBoolean:
		return "boolean"
	case PrimChar:
		return "char"
	default:
		return "?"
	}
}

// WildBound enumerates the three wildcard bound kinds.
type WildBound int

const (
	WildNone WildBound = iota
	WildExtends
	WildSuper
)

// Annotation is a resolved annotation attached to a type use. Arguments are
// populated once the constant evaluator has run; before that they hold raw
// (unevaluated) tree.Expr values.
type Annotation struct {
	Sym  sym.ClassSymbol
	Args map[string]interface{}
}

// Type is the parent interface for all bound type variants. It is a
// closed, sealed-by-convention interface: every implementation lives in
// this package.
type Type interface {
	// Repr returns a human-readable representation, used in diagnostics.
	Repr() string

	// Annos returns the annotations attached directly to this type use.
	Annos() []Annotation

	typeSealed()
}

// -----------------------------------------------------------------------------

// PrimitiveType is a primitive type use.
type PrimitiveType struct {
	Kind  PrimKind
	Annos_ []Annotation
}

func (p *PrimitiveType) Repr() string         { return p.Kind.String() }
func (p *PrimitiveType) Annos() []Annotation  { return p.Annos_ }
func (*PrimitiveType) typeSealed()            {}

// VoidType is the "no return value" pseudo-type.
type VoidType struct{}

func (VoidType) Repr() string        { return "void" }
func (VoidType) Annos() []Annotation { return nil }
func (VoidType) typeSealed()         {}

// ClassSegment is one level of a (possibly nested) class type use: the
// class symbol at that level, its type arguments (empty for a raw or
// non-generic level), and the annotations that textually qualified that
// segment.
type ClassSegment struct {
	Sym       sym.ClassSymbol
	TypeArgs  []Type
	Annos_    []Annotation
}

// ClassType is a reference to a (possibly generic, possibly nested) class.
// Segments run outermost-to-innermost; the canonicalizer pass is
// responsible for making every enclosing level explicit.
type ClassType struct {
	Segments []ClassSegment
}

func (c *ClassType) Repr() string {
	var parts []string
	for _, seg := range c.Segments {
		s := seg.Sym.SimpleName()
		if len(seg.TypeArgs) > 0 {
			var args []string
			for _, a := range seg.TypeArgs {
				args = append(args, a.Repr())
			}
			s += "<" + strings.Join(args, ", ") + ">"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}

func (c *ClassType) Annos() []Annotation {
	if len(c.Segments) == 0 {
		return nil
	}
	return c.Segments[len(c.Segments)-1].Annos_
}

func (*ClassType) typeSealed() {}

// Sym returns the symbol of the innermost (used) segment.
func (c *ClassType) Sym() sym.ClassSymbol {
	if len(c.Segments) == 0 {
		return sym.ClassSymbol{}
	}
	return c.Segments[len(c.Segments)-1].Sym
}

// TypeVariableType refers to a declared type parameter.
type TypeVariableType struct {
	Sym    sym.TyVarSymbol
	Annos_ []Annotation
}

func (t *TypeVariableType) Repr() string        { return t.Sym.Name }
func (t *TypeVariableType) Annos() []Annotation { return t.Annos_ }
func (*TypeVariableType) typeSealed()           {}

// ArrayType is an array of Element.
type ArrayType struct {
	Element Type
	Annos_  []Annotation
}

func (a *ArrayType) Repr() string        { return a.Element.Repr() + "[]" }
func (a *ArrayType) Annos() []Annotation { return a.Annos_ }
func (*ArrayType) typeSealed()           {}

// WildcardType is a '?' type argument, optionally bounded.
type WildcardType struct {
	BoundKind WildBound
	Bound     Type // nil when BoundKind == WildNone
	Annos_    []Annotation
}

func (w *WildcardType) Repr() string {
	switch w.BoundKind {
	case WildExtends:
		return "? extends " + w.Bound.Repr()
	case WildSuper:
		return "? super " + w.Bound.Repr()
	default:
		return "?"
	}
}
func (w *WildcardType) Annos() []Annotation { return w.Annos_ }
func (*WildcardType) typeSealed()           {}

// ErrorType stands in for a type reference that failed to resolve, so
// later passes can continue instead of aborting.
type ErrorType struct {
	Name string
}

func (e *ErrorType) Repr() string        { return "<error: " + e.Name + ">" }
func (e *ErrorType) Annos() []Annotation { return nil }
func (*ErrorType) typeSealed()           {}
