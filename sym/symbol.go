// Package sym defines the opaque symbol identities that flow through every
// stage of the binder: classes, fields, methods, and type variables.
// Equality is always by canonical name; a symbol carries no state of its
// own, so the same symbol value can be shared freely across environments.
package sym

import "strings"

// Kind enumerates the declaration kinds a ClassSymbol can name.
type Kind int

// Enumeration of class declaration kinds.
const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	default:
		return "class"
	}
}

// ClassSymbol is the canonical identity of a class: a binary name of the
// form "pkg/seg/Outer$Inner$Leaf". Two ClassSymbols with the same name are
// the same class no matter where each was allocated.
type ClassSymbol struct {
	name string
}

// NewClassSymbol interns a class symbol for the given binary name.
func NewClassSymbol(name string) ClassSymbol {
	return ClassSymbol{name: name}
}

// Name returns the symbol's canonical binary name.
func (c ClassSymbol) Name() string { return c.name }

func (c ClassSymbol) String() string { return c.name }

// PackageName returns the '/'-separated package prefix, without a trailing
// slash. The root package's prefix is the empty string.
func (c ClassSymbol) PackageName() string {
	if i := strings.LastIndexByte(c.name, '/'); i >= 0 {
		return c.name[:i]
	}
	return ""
}

// BinaryName returns the portion of the name after the package prefix,
// e.g. "Outer$Inner$Leaf".
func (c ClassSymbol) BinaryName() string {
	if i := strings.LastIndexByte(c.name, '/'); i >= 0 {
		return c.name[i+1:]
	}
	return c.name
}

// SimpleName returns the final '$'-delimited segment of the binary name,
// e.g. "Leaf" for "pkg/Outer$Inner$Leaf".
func (c ClassSymbol) SimpleName() string {
	bn := c.BinaryName()
	if i := strings.LastIndexByte(bn, '$'); i >= 0 {
		return bn[i+1:]
	}
	return bn
}

// Outer returns the enclosing class symbol and true if this symbol names a
// nested class (its binary name contains '$').
func (c ClassSymbol) Outer() (ClassSymbol, bool) {
	if i := strings.LastIndexByte(c.name, '$'); i >= 0 {
		return ClassSymbol{name: c.name[:i]}, true
	}
	return ClassSymbol{}, false
}

// IsZero reports whether c is the zero ClassSymbol (no class named).
func (c ClassSymbol) IsZero() bool { return c.name == "" }

// -----------------------------------------------------------------------------

// FieldSymbol identifies a field by its owning class and short name.
type FieldSymbol struct {
	Owner ClassSymbol
	Name  string
}

func (f FieldSymbol) String() string { return f.Owner.String() + "#" + f.Name }

// MethodSymbol identifies a method by its owning class, short name, and
// descriptor (so overloads with the same name remain distinct).
type MethodSymbol struct {
	Owner      ClassSymbol
	Name       string
	Descriptor string
}

func (m MethodSymbol) String() string { return m.Owner.String() + "#" + m.Name + m.Descriptor }

// TyVarOwner is either a ClassSymbol or a MethodSymbol: the two kinds of
// declarations that can introduce type-parameter scopes.
type TyVarOwner interface {
	String() string
}

// TyVarSymbol identifies a type variable by its owner (class or method)
// and declared name.
type TyVarSymbol struct {
	Owner TyVarOwner
	Name  string
}

func (t TyVarSymbol) String() string { return t.Owner.String() + "#" + t.Name }
