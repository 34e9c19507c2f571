package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
)

func noTyVars(string) (sym.TyVarSymbol, bool) { return sym.TyVarSymbol{}, false }

func TestParseDescriptor_Primitives(t *testing.T) {
	cases := map[string]tipe.PrimKind{
		"Z": tipe.PrimBoolean,
		"B": tipe.PrimByte,
		"S": tipe.PrimShort,
		"I": tipe.PrimInt,
		"J": tipe.PrimLong,
		"F": tipe.PrimFloat,
		"D": tipe.PrimDouble,
		"C": tipe.PrimChar,
	}
	for d, want := range cases {
		ty, err := parseDescriptor(d, noTyVars)
		assert.NoError(t, err)
		pt, ok := ty.(*tipe.PrimitiveType)
		assert.True(t, ok)
		assert.Equal(t, want, pt.Kind)
	}
}

func TestParseDescriptor_Void(t *testing.T) {
	ty, err := parseDescriptor("V", noTyVars)
	assert.NoError(t, err)
	assert.IsType(t, tipe.VoidType{}, ty)
}

func TestParseDescriptor_Array(t *testing.T) {
	ty, err := parseDescriptor("[[I", noTyVars)
	assert.NoError(t, err)
	outer, ok := ty.(*tipe.ArrayType)
	assert.True(t, ok)
	inner, ok := outer.Element.(*tipe.ArrayType)
	assert.True(t, ok)
	prim, ok := inner.Element.(*tipe.PrimitiveType)
	assert.True(t, ok)
	assert.Equal(t, tipe.PrimInt, prim.Kind)
}

func TestParseDescriptor_TypeVariableResolved(t *testing.T) {
	tv := sym.TyVarSymbol{Owner: sym.NewClassSymbol("a/Box"), Name: "T"}
	lookup := func(name string) (sym.TyVarSymbol, bool) {
		if name == "T" {
			return tv, true
		}
		return sym.TyVarSymbol{}, false
	}

	ty, err := parseDescriptor("TT;", lookup)
	assert.NoError(t, err)
	tvType, ok := ty.(*tipe.TypeVariableType)
	assert.True(t, ok)
	assert.Equal(t, tv, tvType.Sym)
}

func TestParseDescriptor_UnresolvedTypeVariableBecomesErrorType(t *testing.T) {
	ty, err := parseDescriptor("TX;", noTyVars)
	assert.NoError(t, err)
	et, ok := ty.(*tipe.ErrorType)
	assert.True(t, ok)
	assert.Equal(t, "X", et.Name)
}

func TestParseDescriptor_SimpleClass(t *testing.T) {
	ty, err := parseDescriptor("La/b/Widget;", noTyVars)
	assert.NoError(t, err)
	ct, ok := ty.(*tipe.ClassType)
	assert.True(t, ok)
	assert.Len(t, ct.Segments, 1)
	assert.Equal(t, sym.NewClassSymbol("a/b/Widget"), ct.Segments[0].Sym)
}

func TestParseDescriptor_ClassWithTypeArgs(t *testing.T) {
	ty, err := parseDescriptor("La/Map<La/String;La/Integer;>;", noTyVars)
	assert.NoError(t, err)
	ct, ok := ty.(*tipe.ClassType)
	assert.True(t, ok)
	assert.Len(t, ct.Segments, 1)
	assert.Len(t, ct.Segments[0].TypeArgs, 2)

	arg0, ok := ct.Segments[0].TypeArgs[0].(*tipe.ClassType)
	assert.True(t, ok)
	assert.Equal(t, sym.NewClassSymbol("a/String"), arg0.Sym())
}

func TestParseDescriptor_NestedClassSegmentsCollapseWithDollar(t *testing.T) {
	ty, err := parseDescriptor("La/Outer.Inner;", noTyVars)
	assert.NoError(t, err)
	ct, ok := ty.(*tipe.ClassType)
	assert.True(t, ok)
	assert.Len(t, ct.Segments, 2)
	assert.Equal(t, sym.NewClassSymbol("a/Outer"), ct.Segments[0].Sym)
	assert.Equal(t, sym.NewClassSymbol("a/Outer$Inner"), ct.Segments[1].Sym)
}

func TestParseDescriptor_WildcardVariants(t *testing.T) {
	ty, err := parseDescriptor("*", noTyVars)
	assert.NoError(t, err)
	w, ok := ty.(*tipe.WildcardType)
	assert.True(t, ok)
	assert.Equal(t, tipe.WildNone, w.BoundKind)

	ty, err = parseDescriptor("+Ljava/lang/Number;", noTyVars)
	assert.NoError(t, err)
	w, ok = ty.(*tipe.WildcardType)
	assert.True(t, ok)
	assert.Equal(t, tipe.WildExtends, w.BoundKind)

	ty, err = parseDescriptor("-Ljava/lang/Number;", noTyVars)
	assert.NoError(t, err)
	w, ok = ty.(*tipe.WildcardType)
	assert.True(t, ok)
	assert.Equal(t, tipe.WildSuper, w.BoundKind)
}

func TestParseDescriptor_TrailingTextIsAnError(t *testing.T) {
	_, err := parseDescriptor("IJ", noTyVars)
	assert.Error(t, err)
}

func TestParseDescriptor_UnterminatedClassIsAnError(t *testing.T) {
	_, err := parseDescriptor("La/Widget", noTyVars)
	assert.Error(t, err)
}

func TestParseDescriptor_EmptyIsAnError(t *testing.T) {
	_, err := parseDescriptor("", noTyVars)
	assert.Error(t, err)
}
