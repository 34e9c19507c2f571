package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
)

func TestBytecodeBoundClass_DecodesHeaderOnce(t *testing.T) {
	self := sym.NewClassSymbol("a/Widget")
	rec := classRecord{
		Kind:       "INTERFACE",
		Super:      "a/Base",
		Interfaces: []string{"a/Marker"},
		TypeParams: []typeParam{{Name: "T"}},
	}
	c := newBytecodeBoundClass(self, rec)

	assert.False(t, c.decoded)
	assert.Equal(t, sym.KindInterface, c.ClassKind())
	assert.True(t, c.decoded)

	sup, ok := c.Super()
	assert.True(t, ok)
	assert.Equal(t, sym.NewClassSymbol("a/Base"), sup)

	assert.Equal(t, []sym.ClassSymbol{sym.NewClassSymbol("a/Marker")}, c.Interfaces())
	assert.Len(t, c.TyParams(), 1)
	assert.Equal(t, "T", c.TyParams()[0].Name)

	_, hasOwner := c.Owner()
	assert.False(t, hasOwner, "classpath records carry no enclosing-class information")
}

func TestBytecodeBoundClass_NoSuperIsAbsent(t *testing.T) {
	c := newBytecodeBoundClass(sym.NewClassSymbol("a/Root"), classRecord{Kind: "CLASS"})
	_, ok := c.Super()
	assert.False(t, ok)
}

func TestBytecodeBoundClass_FieldsDecodeTypeAndConstant(t *testing.T) {
	self := sym.NewClassSymbol("a/Consts")
	rec := classRecord{
		Fields: []fieldRecord{
			{Name: "MAX", Type: "I", Value: &constValue{Kind: "int", I: 100}},
			{Name: "name", Type: "Ljava/lang/String;"},
		},
	}
	c := newBytecodeBoundClass(self, rec)
	fields := c.Fields()
	assert.Len(t, fields, 2)

	assert.Equal(t, sym.FieldSymbol{Owner: self, Name: "MAX"}, fields[0].Sym)
	assert.NotNil(t, fields[0].Value)
	assert.Equal(t, int64(100), fields[0].Value.Int64())

	assert.Nil(t, fields[1].Value)
}

func TestBytecodeBoundClass_FieldWithBadDescriptorBecomesErrorType(t *testing.T) {
	rec := classRecord{Fields: []fieldRecord{{Name: "bad", Type: "nonsense"}}}
	c := newBytecodeBoundClass(sym.NewClassSymbol("a/X"), rec)

	et, ok := c.Fields()[0].Type.(*tipe.ErrorType)
	assert.True(t, ok)
	assert.Equal(t, "bad", et.Name)
}

func TestBytecodeBoundClass_MethodParamsAndReturnUseOwnTypeParams(t *testing.T) {
	self := sym.NewClassSymbol("a/Box")
	rec := classRecord{
		Methods: []methodRecord{
			{
				Name:       "identity",
				TypeParams: []typeParam{{Name: "T"}},
				Params:     []paramRecord{{Name: "x", Type: "TT;"}},
				Return:     "TT;",
			},
		},
	}
	c := newBytecodeBoundClass(self, rec)
	methods := c.Methods()
	assert.Len(t, methods, 1)

	mi := methods[0]
	assert.Len(t, mi.TyParams, 1)
	assert.Equal(t, "(TT;)TT;", mi.Sym.Descriptor)

	pt, ok := mi.Params[0].Type.(*tipe.TypeVariableType)
	assert.True(t, ok)
	assert.Equal(t, mi.TyParams[0], pt.Sym)

	rt, ok := mi.Return.(*tipe.TypeVariableType)
	assert.True(t, ok)
	assert.Equal(t, mi.TyParams[0], rt.Sym)
}

func TestBytecodeBoundClass_MethodFallsBackToClassTypeParam(t *testing.T) {
	self := sym.NewClassSymbol("a/Box")
	rec := classRecord{
		TypeParams: []typeParam{{Name: "T"}},
		Methods: []methodRecord{
			{Name: "get", Return: "TT;"},
		},
	}
	c := newBytecodeBoundClass(self, rec)
	rt, ok := c.Methods()[0].Return.(*tipe.TypeVariableType)
	assert.True(t, ok)
	assert.Equal(t, self, rt.Sym.Owner)
}

func TestBytecodeBoundClass_AnnotationsCarryArgs(t *testing.T) {
	rec := classRecord{
		Annotations: []annoRecord{
			{Type: "a/Deprecated", Args: map[string]interface{}{"since": "1.0"}},
		},
	}
	c := newBytecodeBoundClass(sym.NewClassSymbol("a/X"), rec)
	annos := c.Annotations()
	assert.Len(t, annos, 1)
	assert.Equal(t, sym.NewClassSymbol("a/Deprecated"), annos[0].Sym)
	assert.Equal(t, "1.0", annos[0].Args["since"])
}
