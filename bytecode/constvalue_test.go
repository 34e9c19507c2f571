package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpovirk/turbine/konst"
)

func TestDecodeConstValue_EachKind(t *testing.T) {
	v, err := decodeConstValue(&constValue{Kind: "int", I: 42})
	assert.NoError(t, err)
	assert.Equal(t, konst.Int(42), v)

	v, err = decodeConstValue(&constValue{Kind: "long", I: 1 << 40})
	assert.NoError(t, err)
	assert.Equal(t, konst.Long(1<<40), v)

	v, err = decodeConstValue(&constValue{Kind: "boolean", B: true})
	assert.NoError(t, err)
	assert.Equal(t, konst.Bool(true), v)

	v, err = decodeConstValue(&constValue{Kind: "string", S: "hi"})
	assert.NoError(t, err)
	assert.Equal(t, konst.Str("hi"), v)

	v, err = decodeConstValue(&constValue{Kind: "double", F: 1.5})
	assert.NoError(t, err)
	assert.Equal(t, konst.Double(1.5), v)
}

func TestDecodeConstValue_UnknownKindErrors(t *testing.T) {
	_, err := decodeConstValue(&constValue{Kind: "bogus"})
	assert.Error(t, err)
}
