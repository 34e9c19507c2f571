package konst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryOp_StringConcatCoercesEitherSide(t *testing.T) {
	v, err := BinaryOp("+", Str("count: "), Int(3))
	assert.NoError(t, err)
	assert.Equal(t, Str("count: 3"), v)
}

func TestBinaryOp_IntegerArithmeticWidensToInt(t *testing.T) {
	v, err := BinaryOp("+", Byte(1), Short(2))
	assert.NoError(t, err)
	assert.Equal(t, KindInt, v.Kind)
	assert.Equal(t, int64(3), v.Int64())
}

func TestBinaryOp_LongOperandWidensResult(t *testing.T) {
	v, err := BinaryOp("*", Long(10), Int(4))
	assert.NoError(t, err)
	assert.Equal(t, KindLong, v.Kind)
	assert.Equal(t, int64(40), v.Int64())
}

func TestBinaryOp_FloatingArithmetic(t *testing.T) {
	v, err := BinaryOp("/", Double(1), Int(4))
	assert.NoError(t, err)
	assert.Equal(t, KindDouble, v.Kind)
	assert.InDelta(t, 0.25, v.Float64(), 1e-9)
}

func TestBinaryOp_DivisionByZeroErrors(t *testing.T) {
	_, err := BinaryOp("/", Int(1), Int(0))
	assert.Error(t, err)
}

func TestBinaryOp_Comparisons(t *testing.T) {
	v, err := BinaryOp("<", Int(1), Int(2))
	assert.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = BinaryOp("==", Str("a"), Str("a"))
	assert.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = BinaryOp("!=", Str("a"), Str("b"))
	assert.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestBinaryOp_BooleanOperatorsRejectNonBoolean(t *testing.T) {
	_, err := BinaryOp("&&", Int(1), Bool(true))
	assert.Error(t, err)
}

func TestBinaryOp_Bitwise(t *testing.T) {
	v, err := BinaryOp("&", Int(6), Int(3))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), v.Int64())

	v, err = BinaryOp("<<", Int(1), Int(4))
	assert.NoError(t, err)
	assert.Equal(t, int64(16), v.Int64())
}

func TestUnaryOp_Negation(t *testing.T) {
	v, err := UnaryOp("-", Int(5))
	assert.NoError(t, err)
	assert.Equal(t, int64(-5), v.Int64())

	v, err = UnaryOp("-", Double(2.5))
	assert.NoError(t, err)
	assert.InDelta(t, -2.5, v.Float64(), 1e-9)
}

func TestUnaryOp_LogicalNotRequiresBoolean(t *testing.T) {
	v, err := UnaryOp("!", Bool(false))
	assert.NoError(t, err)
	assert.True(t, v.Bool())

	_, err = UnaryOp("!", Int(1))
	assert.Error(t, err)
}

func TestUnaryOp_BitwiseComplement(t *testing.T) {
	v, err := UnaryOp("~", Int(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), v.Int64())
}

func TestDisplay_MatchesStringConcatRendering(t *testing.T) {
	assert.Equal(t, "3.5", Display(Double(3.5)))
}
