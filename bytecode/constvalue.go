package bytecode

import (
	"fmt"

	"github.com/cpovirk/turbine/konst"
)

func decodeConstValue(cv *constValue) (konst.Value, error) {
	switch cv.Kind {
	case "byte":
		return konst.Byte(int8(cv.I)), nil
	case "short":
		return konst.Short(int16(cv.I)), nil
	case "int":
		return konst.Int(int32(cv.I)), nil
	case "long":
		return konst.Long(cv.I), nil
	case "char":
		return konst.Char(uint16(cv.I)), nil
	case "float":
		return konst.Float(float32(cv.F)), nil
	case "double":
		return konst.Double(cv.F), nil
	case "boolean":
		return konst.Bool(cv.B), nil
	case "string":
		return konst.Str(cv.S), nil
	default:
		return konst.Value{}, fmt.Errorf("unrecognized constant kind %q", cv.Kind)
	}
}
