package bytecode

import (
	"fmt"
	"strings"

	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
)

// tyVarLookup resolves a type-variable name to its symbol within the
// descriptor's declaring scope (a method's own type parameters, then its
// class's). Type parameters of enclosing classes are not searched.
type tyVarLookup func(name string) (sym.TyVarSymbol, bool)

// parseDescriptor parses one of the small set of type descriptor forms a
// classinfo record uses:
//
//	V              void
//	Z B S I J F D C  primitives
//	Tname;         type variable
//	[desc          array
//	Ldescriptor... class type, see parseClassDescriptor
func parseDescriptor(d string, tv tyVarLookup) (tipe.Type, error) {
	t, rest, err := parseOne(d, tv)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("trailing descriptor text %q after %q", rest, d)
	}
	return t, nil
}

func parseOne(d string, tv tyVarLookup) (tipe.Type, string, error) {
	if d == "" {
		return nil, "", fmt.Errorf("empty type descriptor")
	}
	switch d[0] {
	case 'V':
		return tipe.VoidType{}, d[1:], nil
	case 'Z':
		return &tipe.PrimitiveType{Kind: tipe.PrimBoolean}, d[1:], nil
	case 'B':
		return &tipe.PrimitiveType{Kind: tipe.PrimByte}, d[1:], nil
	case 'S':
		return &tipe.PrimitiveType{Kind: tipe.PrimShort}, d[1:], nil
	case 'I':
		return &tipe.PrimitiveType{Kind: tipe.PrimInt}, d[1:], nil
	case 'J':
		return &tipe.PrimitiveType{Kind: tipe.PrimLong}, d[1:], nil
	case 'F':
		return &tipe.PrimitiveType{Kind: tipe.PrimFloat}, d[1:], nil
	case 'D':
		return &tipe.PrimitiveType{Kind: tipe.PrimDouble}, d[1:], nil
	case 'C':
		return &tipe.PrimitiveType{Kind: tipe.PrimChar}, d[1:], nil
	case '[':
		elem, rest, err := parseOne(d[1:], tv)
		if err != nil {
			return nil, "", err
		}
		return &tipe.ArrayType{Element: elem}, rest, nil
	case 'T':
		i := strings.IndexByte(d, ';')
		if i < 0 {
			return nil, "", fmt.Errorf("unterminated type variable descriptor %q", d)
		}
		name := d[1:i]
		s, ok := tv(name)
		if !ok {
			return &tipe.ErrorType{Name: name}, d[i+1:], nil
		}
		return &tipe.TypeVariableType{Sym: s}, d[i+1:], nil
	case 'L':
		return parseClassDescriptor(d, tv)
	case '*':
		return &tipe.WildcardType{BoundKind: tipe.WildNone}, d[1:], nil
	case '+':
		bound, rest, err := parseOne(d[1:], tv)
		if err != nil {
			return nil, "", err
		}
		return &tipe.WildcardType{BoundKind: tipe.WildExtends, Bound: bound}, rest, nil
	case '-':
		bound, rest, err := parseOne(d[1:], tv)
		if err != nil {
			return nil, "", err
		}
		return &tipe.WildcardType{BoundKind: tipe.WildSuper, Bound: bound}, rest, nil
	default:
		return nil, "", fmt.Errorf("unrecognized type descriptor %q", d)
	}
}

// parseClassDescriptor parses "Lbinary/name<TypeArg,...>;" or, for a
// nested class path, "Lbinary/name.Inner<...>;" where each '.'-segment
// may carry its own type arguments (the segment structure tipe.ClassType
// preserves).
func parseClassDescriptor(d string, tv tyVarLookup) (tipe.Type, string, error) {
	if d == "" || d[0] != 'L' {
		return nil, "", fmt.Errorf("expected class descriptor, got %q", d)
	}
	rest := d[1:]
	var segments []tipe.ClassSegment
	binaryPrefix := ""

	for {
		end := strings.IndexAny(rest, ".;<")
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated class descriptor %q", d)
		}
		name := rest[:end]
		if binaryPrefix == "" {
			binaryPrefix = name
		} else {
			binaryPrefix += "$" + name
		}
		rest = rest[end:]

		var args []tipe.Type
		if len(rest) > 0 && rest[0] == '<' {
			rest = rest[1:]
			for len(rest) > 0 && rest[0] != '>' {
				var a tipe.Type
				var err error
				a, rest, err = parseOne(rest, tv)
				if err != nil {
					return nil, "", err
				}
				args = append(args, a)
			}
			if len(rest) == 0 {
				return nil, "", fmt.Errorf("unterminated type argument list in %q", d)
			}
			rest = rest[1:] // consume '>'
		}

		segments = append(segments, tipe.ClassSegment{
			Sym:      sym.NewClassSymbol(binaryPrefix),
			TypeArgs: args,
		})

		if len(rest) > 0 && rest[0] == '.' {
			rest = rest[1:]
			continue
		}
		break
	}

	if len(rest) == 0 || rest[0] != ';' {
		return nil, "", fmt.Errorf("class descriptor %q missing terminating ';'", d)
	}
	return &tipe.ClassType{Segments: segments}, rest[1:], nil
}
