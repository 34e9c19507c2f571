package bytecode

import (
	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
	"github.com/cpovirk/turbine/tree"
)

// BytecodeBoundClass is a classpath class's TypeBoundClass view. Archives
// are scanned eagerly (classpath.go), but the expensive part — parsing
// type descriptors into tipe.Type values and wiring up type-variable
// symbols — happens on a view's first use and is cached in that view.
// ClassPathBinder.BoundClass builds a new view on every call, so views
// are not shared and each one decodes its record separately.
type BytecodeBoundClass struct {
	self sym.ClassSymbol
	rec  classRecord

	decoded       bool
	kind          sym.Kind
	superSym      sym.ClassSymbol
	hasSuper      bool
	interfaceSyms []sym.ClassSymbol
	tyParamSyms   []sym.TyVarSymbol
	tyParamBounds map[sym.TyVarSymbol][]tipe.Type
	fields        []*bound.FieldInfo
	methods       []*bound.MethodInfo
	annos         []tipe.Annotation
}

// newBytecodeBoundClass wraps one scanned record. decode() is deferred
// until the first accessor call.
func newBytecodeBoundClass(self sym.ClassSymbol, rec classRecord) *BytecodeBoundClass {
	return &BytecodeBoundClass{self: self, rec: rec}
}

func (c *BytecodeBoundClass) tyVar(name string) (sym.TyVarSymbol, bool) {
	for _, tp := range c.tyParamSyms {
		if tp.Name == name {
			return tp, true
		}
	}
	return sym.TyVarSymbol{}, false
}

func (c *BytecodeBoundClass) decode() {
	if c.decoded {
		return
	}
	c.decoded = true

	c.kind = decodeKind(c.rec.Kind)

	for _, tp := range c.rec.TypeParams {
		c.tyParamSyms = append(c.tyParamSyms, sym.TyVarSymbol{Owner: c.self, Name: tp.Name})
	}

	if c.rec.Super != "" {
		c.superSym = sym.NewClassSymbol(c.rec.Super)
		c.hasSuper = true
	}
	for _, i := range c.rec.Interfaces {
		c.interfaceSyms = append(c.interfaceSyms, sym.NewClassSymbol(i))
	}

	c.tyParamBounds = map[sym.TyVarSymbol][]tipe.Type{}
	for i, tp := range c.rec.TypeParams {
		var bounds []tipe.Type
		for _, b := range tp.Bounds {
			if t, err := parseDescriptor(b, c.tyVar); err == nil {
				bounds = append(bounds, t)
			}
		}
		c.tyParamBounds[c.tyParamSyms[i]] = bounds
	}

	for _, fr := range c.rec.Fields {
		ft, err := parseDescriptor(fr.Type, c.tyVar)
		if err != nil {
			ft = &tipe.ErrorType{Name: fr.Name}
		}
		fi := &bound.FieldInfo{
			Sym:    sym.FieldSymbol{Owner: c.self, Name: fr.Name},
			Access: decodeAccess(fr.Access),
			Type:   ft,
		}
		if fr.Value != nil {
			if v, err := decodeConstValue(fr.Value); err == nil {
				fi.Value = &v
			}
		}
		c.fields = append(c.fields, fi)
	}

	for _, mr := range c.rec.Methods {
		mi := &bound.MethodInfo{
			Sym:    sym.MethodSymbol{Owner: c.self, Name: mr.Name, Descriptor: methodDescriptor(mr)},
			Access: decodeAccess(mr.Access),
		}
		for _, tp := range mr.TypeParams {
			mi.TyParams = append(mi.TyParams, sym.TyVarSymbol{Owner: mi.Sym, Name: tp.Name})
		}
		methodTv := func(name string) (sym.TyVarSymbol, bool) {
			for _, tp := range mi.TyParams {
				if tp.Name == name {
					return tp, true
				}
			}
			return c.tyVar(name)
		}
		for _, p := range mr.Params {
			pt, err := parseDescriptor(p.Type, methodTv)
			if err != nil {
				pt = &tipe.ErrorType{Name: p.Name}
			}
			mi.Params = append(mi.Params, bound.ParamInfo{Name: p.Name, Type: pt})
		}
		if rt, err := parseDescriptor(mr.Return, methodTv); err == nil {
			mi.Return = rt
		} else {
			mi.Return = &tipe.ErrorType{Name: mr.Name}
		}
		for _, th := range mr.Thrown {
			if t, err := parseDescriptor(th, methodTv); err == nil {
				mi.Thrown = append(mi.Thrown, t)
			}
		}
		c.methods = append(c.methods, mi)
	}

	for _, ar := range c.rec.Annotations {
		c.annos = append(c.annos, tipe.Annotation{Sym: sym.NewClassSymbol(ar.Type), Args: ar.Args})
	}
}

func methodDescriptor(mr methodRecord) string {
	d := "("
	for _, p := range mr.Params {
		d += p.Type
	}
	return d + ")" + mr.Return
}

func decodeKind(s string) sym.Kind {
	switch s {
	case "INTERFACE":
		return sym.KindInterface
	case "ENUM":
		return sym.KindEnum
	case "ANNOTATION":
		return sym.KindAnnotation
	default:
		return sym.KindClass
	}
}

func decodeAccess(a uint32) tree.AccessFlag {
	return tree.AccessFlag(a)
}

func (c *BytecodeBoundClass) ClassKind() sym.Kind {
	c.decode()
	return c.kind
}

func (c *BytecodeBoundClass) Super() (sym.ClassSymbol, bool) {
	c.decode()
	return c.superSym, c.hasSuper
}

func (c *BytecodeBoundClass) Interfaces() []sym.ClassSymbol {
	c.decode()
	return c.interfaceSyms
}

func (c *BytecodeBoundClass) TyParams() []sym.TyVarSymbol {
	c.decode()
	return c.tyParamSyms
}

func (c *BytecodeBoundClass) Owner() (sym.ClassSymbol, bool) {
	// Classpath records do not currently carry enclosing-class
	// information; nested classpath classes are addressed directly by
	// binary name instead.
	return sym.ClassSymbol{}, false
}

func (c *BytecodeBoundClass) TyParamBounds() map[sym.TyVarSymbol][]tipe.Type {
	c.decode()
	return c.tyParamBounds
}

func (c *BytecodeBoundClass) Fields() []*bound.FieldInfo {
	c.decode()
	return c.fields
}

func (c *BytecodeBoundClass) Methods() []*bound.MethodInfo {
	c.decode()
	return c.methods
}

func (c *BytecodeBoundClass) Annotations() []tipe.Annotation {
	c.decode()
	return c.annos
}

// BoundClass returns a new, not yet decoded view of the classpath class
// for s, or nil if s was never scanned. Views are not cached: each call
// returns a fresh one.
func (b *ClassPathBinder) BoundClass(s sym.ClassSymbol) *BytecodeBoundClass {
	rec, ok := b.records[s]
	if !ok {
		return nil
	}
	return newBytecodeBoundClass(s, rec)
}
