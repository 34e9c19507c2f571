package binder

import (
	"github.com/cpovirk/turbine/bound"
	"github.com/cpovirk/turbine/env"
	"github.com/cpovirk/turbine/konst"
	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/sym"
	"github.com/cpovirk/turbine/tipe"
	"github.com/cpovirk/turbine/tree"
)

// evalConstants evaluates every field initializer that is a compile-time
// constant expression and substitutes evaluated values into every
// annotation argument. Fields are kept in one global lazy environment
// regardless of which class declares them, so a constant cycle spanning
// several classes is caught exactly like one confined to a single field.
// Self-reference, direct or transitive, resolves the referencing
// expression to "not constant" rather than raising an error: only the
// field touched by the cycle loses its value, nothing else.
func (b *Binder) evalConstants() {
	fieldInfo := map[sym.FieldSymbol]*bound.FieldInfo{}
	for s, tb := range b.result {
		for _, fi := range tb.FieldInfos {
			fieldInfo[sym.FieldSymbol{Owner: s, Name: fi.Sym.Name}] = fi
		}
	}
	b.fieldInfo = fieldInfo

	completers := map[sym.FieldSymbol]env.Completer[sym.FieldSymbol, *konst.Value]{}
	for fs := range fieldInfo {
		completers[fs] = func(self *env.Lazy[sym.FieldSymbol, *konst.Value], k sym.FieldSymbol) (*konst.Value, error) {
			return b.constCompleter(self, k)
		}
	}
	b.constEnv = env.NewLazy(completers, nil)

	for fs, fi := range fieldInfo {
		if vp, _ := b.constEnv.GetOrError(fs); vp != nil {
			fi.Value = vp
		}
	}

	for s, tb := range b.result {
		us := b.unitScopes[b.unitOf[s]]
		scope := b.composeScope(s, us, b.headerEnv)
		b.evalAnnoArgs(tb.Annos, s, scope)
		for _, fi := range tb.FieldInfos {
			b.evalAnnoArgs(fi.DeclAnnos, s, scope)
			b.evalAnnoArgs(fi.TypeAnnos, s, scope)
		}
		for _, mi := range tb.MethodInfos {
			b.evalAnnoArgs(mi.ReturnDeclAnnos, s, scope)
			b.evalAnnoArgs(mi.ReturnTypeAnnos, s, scope)
			for _, p := range mi.Params {
				b.evalAnnoArgs(p.Annos, s, scope)
			}
		}
	}
}

func (b *Binder) constCompleter(self *env.Lazy[sym.FieldSymbol, *konst.Value], fs sym.FieldSymbol) (*konst.Value, error) {
	fi := b.fieldInfo[fs]
	if fi == nil || fi.Decl == nil || fi.Decl.Init == nil {
		return nil, nil
	}
	owner := fs.Owner
	us := b.unitScopes[b.unitOf[owner]]
	scope := b.composeScope(owner, us, b.headerEnv)

	v, ok := b.evalExpr(fi.Decl.Init, owner, scope, self)
	if !ok {
		return nil, nil
	}
	if pt, isPrim := fi.Type.(*tipe.PrimitiveType); isPrim {
		v = konst.Narrow(v, primToKonstKind(pt.Kind))
	}
	return &v, nil
}

func (b *Binder) evalAnnoArgs(annos []tipe.Annotation, owner sym.ClassSymbol, scope lookup.Scope) {
	for _, a := range annos {
		for k, raw := range a.Args {
			expr, ok := raw.(tree.Expr)
			if !ok {
				continue
			}
			if v, ok := b.evalExpr(expr, owner, scope, b.constEnv); ok {
				a.Args[k] = v
			}
		}
	}
}

// evalExpr evaluates e to a compile-time constant, or reports that it is
// not one. self is the shared field-constant environment, threaded
// through so a field reference inside e can trigger that field's own
// completion (and participate in the same cycle detection).
func (b *Binder) evalExpr(e tree.Expr, owner sym.ClassSymbol, scope lookup.Scope, self *env.Lazy[sym.FieldSymbol, *konst.Value]) (konst.Value, bool) {
	switch ex := e.(type) {
	case tree.LitExpr:
		return ex.Value, true

	case tree.NameExpr:
		return b.evalFieldRef(owner, ex.Name, self)

	case tree.FieldAccessExpr:
		path, ok := flattenPath(ex)
		if !ok || len(path) < 2 {
			return konst.Value{}, false
		}
		ctx := b.sourceClasses[owner].Source.Context()
		classSym, ok := b.resolveName(path[:len(path)-1], scope, ex.Position(), ctx)
		if !ok {
			return konst.Value{}, false
		}
		return b.evalFieldOn(classSym, path[len(path)-1], self)

	case tree.BinaryExpr:
		return b.evalBinary(ex, owner, scope, self)

	case tree.UnaryExpr:
		v, ok := b.evalExpr(ex.Operand, owner, scope, self)
		if !ok {
			return konst.Value{}, false
		}
		r, err := konst.UnaryOp(ex.Op, v)
		if err != nil {
			return konst.Value{}, false
		}
		return r, true

	case tree.CastExpr:
		v, ok := b.evalExpr(ex.Operand, owner, scope, self)
		if !ok {
			return konst.Value{}, false
		}
		if pt, isPrim := ex.Type.(tree.PrimitiveTypeUse); isPrim {
			return konst.Narrow(v, primToKonstKind(pt.Kind)), true
		}
		return v, true

	case tree.TernaryExpr:
		c, ok := b.evalExpr(ex.Cond, owner, scope, self)
		if !ok {
			return konst.Value{}, false
		}
		if c.Bool() {
			return b.evalExpr(ex.Then, owner, scope, self)
		}
		return b.evalExpr(ex.Else, owner, scope, self)

	default:
		return konst.Value{}, false
	}
}

func (b *Binder) evalBinary(ex tree.BinaryExpr, owner sym.ClassSymbol, scope lookup.Scope, self *env.Lazy[sym.FieldSymbol, *konst.Value]) (konst.Value, bool) {
	if ex.Op == "&&" || ex.Op == "||" {
		l, ok := b.evalExpr(ex.Left, owner, scope, self)
		if !ok {
			return konst.Value{}, false
		}
		if ex.Op == "&&" && !l.Bool() {
			return konst.Bool(false), true
		}
		if ex.Op == "||" && l.Bool() {
			return konst.Bool(true), true
		}
		r, ok := b.evalExpr(ex.Right, owner, scope, self)
		if !ok {
			return konst.Value{}, false
		}
		return konst.Bool(r.Bool()), true
	}

	l, lok := b.evalExpr(ex.Left, owner, scope, self)
	r, rok := b.evalExpr(ex.Right, owner, scope, self)
	if !lok || !rok {
		return konst.Value{}, false
	}
	v, err := konst.BinaryOp(ex.Op, l, r)
	if err != nil {
		return konst.Value{}, false
	}
	return v, true
}

// evalFieldRef resolves a bare identifier to a field, searching the
// owning class's own and inherited fields first, then that class's
// compilation unit's statically-imported fields.
func (b *Binder) evalFieldRef(owner sym.ClassSymbol, name string, self *env.Lazy[sym.FieldSymbol, *konst.Value]) (konst.Value, bool) {
	if fs, ok := b.findField(owner, name); ok {
		return b.completeField(fs, self)
	}
	u := b.unitOf[owner]
	us, ok := b.unitScopes[u]
	if !ok || us.memberImports == nil {
		return konst.Value{}, false
	}

	mowner, found, ambiguous := us.memberImports.Resolve(name)
	if !found {
		return konst.Value{}, false
	}
	if !ambiguous {
		return b.evalFieldOn(mowner, name, self)
	}

	// MemberImportIndex.Resolve can only report "more than one on-demand static
	// import" without checking which of them actually declares name; do
	// that check here, since it only requires findField, already at hand.
	var hit sym.ClassSymbol
	hits := 0
	for _, w := range us.memberImports.WildOwners() {
		if _, ok := b.findField(w, name); ok {
			hit, hits = w, hits+1
		}
	}
	if hits != 1 {
		return konst.Value{}, false
	}
	return b.evalFieldOn(hit, name, self)
}

func (b *Binder) evalFieldOn(owner sym.ClassSymbol, name string, self *env.Lazy[sym.FieldSymbol, *konst.Value]) (konst.Value, bool) {
	fs, ok := b.findField(owner, name)
	if !ok {
		return konst.Value{}, false
	}
	return b.completeField(fs, self)
}

func (b *Binder) completeField(fs sym.FieldSymbol, self *env.Lazy[sym.FieldSymbol, *konst.Value]) (konst.Value, bool) {
	if _, isSource := b.fieldInfo[fs]; !isSource {
		return b.classpathFieldValue(fs)
	}
	vp, err := self.GetOrError(fs)
	if err != nil || vp == nil {
		return konst.Value{}, false
	}
	return *vp, true
}

// classpathFieldValue reads a classpath field's constant value straight
// off its already-decoded FieldInfo. Classpath fields have no initializer
// expression to evaluate, so they never go through the lazy completer; the
// value was decoded once, eagerly, from the encoded constant in the
// archive record.
func (b *Binder) classpathFieldValue(fs sym.FieldSymbol) (konst.Value, bool) {
	tc, ok := b.typeEnv.Get(fs.Owner)
	if !ok {
		return konst.Value{}, false
	}
	for _, fi := range tc.Fields() {
		if fi.Sym.Name == fs.Name && fi.Value != nil {
			return *fi.Value, true
		}
	}
	return konst.Value{}, false
}

// findField walks owner's own fields, then its supertypes and
// superinterfaces, depth-first, stopping at the first match.
func (b *Binder) findField(owner sym.ClassSymbol, name string) (sym.FieldSymbol, bool) {
	seen := map[sym.ClassSymbol]bool{}
	var walk func(sym.ClassSymbol) (sym.FieldSymbol, bool)
	walk = func(c sym.ClassSymbol) (sym.FieldSymbol, bool) {
		if c.IsZero() || seen[c] {
			return sym.FieldSymbol{}, false
		}
		seen[c] = true
		tc, ok := b.typeEnv.Get(c)
		if !ok {
			return sym.FieldSymbol{}, false
		}
		for _, f := range tc.Fields() {
			if f.Sym.Name == name {
				return f.Sym, true
			}
		}
		if sup, has := tc.Super(); has {
			if fs, ok := walk(sup); ok {
				return fs, true
			}
		}
		for _, iface := range tc.Interfaces() {
			if fs, ok := walk(iface); ok {
				return fs, true
			}
		}
		return sym.FieldSymbol{}, false
	}
	return walk(owner)
}

// flattenPath collapses a chain of FieldAccessExpr/NameExpr nodes into a
// dotted path, e.g. `a.b.C.FIELD` -> ["a","b","C","FIELD"]. It fails if
// any link in the chain is not itself a plain name.
func flattenPath(e tree.Expr) ([]string, bool) {
	switch ex := e.(type) {
	case tree.NameExpr:
		return []string{ex.Name}, true
	case tree.FieldAccessExpr:
		prefix, ok := flattenPath(ex.Operand)
		if !ok {
			return nil, false
		}
		return append(prefix, ex.Name), true
	default:
		return nil, false
	}
}

func primToKonstKind(p tipe.PrimKind) konst.Kind {
	switch p {
	case tipe.PrimByte:
		return konst.KindByte
	case tipe.PrimShort:
		return konst.KindShort
	case tipe.PrimLong:
		return konst.KindLong
	case tipe.PrimFloat:
		return konst.KindFloat
	case tipe.PrimDouble:
		return konst.KindDouble
	case tipe.PrimBoolean:
		return konst.KindBoolean
	case tipe.PrimChar:
		return konst.KindChar
	default:
		return konst.KindInt
	}
}
