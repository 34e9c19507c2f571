package lookup

import (
	"strings"

	"github.com/cpovirk/turbine/sym"
)

// LookupResult is the outcome of resolving a dotted name against the
// TopLevelIndex: the top-level class symbol that matched, plus whatever
// trailing segments were not consumed by the package/class-name walk.
// Those trailing segments name nested classes and are the caller's
// responsibility to resolve, since that requires a bound class hierarchy
// the index itself does not have.
type LookupResult struct {
	Sym       sym.ClassSymbol
	Remaining []string
}

type trieNode struct {
	scope    MapScope
	children map[string]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{scope: MapScope{}, children: map[string]*trieNode{}}
}

func (n *trieNode) child(seg string, create bool) *trieNode {
	c, ok := n.children[seg]
	if !ok {
		if !create {
			return nil
		}
		c = newTrieNode()
		n.children[seg] = c
	}
	return c
}

// TopLevelIndex is a trie over package-name segments. Each node holds the
// scope of top-level class short names declared directly in that
// package. It is built once, in priority order (source first, then
// bootclasspath, then classpath), and is read-only once binding begins
// proper name resolution.
type TopLevelIndex struct {
	root *trieNode
}

// NewTopLevelIndex builds an empty index.
func NewTopLevelIndex() *TopLevelIndex {
	return &TopLevelIndex{root: newTrieNode()}
}

// Insert registers s with the index. The package prefix of s's name
// selects or creates a trie path; the class name path (outer, inner, …)
// collapses to a single entry at the outermost short name, since that is
// the only name a fully-qualified lookup can ever stop at directly. A
// name already present is left alone — callers insert in priority order,
// so the first writer for a name wins.
func (t *TopLevelIndex) Insert(s sym.ClassSymbol) {
	pkg := s.PackageName()
	bn := s.BinaryName()
	outerName := bn
	if i := strings.IndexByte(bn, '$'); i >= 0 {
		outerName = bn[:i]
	}

	node := t.root
	if pkg != "" {
		for _, seg := range strings.Split(pkg, "/") {
			node = node.child(seg, true)
		}
	}

	if _, exists := node.scope[outerName]; exists {
		return
	}
	outerBinary := outerName
	if pkg != "" {
		outerBinary = pkg + "/" + outerName
	}
	node.scope[outerName] = sym.NewClassSymbol(outerBinary)
}

// LookupPackage returns the Scope of top-level short names declared
// directly in the named package, or nil if no class has ever been
// inserted under that package path.
func (t *TopLevelIndex) LookupPackage(segments []string) Scope {
	node := t.root
	for _, seg := range segments {
		node = node.child(seg, false)
		if node == nil {
			return nil
		}
	}
	return node.scope
}

// Lookup resolves a fully-qualified dotted name. It tries the longest
// leading run of segments as a package path first, backing off one
// segment at a time until a package/class-name split succeeds; this
// mirrors how a reader disambiguates "a.b.C" without knowing in advance
// where the package path ends and the class name begins.
func (t *TopLevelIndex) Lookup(segments []string) (LookupResult, bool) {
	for split := len(segments) - 1; split >= 0; split-- {
		node := t.root
		ok := true
		for _, seg := range segments[:split] {
			node = node.child(seg, false)
			if node == nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if s, found := node.scope[segments[split]]; found {
			return LookupResult{Sym: s, Remaining: segments[split+1:]}, true
		}
	}
	return LookupResult{}, false
}
