package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpovirk/turbine/sym"
)

func TestMapScope_HitAndMiss(t *testing.T) {
	s := sym.NewClassSymbol("a/Widget")
	m := MapScope{"Widget": s}

	r := m.Lookup("Widget")
	assert.True(t, r.Found)
	assert.Equal(t, s, r.Sym)

	r = m.Lookup("Gadget")
	assert.False(t, r.Found)
}

func TestCompoundScope_HigherPriorityLayerWins(t *testing.T) {
	low := MapScope{"X": sym.NewClassSymbol("a/X")}
	high := MapScope{"X": sym.NewClassSymbol("b/X")}

	cs := NewCompoundScope(low).Append(high)

	r := cs.Lookup("X")
	assert.True(t, r.Found)
	assert.Equal(t, sym.NewClassSymbol("b/X"), r.Sym)
}

func TestCompoundScope_FallsThroughToLowerLayer(t *testing.T) {
	low := MapScope{"Y": sym.NewClassSymbol("a/Y")}
	high := MapScope{"X": sym.NewClassSymbol("b/X")}

	cs := NewCompoundScope(low).Append(high)

	r := cs.Lookup("Y")
	assert.True(t, r.Found)
	assert.Equal(t, sym.NewClassSymbol("a/Y"), r.Sym)
}

func TestCompoundScope_StopsAtFirstAmbiguousLayer(t *testing.T) {
	ambiguous := WildScope{sources: []Scope{
		MapScope{"X": sym.NewClassSymbol("a/X")},
		MapScope{"X": sym.NewClassSymbol("b/X")},
	}}
	lower := MapScope{"X": sym.NewClassSymbol("c/X")}

	cs := NewCompoundScope(lower).Append(&ambiguous)

	r := cs.Lookup("X")
	assert.True(t, r.Ambiguous)
}

func TestCompoundScope_AppendDoesNotMutateReceiver(t *testing.T) {
	base := NewCompoundScope(MapScope{"a": sym.NewClassSymbol("p/A")})
	extended := base.Append(MapScope{"b": sym.NewClassSymbol("p/B")})

	r := base.Lookup("b")
	assert.False(t, r.Found)

	r = extended.Lookup("b")
	assert.True(t, r.Found)
}

func TestWildScope_SameSymbolFromTwoSourcesIsNotAmbiguous(t *testing.T) {
	s := sym.NewClassSymbol("a/X")
	w := NewWildScope(MapScope{"X": s}, MapScope{"X": s})

	r := w.Lookup("X")
	assert.True(t, r.Found)
	assert.False(t, r.Ambiguous)
}

func TestWildScope_DifferentSymbolsAreAmbiguous(t *testing.T) {
	w := NewWildScope(
		MapScope{"X": sym.NewClassSymbol("a/X")},
		MapScope{"X": sym.NewClassSymbol("b/X")},
	)

	r := w.Lookup("X")
	assert.True(t, r.Ambiguous)
}

func TestWildScope_SkipsNilSources(t *testing.T) {
	w := NewWildScope(nil, MapScope{"X": sym.NewClassSymbol("a/X")})
	r := w.Lookup("X")
	assert.True(t, r.Found)
}
