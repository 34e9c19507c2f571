// Package env implements partial functions from symbol to entity, with
// simple (eager), compound (chained, first-hit-wins), and lazy
// (on-demand, cycle-detecting) variants. Binding runs single-threaded
// and cooperative, so none of these types take any locks.
package env

// Env is a partial function from key to entity. Get returns the entity and
// true, or the zero value and false if the key is absent.
type Env[K comparable, V any] interface {
	Get(k K) (V, bool)
}

// Simple is an eagerly populated environment backed by a plain map.
type Simple[K comparable, V any] struct {
	m map[K]V
}

// NewSimple wraps an already-built map as an Env. The map is not copied;
// callers should stop mutating it once it is handed to NewSimple, since
// entities are never mutated after publication.
func NewSimple[K comparable, V any](m map[K]V) *Simple[K, V] {
	if m == nil {
		m = make(map[K]V)
	}
	return &Simple[K, V]{m: m}
}

func (s *Simple[K, V]) Get(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// AsMap exposes the underlying map for iteration. Callers must not mutate
// the result.
func (s *Simple[K, V]) AsMap() map[K]V { return s.m }

// -----------------------------------------------------------------------------

// Compound composes environments with leftmost-wins priority: Get tries
// each layer in order and returns the first hit. Append is associative and
// returns a new Compound, leaving the receiver untouched.
type Compound[K comparable, V any] struct {
	layers []Env[K, V]
}

// Of starts a Compound with a single base layer.
func Of[K comparable, V any](e Env[K, V]) *Compound[K, V] {
	return &Compound[K, V]{layers: []Env[K, V]{e}}
}

// Append returns a new Compound consulting e only after every layer already
// in the receiver has missed.
func (c *Compound[K, V]) Append(e Env[K, V]) *Compound[K, V] {
	layers := make([]Env[K, V], len(c.layers)+1)
	copy(layers, c.layers)
	layers[len(c.layers)] = e
	return &Compound[K, V]{layers: layers}
}

func (c *Compound[K, V]) Get(k K) (V, bool) {
	for _, l := range c.layers {
		if l == nil {
			continue
		}
		if v, ok := l.Get(k); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}
