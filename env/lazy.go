package env

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by GetOrError when a key belongs to neither the
// lazy layer nor its base environment.
var ErrNotFound = errors.New("symbol not found")

// CycleError is returned by GetOrError when completing Key would require
// completing Key itself, directly or transitively.
type CycleError[K comparable] struct {
	Key K
}

func (e *CycleError[K]) Error() string {
	return fmt.Sprintf("cyclic dependency while completing %v", e.Key)
}

// Completer computes the bound value for k on first demand. It may call
// back into self to look up other keys, including other keys owned by the
// same Lazy environment — that recursion is exactly how hierarchy
// resolution and constant evaluation drive each other's completion.
type Completer[K comparable, V any] func(self *Lazy[K, V], k K) (V, error)

// Lazy is an environment that completes entities on demand and memoizes
// the result. A completer in progress for a key is tracked so that
// re-entering that key's completion raises a CycleError instead of
// recursing forever.
type Lazy[K comparable, V any] struct {
	completers map[K]Completer[K, V]
	base       Env[K, V]

	memo       map[K]V
	errs       map[K]error
	done       map[K]bool
	inProgress map[K]bool
}

// NewLazy builds a lazy environment over the given completers, falling
// back to base for any key the lazy layer does not own.
func NewLazy[K comparable, V any](completers map[K]Completer[K, V], base Env[K, V]) *Lazy[K, V] {
	return &Lazy[K, V]{
		completers: completers,
		base:       base,
		memo:       make(map[K]V),
		errs:       make(map[K]error),
		done:       make(map[K]bool),
		inProgress: make(map[K]bool),
	}
}

// Get implements Env. A completion failure (including a cycle) collapses
// to "absent"; callers that need to distinguish the two should call
// GetOrError instead.
func (l *Lazy[K, V]) Get(k K) (V, bool) {
	v, err := l.GetOrError(k)
	if err != nil {
		var zero V
		return zero, false
	}
	return v, true
}

// GetOrError returns the completed value for k, or the error the
// completer failed with (which may be a *CycleError). Results — including
// failures — are memoized: a completer runs at most once per key.
func (l *Lazy[K, V]) GetOrError(k K) (V, error) {
	completer, owned := l.completers[k]
	if !owned {
		if l.base == nil {
			var zero V
			return zero, ErrNotFound
		}
		if v, ok := l.base.Get(k); ok {
			return v, nil
		}
		var zero V
		return zero, ErrNotFound
	}

	if l.done[k] {
		return l.memo[k], l.errs[k]
	}

	if l.inProgress[k] {
		var zero V
		return zero, &CycleError[K]{Key: k}
	}

	l.inProgress[k] = true
	v, err := completer(l, k)
	delete(l.inProgress, k)

	l.done[k] = true
	l.memo[k] = v
	l.errs[k] = err
	return v, err
}
