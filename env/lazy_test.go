package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazy_CompletesOnDemandAndMemoizes(t *testing.T) {
	calls := map[string]int{}
	completers := map[string]Completer[string, int]{
		"a": func(self *Lazy[string, int], k string) (int, error) {
			calls[k]++
			return 1, nil
		},
	}
	l := NewLazy(completers, nil)

	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	l.Get("a")
	assert.Equal(t, 1, calls["a"], "completer should run at most once per key")
}

func TestLazy_FallsBackToBaseForUnownedKeys(t *testing.T) {
	base := NewSimple(map[string]int{"b": 2})
	l := NewLazy(map[string]Completer[string, int]{}, base)

	v, ok := l.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = l.Get("missing")
	assert.False(t, ok)
}

func TestLazy_DirectSelfReferenceIsACycle(t *testing.T) {
	completers := map[string]Completer[string, int]{
		"a": func(self *Lazy[string, int], k string) (int, error) {
			return self.GetOrError("a")
		},
	}
	l := NewLazy(completers, nil)

	_, err := l.GetOrError("a")
	var cycleErr *CycleError[string]
	assert.True(t, errors.As(err, &cycleErr))
	assert.Equal(t, "a", cycleErr.Key)
}

func TestLazy_TransitiveCycleIsDetected(t *testing.T) {
	completers := map[string]Completer[string, int]{
		"a": func(self *Lazy[string, int], k string) (int, error) {
			v, err := self.GetOrError("b")
			return v, err
		},
		"b": func(self *Lazy[string, int], k string) (int, error) {
			v, err := self.GetOrError("a")
			return v, err
		},
	}
	l := NewLazy(completers, nil)

	_, err := l.GetOrError("a")
	var cycleErr *CycleError[string]
	assert.True(t, errors.As(err, &cycleErr))
}

func TestLazy_CompletingOneKeyDoesNotBlockAnother(t *testing.T) {
	completers := map[string]Completer[string, int]{
		"a": func(self *Lazy[string, int], k string) (int, error) {
			b, _ := self.GetOrError("b")
			return b + 1, nil
		},
		"b": func(self *Lazy[string, int], k string) (int, error) {
			return 10, nil
		},
	}
	l := NewLazy(completers, nil)

	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 11, v)
}

func TestLazy_GetCollapsesErrorToAbsent(t *testing.T) {
	completers := map[string]Completer[string, int]{
		"a": func(self *Lazy[string, int], k string) (int, error) {
			return 0, errors.New("boom")
		},
	}
	l := NewLazy(completers, nil)

	_, ok := l.Get("a")
	assert.False(t, ok)

	_, err := l.GetOrError("a")
	assert.EqualError(t, err, "boom")
}
