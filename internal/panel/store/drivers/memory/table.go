package memory

import (
	"slices"

	"github.com/aussiebroadwan/pandda/internal/panel/store"
)

// table is an insertion-ordered collection keyed by ID. Rows are stored and
// returned by value so callers never alias store memory.
type table[T any] struct {
	rows  []T
	id    func(T) string
	clone func(T) T
}

func newTable[T any](id func(T) string, clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{id: id, clone: clone}
}

func (t *table[T]) index(id string) int {
	return slices.IndexFunc(t.rows, func(v T) bool { return t.id(v) == id })
}

func (t *table[T]) get(id string) (T, error) {
	i := t.index(id)
	if i < 0 {
		var zero T
		return zero, store.ErrNotFound
	}
	return t.clone(t.rows[i]), nil
}

func (t *table[T]) list() []T {
	out := make([]T, len(t.rows))
	for i, v := range t.rows {
		out[i] = t.clone(v)
	}
	return out
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, v := range t.rows {
		if match(v) {
			return t.clone(v), true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) any(match func(T) bool) bool {
	return slices.ContainsFunc(t.rows, match)
}

func (t *table[T]) insert(v T) error {
	if t.index(t.id(v)) >= 0 {
		return store.ErrAlreadyExists
	}
	t.rows = append(t.rows, t.clone(v))
	return nil
}

func (t *table[T]) update(v T) error {
	i := t.index(t.id(v))
	if i < 0 {
		return store.ErrNotFound
	}
	t.rows[i] = t.clone(v)
	return nil
}

func (t *table[T]) delete(id string) error {
	i := t.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

func (t *table[T]) copy() *table[T] {
	return &table[T]{rows: t.list(), id: t.id, clone: t.clone}
}
