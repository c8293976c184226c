package rays3d

import (
	"fmt"
	"iter"
	"slices"
)

// List is a growable array of T.
type List[T any] struct {
	elems []T
}

func NewList[T any](capacity int) *List[T] {
	return &List[T]{elems: make([]T, 0, max(capacity, 0))}
}

func (l *List[T]) Add(v T) { l.elems = append(l.elems, v) }

func (l *List[T]) Len() int { return len(l.elems) }

// At returns element i. An index out of range is a programming error and panics.
func (l *List[T]) At(i int) T {
	if i < 0 || i >= len(l.elems) {
		panic(fmt.Sprintf("list index %d out of range [0,%d)", i, len(l.elems)))
	}
	return l.elems[i]
}

// All iterates elements in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice exposes the backing array for hot loops. Callers must not modify it.
func (l *List[T]) Slice() []T { return l.elems }

// SortBy stably sorts the elements with cmp.
func (l *List[T]) SortBy(cmp func(a, b T) int) { slices.SortStableFunc(l.elems, cmp) }
