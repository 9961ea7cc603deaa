// Package set provides a sorted-slice primitive for keeping ordered,
// distinct collections: the distinct grades of a multivector and the
// trigram index's keys and values are kept as set.Slice values in
// ascending order.
package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Slice must be sorted in ascending order.
type Slice[T constraints.Ordered] []T

// Insert x in place if not already present; returns x's index and whether
// it was newly inserted. The slice must already be sorted ascending.
func (a *Slice[T]) Insert(x T) (i int, ok bool) {
	i = sort.Search(len(*a), func(i int) bool { return (*a)[i] >= x })
	if ok = i == len(*a) || (*a)[i] != x; ok {
		*a = upsert(*a, x, i)
	}
	return
}

// Has reports whether x is present.
func (a Slice[T]) Has(x T) bool {
	i := sort.Search(len(a), func(i int) bool { return a[i] >= x })
	return !(i == len(a) || a[i] != x)
}

func upsert[T constraints.Ordered](a []T, x T, i int) []T {
	a = append(a, *new(T))
	copy(a[i+1:], a[i:])
	a[i] = x
	return a
}

// Chain is indexed positionally (not itself ordered): index i holds the
// Slice of values associated with the i-th entry of some parallel Slice.
type Chain[T constraints.Ordered] []Slice[T]

// Upsert inserts Slice{x} at position i when ok (a brand new parallel
// entry), otherwise inserts x into the existing slice at i.
func (a *Chain[T]) Upsert(x T, i int, ok bool) (int, bool) {
	if ok {
		*a = append(*a, nil)
		copy((*a)[i+1:], (*a)[i:])
		(*a)[i] = Slice[T]{x}
		return 0, true
	}
	return (*a)[i].Insert(x)
}
