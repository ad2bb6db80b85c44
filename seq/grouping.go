package seq

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"
)

// Grouping maps keys to the elements that produced them. Keys keep the order
// of their first occurrence and each group keeps the original element order.
type Grouping[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// NewGrouping returns an empty Grouping.
func NewGrouping[K comparable, T any]() *Grouping[K, T] {
	return &Grouping[K, T]{groups: make(map[K][]T)}
}

// Add appends item to the group of key, registering key on first use.
func (g *Grouping[K, T]) Add(key K, item T) {
	group, ok := g.groups[key]
	if !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(group, item)
}

// Len returns the number of distinct keys.
func (g *Grouping[K, T]) Len() int { return len(g.keys) }

// Keys returns the keys in first-occurrence order.
func (g *Grouping[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the group for key.
func (g *Grouping[K, T]) Get(key K) ([]T, bool) {
	group, ok := g.groups[key]
	return group, ok
}

// All yields every key with its group in first-occurrence order.
func (g *Grouping[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, key := range g.keys {
			if !yield(key, g.groups[key]) {
				return
			}
		}
	}
}

// Pairs yields every key with its group as a pair.
func (g *Grouping[K, T]) Pairs() iter.Seq[types.Pair[K, []T]] {
	return func(yield func(types.Pair[K, []T]) bool) {
		for key, group := range g.All() {
			if !yield(types.Pair[K, []T]{Left: key, Right: group}) {
				return
			}
		}
	}
}

// GroupBy drains the sequence and groups its elements by the key returned
// from selector.
func GroupBy[S Sequence[T], T any, K comparable](src S, selector func(T, int) K) *Grouping[K, T] {
	g := NewGrouping[K, T]()
	index := 0
	for item := range src {
		g.Add(selector(item, index), item)
		index++
	}
	return g
}
