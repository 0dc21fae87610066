// Package state mirrors a server-side list locally so created and updated
// records can be placed without fetching the list again.
package state

import (
	"cmp"
	"slices"

	"github.com/lexcomply/admin/pkg/sorted"
)

type Collection[T any, K cmp.Ordered] struct {
	id    func(T) string
	items []T
	key   func(T) K
}

func New[T any, K cmp.Ordered](items []T, id func(T) string, key func(T) K) *Collection[T, K] {
	c := &Collection[T, K]{
		id:    id,
		items: slices.Clone(items),
		key:   key,
	}

	slices.SortStableFunc(c.items, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})

	return c
}

// Add places item at its sorted position and returns that position.
func (c *Collection[T, K]) Add(item T) int {
	c.items = sorted.Insert(c.items, item, c.key)
	return sorted.Search(c.items, c.key(item), c.key)
}

func (c *Collection[T, K]) Items() []T {
	return slices.Clone(c.items)
}

func (c *Collection[T, K]) Len() int {
	return len(c.items)
}

// Remove drops every record whose id is listed and reports how many went.
func (c *Collection[T, K]) Remove(ids ...string) int {
	drop := map[string]bool{}

	for _, id := range ids {
		drop[id] = true
	}

	n := len(c.items)

	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		return drop[c.id(item)]
	})

	return n - len(c.items)
}

// Replace swaps the record sharing item's id for item, moving it if its key
// changed. Unknown ids are added.
func (c *Collection[T, K]) Replace(item T) int {
	c.Remove(c.id(item))
	return c.Add(item)
}
