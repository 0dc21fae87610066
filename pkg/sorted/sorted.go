// Package sorted places records into slices that are already ordered by a key.
package sorted

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidKey = errors.New("invalid sort key")

// InvalidKeyError reports a record with no usable sort key. Index is -1 for
// the record being inserted.
type InvalidKeyError struct {
	Index int
}

func (e *InvalidKeyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: new item", ErrInvalidKey)
	}

	return fmt.Sprintf("%s: item %d", ErrInvalidKey, e.Index)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// Search returns the leftmost index i such that key(items[i]) >= k.
func Search[T any, K cmp.Ordered](items []T, k K, key func(T) K) int {
	left, right := 0, len(items)

	for left < right {
		mid := int(uint(left+right) >> 1)

		if key(items[mid]) < k {
			left = mid + 1
		} else {
			right = mid
		}
	}

	return left
}

// Insert returns a new slice holding items plus item, with item placed
// before the first element whose key is not less than its own. items is
// never modified.
func Insert[T any, K cmp.Ordered](items []T, item T, key func(T) K) []T {
	return place(items, item, Search(items, key(item), key))
}

// InsertFunc is Insert for keys that may be absent. A missing key on the
// new item or on any element of items fails the whole call.
func InsertFunc[T any, K cmp.Ordered](items []T, item T, key func(T) (K, bool)) ([]T, error) {
	k, ok := key(item)
	if !ok {
		return nil, &InvalidKeyError{Index: -1}
	}

	keys := make([]K, len(items))

	for i := range items {
		ik, ok := key(items[i])
		if !ok {
			return nil, &InvalidKeyError{Index: i}
		}

		keys[i] = ik
	}

	i := Search(keys, k, func(v K) K { return v })

	return place(items, item, i), nil
}

func place[T any](items []T, item T, i int) []T {
	out := make([]T, len(items)+1)

	copy(out, items[:i])
	out[i] = item
	copy(out[i+1:], items[i:])

	return out
}
