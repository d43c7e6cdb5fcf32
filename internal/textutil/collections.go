package textutil

import (
	"cmp"
	"slices"

	"github.com/mmr-tortoise/fry-tempura/internal/model"
)

// Sorter builds a three-way comparator from a key function.
//
// For ascending order a larger key makes an element compare greater; for
// descending order the result is inverted. Strings compare byte-wise and
// numbers by magnitude, with no locale-aware collation.
func Sorter[T any, K cmp.Ordered](key func(T) K, order model.SortOrder) func(a, b T) int {
	return func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if order.IsDesc() {
			return -c
		}
		return c
	}
}

// OrderBy returns a new slice holding the elements of items sorted by key.
//
// items is never modified. The relative order of elements with equal keys
// is unspecified. A nil or empty input yields an empty, non-nil slice.
func OrderBy[T any, K cmp.Ordered](items []T, key func(T) K, order model.SortOrder) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	slices.SortFunc(sorted, Sorter(key, order))
	return sorted
}

// Identity is the default key for OrderBy when elements are their own key.
func Identity[T cmp.Ordered](v T) T {
	return v
}
