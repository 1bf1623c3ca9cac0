package collections

import "golang.org/x/exp/constraints"

// First returns a slice holding only the first item.
// It returns an empty slice if items is empty.
func First[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return []T{items[0]}
}

// FirstN returns the items whose value is less than or equal to n.
//
// Note that this is a value filter, not a positional slice; use [Take] for the first n items.
func FirstN[T constraints.Ordered](items []T, n T) []T {
	res := make([]T, 0, len(items))
	for _, it := range items {
		if it <= n {
			res = append(res, it)
		}
	}
	return res
}

// Take returns the first n items.
func Take[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	res := make([]T, n)
	copy(res, items[:n])
	return res
}

// Initial returns all items except the last one.
func Initial[T any](items []T) []T {
	return InitialN(items, 1)
}

// InitialN returns all items except the last n.
func InitialN[T any](items []T, n int) []T {
	end := len(items) - clamp(n, len(items))
	res := make([]T, end)
	copy(res, items[:end])
	return res
}

// Last returns the last item, or false if items is empty.
func Last[T any](items []T) (res T, ok bool) {
	if len(items) == 0 {
		return
	}
	return items[len(items)-1], true
}

// LastN returns the last n items in their original order.
func LastN[T any](items []T, n int) []T {
	start := len(items) - clamp(n, len(items))
	res := make([]T, len(items)-start)
	copy(res, items[start:])
	return res
}

// clamp limits n to [0, max].
func clamp(n, max int) int {
	switch {
	case n < 0:
		return 0
	case n > max:
		return max
	default:
		return n
	}
}
