package collections

// Find returns the first item predicate returns truthy for.
// The second result is false if there is no such item.
func Find[V any](items []V, predicate func(it V) bool) (res V, ok bool) {
	for _, it := range items {
		if predicate(it) {
			return it, true
		}
	}
	return
}

// Filter iterates over items, returning an array of all items predicate returns truthy for.
func Filter[V any](items []V, predicate func(it V) bool) []V {
	result := make([]V, 0, len(items))
	for _, it := range items {
		if predicate(it) {
			result = append(result, it)
		}
	}
	return result
}

// Reject is the opposite of [Filter],
// it returns the items that predicate does not return truthy for.
func Reject[V any](items []V, predicate func(it V) bool) []V {
	result := make([]V, 0, len(items))
	for _, it := range items {
		if !predicate(it) {
			result = append(result, it)
		}
	}
	return result
}

// Every reports whether predicate returns truthy for all items.
// It returns true for an empty slice.
func Every[V any](items []V, predicate func(it V) bool) bool {
	for _, it := range items {
		if !predicate(it) {
			return false
		}
	}
	return true
}

// Some reports whether predicate returns truthy for any item.
func Some[V any](items []V, predicate func(it V) bool) bool {
	for _, it := range items {
		if predicate(it) {
			return true
		}
	}
	return false
}

// Contains reports whether v is in items, compared with strict equality.
// Values of an uncomparable dynamic type never match.
func Contains[V comparable](items []V, v V) bool {
	for _, it := range items {
		if equal(it, v) {
			return true
		}
	}
	return false
}
