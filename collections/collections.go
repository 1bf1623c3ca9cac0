// Package collections provides some useful functions for working with data structures
// that contain multiple elements.
//
// The helpers mirror the classic underscore set (each, map, reduce, first, last,
// find, filter, reject, every, some, contains, where, findWhere, pluck, max, invoke),
// written as plain loops over slices and maps.
// None of them mutates its input.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/csharp/programming-guide/concepts/collections
//   - Rust: https://doc.rust-lang.org/std/collections/index.html
//   - Swift: https://github.com/apple/swift-collections
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Python3: https://docs.python.org/3/library/collections.html
package collections

// Each calls fn once for every item, in order.
func Each[T any](items []T, fn func(it T)) {
	for _, it := range items {
		fn(it)
	}
}

// EachValue calls fn once for every value of m.
// The visiting order is the map iteration order, which is unspecified.
func EachValue[K comparable, V any](m map[K]V, fn func(v V)) {
	for _, v := range m {
		fn(v)
	}
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) []R {
	res := make([]R, len(items))
	for i, item := range items {
		res[i] = transform(item)
	}
	return res
}

// Reduce folds items from left to right, starting with initial.
func Reduce[T, A any](items []T, fn func(acc A, it T) A, initial A) A {
	acc := initial
	for _, it := range items {
		acc = fn(acc, it)
	}
	return acc
}

// ReduceZero likes the [Reduce], but the accumulator starts at the zero value of A.
//
// Unlike most reduce implementations the first item is NOT used as the seed,
// so ReduceZero(items, fn) is always Reduce(items, fn, zero).
func ReduceZero[T, A any](items []T, fn func(acc A, it T) A) A {
	var zero A
	return Reduce(items, fn, zero)
}
