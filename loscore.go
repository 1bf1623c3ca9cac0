// Package loscore provides some basic collection utilities.
//
// The stand-alone helpers live in the [collections] package;
// [Slice] chains the ones that keep the item type.
package loscore

import "github.com/awp3/loscore/collections"

// Slice is a generic slice type that allows operations on slices via pointers.
//
//	odds := loscore.Of(1, 2, 3, 4, 5).Reject(isEven).Initial().Get() // [1 3]
type Slice[T any] []T

func Of[T any](elems ...T) *Slice[T] {
	res := Slice[T](elems)
	return &res
}

func (a *Slice[T]) Append(elems ...T) {
	*a = append(*a, elems...)
}

func (a *Slice[T]) Get() []T {
	return *a
}

func (a *Slice[T]) Len() int {
	return len(*a)
}

func (a *Slice[T]) Each(fn func(it T)) *Slice[T] {
	collections.Each(*a, fn)
	return a
}

func (a *Slice[T]) Map(fn func(it T) T) *Slice[T] {
	return wrap(collections.Map(*a, fn))
}

func (a *Slice[T]) Filter(predicate func(it T) bool) *Slice[T] {
	return wrap(collections.Filter(*a, predicate))
}

func (a *Slice[T]) Reject(predicate func(it T) bool) *Slice[T] {
	return wrap(collections.Reject(*a, predicate))
}

func (a *Slice[T]) First() *Slice[T] {
	return wrap(collections.First(*a))
}

func (a *Slice[T]) Take(n int) *Slice[T] {
	return wrap(collections.Take(*a, n))
}

func (a *Slice[T]) Initial() *Slice[T] {
	return wrap(collections.Initial(*a))
}

func (a *Slice[T]) InitialN(n int) *Slice[T] {
	return wrap(collections.InitialN(*a, n))
}

func (a *Slice[T]) LastN(n int) *Slice[T] {
	return wrap(collections.LastN(*a, n))
}

// The following methods end a chain.

func (a *Slice[T]) Last() (T, bool) {
	return collections.Last(*a)
}

func (a *Slice[T]) Find(predicate func(it T) bool) (T, bool) {
	return collections.Find(*a, predicate)
}

func (a *Slice[T]) Every(predicate func(it T) bool) bool {
	return collections.Every(*a, predicate)
}

func (a *Slice[T]) Some(predicate func(it T) bool) bool {
	return collections.Some(*a, predicate)
}

func (a *Slice[T]) Reduce(fn func(acc T, it T) T, initial T) T {
	return collections.Reduce(*a, fn, initial)
}

func wrap[T any](s []T) *Slice[T] {
	res := Slice[T](s)
	return &res
}
