package collections

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrInvalidOperation = errors.New("collections: invalid operation")

// Methods is a set of named zero-argument functions, it stands for an item that
// can be called by method name.
type Methods[R any] map[string]func() R

// Invoke calls the method name on every item and returns the results in order.
// Each method is called exactly once.
//
// It stops at the first item without the method and returns an error wrapping
// [ErrInvalidOperation].
func Invoke[R any](items []Methods[R], name string) ([]R, error) {
	res := make([]R, 0, len(items))
	for i, it := range items {
		fn, ok := it[name]
		if !ok || fn == nil {
			return nil, missingMethod(i, name)
		}
		res = append(res, fn())
	}
	return res, nil
}

// InvokeAll likes the [Invoke], but it keeps going on missing methods.
// The results only hold the successful calls, and the error combines one
// [ErrInvalidOperation] per item without the method.
func InvokeAll[R any](items []Methods[R], name string) (res []R, err error) {
	res = make([]R, 0, len(items))
	for i, it := range items {
		fn, ok := it[name]
		if !ok || fn == nil {
			err = multierr.Append(err, missingMethod(i, name))
			continue
		}
		res = append(res, fn())
	}
	return
}

func missingMethod(i int, name string) error {
	return fmt.Errorf("item %d has no method %q: %w", i, name, ErrInvalidOperation)
}
