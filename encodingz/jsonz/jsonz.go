// Package jsonz provides generic helpers around encoding/json.
package jsonz

import (
	"encoding/json"
	"fmt"
	"os"
)

func Unmarshal[T any](bs []byte) (*T, error) {
	var t T
	if err := json.Unmarshal(bs, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ReadFile reads the named file and unmarshals its content into a new T.
func ReadFile[T any](name string) (*T, error) {
	bs, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Unmarshal[T](bs)
}

// Records unmarshals a JSON array of objects.
// Numbers are decoded as float64.
func Records(bs []byte) ([]map[string]any, error) {
	res, err := Unmarshal[[]map[string]any](bs)
	if err != nil {
		return nil, err
	}
	return *res, nil
}
