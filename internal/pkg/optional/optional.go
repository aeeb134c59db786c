// Package optional models a JSON field that distinguishes between a key that
// is absent, a key set to null, and a key carrying a value. Plain pointers
// collapse the first two cases, which breaks partial-update semantics.
package optional

import "encoding/json"

type Field[T any] struct {
	set   bool
	valid bool
	value T
}

func Of[T any](value T) Field[T] {
	return Field[T]{set: true, valid: true, value: value}
}

func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// Set reports whether the key appeared in the payload at all.
func (f Field[T]) Set() bool { return f.set }

// Valid reports whether the key carried a non-null value.
func (f Field[T]) Valid() bool { return f.set && f.valid }

func (f Field[T]) Value() T { return f.value }

// Get returns the value and whether it is usable (present and non-null).
func (f Field[T]) Get() (T, bool) {
	return f.value, f.Valid()
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.valid = false
		var zero T
		f.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
