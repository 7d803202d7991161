package optional

import (
	"bytes"
	"encoding/json"
)

type State uint8

const (
	Unset State = iota
	Clear
	Set
)

// Field is a JSON request field that distinguishes an absent key (Unset), an
// explicit null (Clear) and a value (Set). Values of the wrong JSON type are
// recorded as Invalid and otherwise treated as Unset.
type Field[T any] struct {
	state   State
	value   T
	invalid bool
}

func Of[T any](v T) Field[T] {
	return Field[T]{state: Set, value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{state: Clear}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.state = Clear
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		f.state = Unset
		f.invalid = true
		return nil
	}
	f.state = Set
	f.value = v
	return nil
}

func (f Field[T]) State() State { return f.state }

func (f Field[T]) IsSet() bool { return f.state == Set }

func (f Field[T]) IsClear() bool { return f.state == Clear }

func (f Field[T]) IsUnset() bool { return f.state == Unset }

// Invalid reports whether the key was present with a value of the wrong type.
func (f Field[T]) Invalid() bool { return f.invalid }

// Get returns the value and whether one was set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == Set
}
