// Package optional contains a value that may be present or absent.
//
// The e621 API distinguishes between a parameter that was not supplied and
// a parameter supplied with a zero value (page=0, no_unvote=false). A
// [Value] keeps that distinction where a plain Go zero value cannot.
package optional

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// ErrNone is the panic value of [Value.Unwrap] on an absent value.
var ErrNone = errors.New("optional: unwrap of an absent value")

// Value is an optional value. The zero value is absent.
type Value[T any] struct {
	indirect *T
}

// None returns an absent [Value].
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some returns a present [Value] wrapping value. Wrapping a nil pointer
// yields an absent value.
func Some[T any](value T) Value[T] {
	rv := reflect.ValueOf(&value).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return None[T]()
		}
	}
	return Value[T]{indirect: &value}
}

// IsNone returns whether the value is absent.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// Unwrap returns the underlying value and panics with [ErrNone] when absent.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic(ErrNone)
	}
	return *v.indirect
}

// UnwrapOr returns the underlying value or fallback when absent.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.indirect == nil {
		return fallback
	}
	return *v.indirect
}

// UnwrapAny is like Unwrap but erases the type. Encoders that only need
// the dynamic value use it.
func (v Value[T]) UnwrapAny() any {
	return v.Unwrap()
}

// Or returns v when present, fallback otherwise.
func (v Value[T]) Or(fallback Value[T]) Value[T] {
	if v.indirect == nil {
		return fallback
	}
	return v
}

// MarshalJSON implements json.Marshaler. An absent value encodes as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.indirect == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*v.indirect)
}

// UnmarshalJSON implements json.Unmarshaler. A null input yields an absent value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.indirect = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*v = Some(value)
	return nil
}
