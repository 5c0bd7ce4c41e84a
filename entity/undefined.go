// Package entity defines the values produced by the factory.
//
// Optional data is modeled with pointers and nil maps: a nil field means the
// server did not send it. Strings the server may send empty use UndefinedOr,
// which keeps "sent but empty" apart from "absent".
package entity

import (
	"encoding/json"
	"fmt"
)

// UndefinedType is the type of the Undefined sentinel. It has no state, so
// every value of it is the sentinel.
type UndefinedType struct{}

// Undefined marks a field the server returned with an empty value.
var Undefined = UndefinedType{}

func (UndefinedType) String() string { return "UNDEFINED" }

// UndefinedOr holds either a T or the Undefined sentinel. The zero value is
// Undefined.
type UndefinedOr[T any] struct {
	value   T
	defined bool
}

func Defined[T any](v T) UndefinedOr[T] {
	return UndefinedOr[T]{value: v, defined: true}
}

func UndefinedValue[T any]() UndefinedOr[T] {
	return UndefinedOr[T]{}
}

// UndefinedIfEmpty maps "" to Undefined.
func UndefinedIfEmpty(s string) UndefinedOr[string] {
	if s == "" {
		return UndefinedOr[string]{}
	}
	return Defined(s)
}

func (u UndefinedOr[T]) IsUndefined() bool { return !u.defined }

func (u UndefinedOr[T]) Get() (T, bool) { return u.value, u.defined }

// Or returns the value, or fallback when undefined.
func (u UndefinedOr[T]) Or(fallback T) T {
	if !u.defined {
		return fallback
	}
	return u.value
}

func (u UndefinedOr[T]) String() string {
	if !u.defined {
		return Undefined.String()
	}
	return fmt.Sprint(u.value)
}

func (u UndefinedOr[T]) MarshalJSON() ([]byte, error) {
	if !u.defined {
		return []byte("null"), nil
	}
	return json.Marshal(u.value)
}

func (u *UndefinedOr[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = UndefinedOr[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = Defined(v)
	return nil
}
