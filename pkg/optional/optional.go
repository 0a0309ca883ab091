// Package optional provides compact present-or-absent containers for
// trivially copyable payloads, used to represent document fields that may be
// legitimately missing.
//
// Every variant shares one access contract: Get returns the payload together
// with an ok flag that is false on empty access, and MustGet panics with
// ErrEmptyAccess instead. Callers write the same code path regardless of
// which variant they hold.
//
// Containers are plain value types. Independent instances may be used from
// any number of goroutines; a single shared instance needs external
// serialization like any other value.
package optional

import "errors"

// ErrEmptyAccess is the panic value of MustGet on an absent container.
var ErrEmptyAccess = errors.New("optional: empty access")

// Value is the generic variant: payload storage plus an explicit presence
// flag. The zero Value is absent. For float32 and float64 payloads prefer
// Float32 and Float64, which encode absence without the flag.
type Value[T any] struct {
	val     T
	present bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Present reports whether a payload has been set and not cleared.
func (o Value[T]) Present() bool {
	return o.present
}

// Get returns the payload. ok is false when the container is absent; the
// returned payload is the zero value in that case and must not be used.
func (o Value[T]) Get() (val T, ok bool) {
	if !o.present {
		var zero T
		return zero, false
	}
	return o.val, true
}

// MustGet returns the payload, panicking with ErrEmptyAccess when the
// container is absent.
func (o Value[T]) MustGet() T {
	if !o.present {
		panic(ErrEmptyAccess)
	}
	return o.val
}

// Set stores v and marks the container present.
func (o *Value[T]) Set(v T) {
	o.val = v
	o.present = true
}

// Clear marks the container absent.
func (o *Value[T]) Clear() {
	var zero T
	o.val = zero
	o.present = false
}
