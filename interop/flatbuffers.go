// Package interop contains helpers for working with generated flatbuffers
// code.
//
// Generated accessors index straight into the underlying buffer and panic
// when a table is truncated or its offsets are corrupt. The helpers here
// turn those panics into errors.
package interop

import (
	"errors"
	"fmt"
)

// ErrPanic is wrapped by every error produced from a recovered panic.
var ErrPanic = errors.New("interop: flatbuffers panic")

// FlatBufferSafe runs f and returns its error, or an error wrapping
// ErrPanic if f panics.
func FlatBufferSafe(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	err = f()
	return
}

// FlatBufferValue is FlatBufferSafe for functions that produce a value.
// On panic the zero value of T is returned.
func FlatBufferValue[T any](f func() (T, error)) (v T, err error) {
	err = FlatBufferSafe(func() error {
		var err error
		v, err = f()
		return err
	})
	if errors.Is(err, ErrPanic) {
		var zero T
		v = zero
	}
	return
}
