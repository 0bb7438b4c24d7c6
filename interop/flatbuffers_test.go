package interop_test

import (
	"errors"
	"testing"

	"github.com/gogama/flatgeobuf/flatgeobuf/flat"
	"github.com/gogama/streamheader/interop"
	"github.com/stretchr/testify/require"
)

func TestFlatBufferSafe(t *testing.T) {
	require.NoError(t, interop.FlatBufferSafe(func() error { return nil }))

	errFoo := errors.New("foo")
	require.ErrorIs(t, interop.FlatBufferSafe(func() error { return errFoo }), errFoo)

	err := interop.FlatBufferSafe(func() error { panic("boom") })
	require.ErrorIs(t, err, interop.ErrPanic)
	require.Contains(t, err.Error(), "boom")
}

func TestFlatBufferSafeCorruptTable(t *testing.T) {
	// The root offset points far outside the buffer.
	buf := []byte{0xff, 0xff, 0x00, 0x00}
	err := interop.FlatBufferSafe(func() error {
		hdr := flat.GetRootAsHeader(buf, 0)
		_ = hdr.Name()
		return nil
	})
	require.ErrorIs(t, err, interop.ErrPanic)
}

func TestFlatBufferValue(t *testing.T) {
	v, err := interop.FlatBufferValue(func() (int, error) { return 42, nil })
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = interop.FlatBufferValue(func() (int, error) {
		var s []int
		return s[3], nil
	})
	require.ErrorIs(t, err, interop.ErrPanic)
	require.Zero(t, v)
}
