package fgbconvert

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEnvelope = textErr("envelope length must be zero or an even number of at least four")
	ErrMultipleBoxes   = textErr("FlatGeobuf header holds at most one bounding box")
	ErrInvalidOption   = textErr("invalid option value")
	ErrTruncated       = textErr("buffer shorter than size prefix")
)

const packageName = "fgbconvert: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...any) error {
	return fmt.Errorf(packageName+format, a...)
}

func textPanic(text string) {
	panic(packageName + text)
}
