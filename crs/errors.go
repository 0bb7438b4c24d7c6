package crs

import (
	"errors"
	"fmt"
)

var ErrInvalidCode = textErr("code is not a 32-bit integer")

const packageName = "crs: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...any) error {
	return fmt.Errorf(packageName+format, a...)
}
