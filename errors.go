package minichart

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidData   = errors.New("invalid data")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidOption = errors.New("invalid option")
)

func invalidData(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidData, format, args...)
}

func outOfRange(format string, args ...any) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}
