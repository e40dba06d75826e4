package fit

import (
	"errors"

	"github.com/blead/padfit/pkg/encoding"
)

var (
	ErrMissingInput    = errors.New("source image path not provided")
	ErrNotFound        = errors.New("source image not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIO              = errors.New("i/o failure")

	ErrUnsupportedFormat = encoding.ErrUnsupportedFormat
)
