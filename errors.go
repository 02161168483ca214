package lexis

import (
	"errors"
)

var (
	// ErrClosed is returned by every Library operation after Close.
	ErrClosed = errors.New("library is closed")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
