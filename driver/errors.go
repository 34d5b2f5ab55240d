package driver

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoInput          = errors.New("input closed before an answer was given")
)
