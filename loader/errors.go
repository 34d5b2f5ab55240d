package loader

import "errors"

var (
	ErrConfiguration    = errors.New("configuration error")
	ErrDataFormat       = errors.New("data format error")
	ErrUnknownCity      = errors.New("unknown city")
	ErrMissingColumn    = errors.New("missing required column")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrColumnNotFound   = errors.New("column not found")
	ErrMissingHeader    = errors.New("missing header row")
)
