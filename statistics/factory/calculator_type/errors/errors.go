package errors

import "errors"

var (
	ErrEmptyDataset        = errors.New("no trips match the selected filters")
	ErrColumnWithoutValues = errors.New("column has no values")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
)
