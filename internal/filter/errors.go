package filter

import "errors"

var (
	ErrInvalidJSON    = errors.New("invalid JSON in OAS document")
	ErrNotRegularFile = errors.New("not a regular file")
)
