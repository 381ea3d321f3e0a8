package catalog

import "errors"

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidQuery = errors.New("invalid catalog query")
)
