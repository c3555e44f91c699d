package school

import "errors"

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrNotFound       = errors.New("school not found")
)
