package vector

import "errors"

var (
	ErrOutOfRange = errors.New("index out of range")
)
