package apperror

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidResult = errors.New("invalid game result")
)
