package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateAlias = errors.New("alias already exists")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
)
