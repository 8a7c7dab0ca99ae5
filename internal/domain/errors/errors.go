package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidID     = errors.New("invalid identifier")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidAmount = errors.New("invalid amount")
)
