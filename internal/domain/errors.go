package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid status transition: completed documents cannot return to draft")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
