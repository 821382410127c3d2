package model

import "errors"

// Domain sentinel errors. Services wrap these with context via fmt.Errorf
// and %w; handlers map them to HTTP status codes.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidRule       = errors.New("invalid declaration rule")
	ErrDuplicateInstance = errors.New("duplicate tax return instance")
	ErrConflict          = errors.New("conflict with current state")
)
