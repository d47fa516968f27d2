package domain

import "errors"

// Error kinds returned by stores and services. Handlers map these to HTTP
// status codes in one place; nothing in the core logs or panics.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
