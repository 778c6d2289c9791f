package domain

import "errors"

// Auth errors.
var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Catalog errors. Shared across the five resources so the HTTP layer maps
// them to status codes in one place.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrRecordExists   = errors.New("record already exists")
)
