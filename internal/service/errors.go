package service

import "errors"

// Typed errors for mapping onto HTTP status codes in the delivery layer.
var (
	// Domain validation/state errors.
	ErrValidation         = errors.New("validation error")
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailTaken         = errors.New("student with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
