// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")

	// Company / onboarding errors
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists for this partner")
	ErrInvalidStep          = errors.New("invalid onboarding step")

	// Verification errors
	ErrMissingEvidence = errors.New("verification evidence incomplete")
	ErrAlreadyVerified = errors.New("company already verified")

	// Growth request errors
	ErrRequestNotFound   = errors.New("growth request not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")
)
