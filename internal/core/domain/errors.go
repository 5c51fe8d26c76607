package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("missing or malformed input")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrExpertExists   = errors.New("expert already exists")
	ErrExpertNotFound = errors.New("expert not found")

	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus rejects a transition target outside the allowed set.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrBookingFinalized flags a transition attempted on a booking that
	// already left pending.
	ErrBookingFinalized = errors.New("booking already finalized")
)
