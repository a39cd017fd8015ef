package credentials

import "errors"

var (
	// Malformed requests.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingEmail        = errors.New("missing email")
	ErrInvalidParameters   = errors.New("invalid parameters")
	ErrInvalidRegistration = errors.New("invalid registration details")

	// Authorization failures.
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidResetCode = errors.New("invalid reset code")
	ErrUserExists       = errors.New("user already exists")
)
