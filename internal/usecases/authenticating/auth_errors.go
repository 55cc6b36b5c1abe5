package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserDisabled          = errors.New("user is disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token expired")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")

	ErrMissingRequiredData = errors.New("required data is missing")
)

// AuthError carries the API error code and user context alongside the base
// error.
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError builds an AuthError without user context.
func NewAuthError(err error, code, details string) *AuthError {
	return &AuthError{Err: err, Code: code, Details: details}
}

// NewUserAuthError builds an AuthError tied to a specific user.
func NewUserAuthError(err error, code, userID, details string) *AuthError {
	return &AuthError{Err: err, Code: code, UserID: userID, Details: details}
}

// IsCredentialsError reports whether err is a credentials problem rather
// than an infrastructure failure.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}
