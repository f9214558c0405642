package errors

import (
	"errors"
)

// Sentinel errors returned by the service layer. Handlers translate them to
// HTTP status codes; the messages are safe to show to clients. Token-rejection
// paths deliberately share one sentinel so callers cannot tell a malformed
// token from an expired or forged one.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrWeakPassword         = errors.New("password does not meet the strength requirements")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrRefreshTokenInvalid  = errors.New("invalid or expired refresh token")
	ErrEphemeralTokenSpent  = errors.New("token is invalid, expired or already used")
	ErrUserNotFound         = errors.New("user not found")
	ErrOAuthStateMismatch   = errors.New("oauth state is invalid or expired")
	ErrOAuthProvider        = errors.New("external provider error")
	ErrOAuthEmailUnverified = errors.New("provider account has no verified email")
)
