package constant

import "time"

const (
	// DefaultUserRole is assigned to every newly registered account.
	DefaultUserRole = "user"
	AdminRole       = "admin"

	// RefreshTokenCookie carries the opaque refresh token between requests.
	RefreshTokenCookie = "refresh_token"

	// Ephemeral token kinds.
	KindEmailVerification = "email_verification"
	KindPasswordReset     = "password_reset"

	// Default ephemeral token lifetimes.
	EmailVerificationTTL = 24 * time.Hour
	PasswordResetTTL     = time.Hour

	// OAuthStateTTL bounds how long a started OAuth flow may wait for its callback.
	OAuthStateTTL = 10 * time.Minute

	// RefreshTokenBytes is the entropy of an opaque refresh or ephemeral token.
	RefreshTokenBytes = 32
)
