package domain

import "time"

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastLoginAt   *time.Time
}

// RefreshToken is the long-lived opaque credential. The Token column holds a
// base64url-encoded 256-bit random value; validity is existence + expiry.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// EphemeralToken is a single-use token for email verification or password
// reset. UsedAt is set exactly once; a non-nil UsedAt or a past ExpiresAt
// makes the token unredeemable.
type EphemeralToken struct {
	ID        string
	UserID    string
	Token     string
	Kind      string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

type LoginAttempt struct {
	ID          string
	Email       string
	IPAddress   string
	UserAgent   string
	AttemptTime time.Time
	Successful  bool
}

// BlacklistedToken invalidates a bearer token before its natural expiry.
// Only the signature segment is stored, not the whole token.
type BlacklistedToken struct {
	ID        string
	UserID    string
	Signature string
	ExpiresAt time.Time
	CreatedAt time.Time
}
