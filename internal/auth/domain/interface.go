package domain

import (
	"context"
	"time"
)

// Lookup methods return (nil, nil) when the row does not exist; an error
// means the store itself failed.

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

type RefreshTokenRepository interface {
	// Replace deletes every refresh token the user holds and inserts the new
	// one in a single transaction (single active session per user).
	Replace(ctx context.Context, rt *RefreshToken) error
	// Redeem atomically deletes a live token and returns its owner. Exactly
	// one of any number of concurrent redemptions of the same token succeeds.
	Redeem(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type EphemeralTokenRepository interface {
	// Replace removes prior live tokens of the same kind for the user before
	// inserting, so at most one live token per kind per user exists.
	Replace(ctx context.Context, et *EphemeralToken) error
	// RedeemEmailVerification marks the token used and flips the user's
	// email_verified flag in one transaction.
	RedeemEmailVerification(ctx context.Context, token string) (string, error)
	// RedeemPasswordReset marks the token used, swaps the password hash and
	// revokes every refresh token the user holds, all in one transaction.
	RedeemPasswordReset(ctx context.Context, token, newHash string) (string, error)
}

type LoginAttemptRepository interface {
	Record(ctx context.Context, attempt *LoginAttempt) error
	// CountRecentFailures counts failed attempts for the email within the
	// trailing window, ignoring any that precede the most recent success.
	CountRecentFailures(ctx context.Context, email string, window time.Duration) (int, error)
}

type OAuthRepository interface {
	SaveExchangeState(ctx context.Context, st *OAuthExchangeState) error
	// ConsumeExchangeState atomically deletes the record and returns it,
	// regardless of expiry; unknown states yield (nil, nil). Expiry is
	// checked by the caller so the record is gone after any outcome.
	ConsumeExchangeState(ctx context.Context, state string) (*OAuthExchangeState, error)
	UpsertProviderTokens(ctx context.Context, pt *ProviderTokens) error
}

type TokenBlacklistRepository interface {
	Add(ctx context.Context, bt *BlacklistedToken) error
	Contains(ctx context.Context, signature string) (bool, error)
}
