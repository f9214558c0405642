package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
	"github.com/slimmermetai/auth-service/pkg/constant"
)

type EphemeralTokenRepository struct {
	db DB
}

func NewEphemeralTokenRepository(db DB) *EphemeralTokenRepository {
	return &EphemeralTokenRepository{db: db}
}

// Replace clears spent or stale tokens of the same kind before inserting, so
// the user holds at most one live token per kind.
func (r *EphemeralTokenRepository) Replace(ctx context.Context, et *domain.EphemeralToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin ephemeral token replace: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		DELETE FROM ephemeral_tokens
		WHERE user_id = $1 AND kind = $2 AND (used_at IS NULL OR expires_at <= now())
	`, et.UserID, et.Kind)
	if err != nil {
		return fmt.Errorf("failed to delete prior ephemeral tokens: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ephemeral_tokens (id, user_id, token, kind, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, et.ID, et.UserID, et.Token, et.Kind, et.ExpiresAt, et.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ephemeral token: %w", err)
	}

	return tx.Commit(ctx)
}

// redeem marks the token used exactly once. The UPDATE only matches unused,
// unexpired tokens of the right kind, so replays and races scan no row.
func redeem(ctx context.Context, tx pgx.Tx, token, kind string) (string, error) {
	row := tx.QueryRow(ctx, `
		UPDATE ephemeral_tokens
		SET used_at = now()
		WHERE token = $1 AND kind = $2 AND used_at IS NULL AND expires_at > now()
		RETURNING user_id
	`, token, kind)

	var userID string
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to redeem ephemeral token: %w", err)
	}
	return userID, nil
}

// RedeemEmailVerification consumes the token and flips email_verified in the
// same transaction, so the token cannot end up spent without the effect.
func (r *EphemeralTokenRepository) RedeemEmailVerification(ctx context.Context, token string) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin email verification: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userID, err := redeem(ctx, tx, token, constant.KindEmailVerification)
	if err != nil || userID == "" {
		return "", err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE users SET email_verified = TRUE, updated_at = now() WHERE id = $1
	`, userID); err != nil {
		return "", fmt.Errorf("failed to mark email verified: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return userID, nil
}

// RedeemPasswordReset consumes the token, swaps the password hash and drops
// every refresh token the user holds, all in one transaction. A new password
// always means every existing session dies with it.
func (r *EphemeralTokenRepository) RedeemPasswordReset(ctx context.Context, token, newHash string) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin password reset: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userID, err := redeem(ctx, tx, token, constant.KindPasswordReset)
	if err != nil || userID == "" {
		return "", err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
	`, userID, newHash); err != nil {
		return "", fmt.Errorf("failed to update password hash: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return "", fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return userID, nil
}
