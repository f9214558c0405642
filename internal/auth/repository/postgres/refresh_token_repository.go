package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
)

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Replace enforces the single-active-session policy: the delete and the
// insert share one transaction, so a reader never observes two live tokens
// for the same user.
func (r *RefreshTokenRepository) Replace(ctx context.Context, rt *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin refresh token rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, rt.UserID); err != nil {
		return fmt.Errorf("failed to delete prior refresh tokens: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, ip_address, user_agent, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rt.ID, rt.UserID, rt.Token, rt.IPAddress, rt.UserAgent, rt.ExpiresAt, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return tx.Commit(ctx)
}

// Redeem deletes a live token and returns its owner in one statement, so of
// any number of concurrent redemptions exactly one scans a row and the rest
// see no rows.
func (r *RefreshTokenRepository) Redeem(ctx context.Context, token string) (string, error) {
	row := r.db.QueryRow(ctx, `
		DELETE FROM refresh_tokens
		WHERE token = $1 AND expires_at > now()
		RETURNING user_id
	`, token)

	var userID string
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to redeem refresh token: %w", err)
	}
	return userID, nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	return err
}

func (r *RefreshTokenRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}
