package postgres

import (
	"context"
	"fmt"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
)

type TokenBlacklistRepository struct {
	db DB
}

func NewTokenBlacklistRepository(db DB) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{db: db}
}

func (r *TokenBlacklistRepository) Add(ctx context.Context, bt *domain.BlacklistedToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO token_blacklist (id, user_id, signature, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (signature) DO NOTHING
	`, bt.ID, bt.UserID, bt.Signature, bt.ExpiresAt, bt.CreatedAt)
	return err
}

// Contains only matches entries that have not outlived the token they block;
// expired rows are dead weight until cleanup, never false positives.
func (r *TokenBlacklistRepository) Contains(ctx context.Context, signature string) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM token_blacklist WHERE signature = $1 AND expires_at > now()
		)
	`, signature)

	var found bool
	if err := row.Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return found, nil
}
