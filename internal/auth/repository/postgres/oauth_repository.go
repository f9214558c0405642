package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
)

type OAuthRepository struct {
	db DB
}

func NewOAuthRepository(db DB) *OAuthRepository {
	return &OAuthRepository{db: db}
}

func (r *OAuthRepository) SaveExchangeState(ctx context.Context, st *domain.OAuthExchangeState) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO oauth_states (state, code_verifier, redirect_after, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, st.State, st.CodeVerifier, st.RedirectAfter, st.ExpiresAt, st.CreatedAt)
	return err
}

// ConsumeExchangeState deletes and returns the record in one statement. The
// record disappears on first use whatever the outcome; replaying the same
// state finds nothing.
func (r *OAuthRepository) ConsumeExchangeState(ctx context.Context, state string) (*domain.OAuthExchangeState, error) {
	row := r.db.QueryRow(ctx, `
		DELETE FROM oauth_states
		WHERE state = $1
		RETURNING state, code_verifier, redirect_after, expires_at, created_at
	`, state)

	var st domain.OAuthExchangeState
	err := row.Scan(&st.State, &st.CodeVerifier, &st.RedirectAfter, &st.ExpiresAt, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return &st, nil
}

func (r *OAuthRepository) UpsertProviderTokens(ctx context.Context, pt *domain.ProviderTokens) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO provider_tokens (user_id, provider, access_token, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`, pt.UserID, pt.Provider, pt.AccessToken, pt.RefreshToken, pt.ExpiresAt, pt.UpdatedAt)
	return err
}
