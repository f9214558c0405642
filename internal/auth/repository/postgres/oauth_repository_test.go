package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
	repo "github.com/slimmermetai/auth-service/internal/auth/repository/postgres"
)

func TestSaveExchangeState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewOAuthRepository(mock)
	st := &domain.OAuthExchangeState{
		State:         "state-1",
		CodeVerifier:  "verifier",
		RedirectAfter: "/dashboard",
		ExpiresAt:     time.Now().Add(10 * time.Minute),
		CreatedAt:     time.Now(),
	}

	mock.ExpectExec("INSERT INTO oauth_states").
		WithArgs(st.State, st.CodeVerifier, st.RedirectAfter, st.ExpiresAt, st.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.SaveExchangeState(context.Background(), st))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeExchangeState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewOAuthRepository(mock)
	ctx := context.Background()
	columns := []string{"state", "code_verifier", "redirect_after", "expires_at", "created_at"}

	t.Run("success returns and deletes record", func(t *testing.T) {
		expiresAt := time.Now().Add(5 * time.Minute)
		mock.ExpectQuery("DELETE FROM oauth_states").
			WithArgs("state-1").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("state-1", "verifier", "/dashboard", expiresAt, time.Now()))

		st, err := r.ConsumeExchangeState(ctx, "state-1")
		require.NoError(t, err)
		require.NotNil(t, st)
		assert.Equal(t, "verifier", st.CodeVerifier)
		assert.Equal(t, "/dashboard", st.RedirectAfter)
	})

	t.Run("unknown state yields nil", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM oauth_states").
			WithArgs("no-such-state").
			WillReturnError(pgx.ErrNoRows)

		st, err := r.ConsumeExchangeState(ctx, "no-such-state")
		require.NoError(t, err)
		assert.Nil(t, st)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM oauth_states").
			WithArgs("state-1").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ConsumeExchangeState(ctx, "state-1")
		assert.Error(t, err)
	})
}

func TestUpsertProviderTokens(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewOAuthRepository(mock)
	pt := &domain.ProviderTokens{
		UserID:       "user-123",
		Provider:     "google",
		AccessToken:  "provider-access",
		RefreshToken: "provider-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectExec("INSERT INTO provider_tokens").
		WithArgs(pt.UserID, pt.Provider, pt.AccessToken, pt.RefreshToken, pt.ExpiresAt, pt.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.UpsertProviderTokens(context.Background(), pt))
	assert.NoError(t, mock.ExpectationsWereMet())
}
