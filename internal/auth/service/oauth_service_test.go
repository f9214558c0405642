package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/internal/auth/domain"
	"github.com/slimmermetai/auth-service/internal/auth/dto"
	"github.com/slimmermetai/auth-service/internal/auth/service"
	autherror "github.com/slimmermetai/auth-service/internal/errors"
	"github.com/slimmermetai/auth-service/internal/mocks"
)

type oauthFixture struct {
	users    *mocks.MockUserRepository
	states   *mocks.MockOAuthRepository
	sessions *mocks.MockSessionIssuer
	svc      *service.OAuthService
}

func newOAuthFixture(ctrl *gomock.Controller, providerURL string) *oauthFixture {
	f := &oauthFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		states:   mocks.NewMockOAuthRepository(ctrl),
		sessions: mocks.NewMockSessionIssuer(ctrl),
	}

	cfg := &config.Config{
		FrontendURL:       "http://localhost:3000",
		OAuthProvider:     "google",
		OAuthClientID:     "client-id",
		OAuthClientSecret: "client-secret",
		OAuthRedirectURL:  "http://localhost:8080/api/v1/oauth/callback",
		OAuthScopes:       []string{"openid", "email", "profile"},
		OAuthAuthURL:      providerURL + "/auth",
		OAuthTokenURL:     providerURL + "/token",
		OAuthUserInfoURL:  providerURL + "/userinfo",
	}

	f.svc = service.NewOAuthService(cfg, f.users, f.states, f.sessions,
		service.NewPasswordService(bcrypt.MinCost), zerolog.Nop())
	return f
}

func TestOAuthService_GenerateAuthURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthFixture(ctrl, "https://provider.example.com")

	var saved *domain.OAuthExchangeState
	f.states.EXPECT().SaveExchangeState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.OAuthExchangeState) error {
			saved = rec
			return nil
		})

	authURL, err := f.svc.GenerateAuthURL(context.Background(), "/dashboard")
	require.NoError(t, err)
	require.NotNil(t, saved)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	q := parsed.Query()

	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, saved.State, q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Equal(t, "offline", q.Get("access_type"))

	assert.NotEmpty(t, saved.CodeVerifier)
	assert.Equal(t, "/dashboard", saved.RedirectAfter)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), saved.ExpiresAt, time.Minute)
}

func TestOAuthService_HandleCallback_UnknownState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthFixture(ctrl, "https://provider.example.com")

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "no-such-state").Return(nil, nil)

	tokens, _, err := f.svc.HandleCallback(context.Background(), "code", "no-such-state", "", "")
	assert.ErrorIs(t, err, autherror.ErrOAuthStateMismatch)
	assert.Nil(t, tokens)
}

func TestOAuthService_HandleCallback_ExpiredState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthFixture(ctrl, "https://provider.example.com")

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "stale-state").Return(&domain.OAuthExchangeState{
		State:        "stale-state",
		CodeVerifier: "verifier",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}, nil)

	tokens, _, err := f.svc.HandleCallback(context.Background(), "code", "stale-state", "", "")
	assert.ErrorIs(t, err, autherror.ErrOAuthStateMismatch)
	assert.Nil(t, tokens)
}

func TestOAuthService_HandleCallback_ProviderDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthFixture(ctrl, "https://provider.example.com")

	// The state is consumed even when the provider sent no code.
	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "good-state").Return(&domain.OAuthExchangeState{
		State:         "good-state",
		CodeVerifier:  "verifier",
		RedirectAfter: "/settings",
		ExpiresAt:     time.Now().Add(5 * time.Minute),
	}, nil)

	tokens, redirectAfter, err := f.svc.HandleCallback(context.Background(), "", "good-state", "", "")
	assert.ErrorIs(t, err, autherror.ErrOAuthProvider)
	assert.Equal(t, "/settings", redirectAfter)
	assert.Nil(t, tokens)
}

func newFakeProvider(t *testing.T, wantVerifier string, profile map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "provider-code", r.Form.Get("code"))
		assert.Equal(t, wantVerifier, r.Form.Get("code_verifier"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "provider-access-token",
			"token_type":    "bearer",
			"refresh_token": "provider-refresh-token",
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-access-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(profile)
	})
	return httptest.NewServer(mux)
}

func TestOAuthService_HandleCallback_NewUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t, "test-verifier", map[string]any{
		"sub":            "provider-sub-1",
		"email":          "Federated@Example.com",
		"email_verified": true,
		"name":           "Federated User",
	})
	defer provider.Close()

	f := newOAuthFixture(ctrl, provider.URL)

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "good-state").Return(&domain.OAuthExchangeState{
		State:         "good-state",
		CodeVerifier:  "test-verifier",
		RedirectAfter: "/dashboard",
		ExpiresAt:     time.Now().Add(5 * time.Minute),
	}, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), "federated@example.com").Return(nil, nil)

	var created *domain.User
	f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		})
	f.states.EXPECT().UpsertProviderTokens(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pt *domain.ProviderTokens) error {
			assert.Equal(t, "google", pt.Provider)
			assert.Equal(t, "provider-access-token", pt.AccessToken)
			assert.Equal(t, "provider-refresh-token", pt.RefreshToken)
			return nil
		})
	f.sessions.EXPECT().IssueSession(gomock.Any(), gomock.Any(), "10.0.0.1", "test-agent", gomock.Any()).
		Return(&dto.TokenResponse{AccessToken: "local-access", RefreshToken: "local-refresh"}, nil)

	tokens, redirectAfter, err := f.svc.HandleCallback(context.Background(), "provider-code", "good-state", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, "local-access", tokens.AccessToken)
	assert.Equal(t, "/dashboard", redirectAfter)
	require.NotNil(t, created)
	assert.Equal(t, "federated@example.com", created.Email)
	assert.True(t, created.EmailVerified)
	assert.NotEmpty(t, created.PasswordHash)
}

func TestOAuthService_HandleCallback_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t, "test-verifier", map[string]any{
		"sub":            "provider-sub-1",
		"email":          "known@example.com",
		"email_verified": true,
	})
	defer provider.Close()

	f := newOAuthFixture(ctrl, provider.URL)

	existing := &domain.User{ID: "user-123", Email: "known@example.com", Role: "user"}

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "good-state").Return(&domain.OAuthExchangeState{
		State:        "good-state",
		CodeVerifier: "test-verifier",
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), "known@example.com").Return(existing, nil)
	f.users.EXPECT().UpdateLastLogin(gomock.Any(), "user-123", gomock.Any()).Return(nil)
	f.states.EXPECT().UpsertProviderTokens(gomock.Any(), gomock.Any()).Return(nil)
	f.sessions.EXPECT().IssueSession(gomock.Any(), existing, "", "", gomock.Any()).
		Return(&dto.TokenResponse{AccessToken: "local-access"}, nil)

	tokens, _, err := f.svc.HandleCallback(context.Background(), "provider-code", "good-state", "", "")
	require.NoError(t, err)
	assert.Equal(t, "local-access", tokens.AccessToken)
}

func TestOAuthService_HandleCallback_UnverifiedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t, "test-verifier", map[string]any{
		"sub":            "provider-sub-1",
		"email":          "unverified@example.com",
		"email_verified": false,
	})
	defer provider.Close()

	f := newOAuthFixture(ctrl, provider.URL)

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "good-state").Return(&domain.OAuthExchangeState{
		State:        "good-state",
		CodeVerifier: "test-verifier",
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}, nil)

	tokens, _, err := f.svc.HandleCallback(context.Background(), "provider-code", "good-state", "", "")
	assert.ErrorIs(t, err, autherror.ErrOAuthEmailUnverified)
	assert.Nil(t, tokens)
}
