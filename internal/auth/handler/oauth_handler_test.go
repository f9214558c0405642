package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/internal/auth/domain"
	"github.com/slimmermetai/auth-service/internal/auth/dto"
	"github.com/slimmermetai/auth-service/internal/auth/handler"
	"github.com/slimmermetai/auth-service/internal/auth/service"
	"github.com/slimmermetai/auth-service/internal/mocks"
	"github.com/slimmermetai/auth-service/pkg/constant"
)

type oauthHandlerFixture struct {
	users    *mocks.MockUserRepository
	states   *mocks.MockOAuthRepository
	sessions *mocks.MockSessionIssuer
	app      *fiber.App
}

func newOAuthHandlerFixture(ctrl *gomock.Controller, providerURL string) *oauthHandlerFixture {
	f := &oauthHandlerFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		states:   mocks.NewMockOAuthRepository(ctrl),
		sessions: mocks.NewMockSessionIssuer(ctrl),
	}

	cfg := &config.Config{
		RefreshExpiryDays: 7,
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

	oauthService := service.NewOAuthService(cfg, f.users, f.states, f.sessions,
		service.NewPasswordService(bcrypt.MinCost), zerolog.Nop())
	oauthHandler := handler.NewOAuthHandler(oauthService, cfg, zerolog.Nop())

	f.app = fiber.New()
	f.app.Get("/api/v1/oauth/start", oauthHandler.Start)
	f.app.Get("/api/v1/oauth/callback", oauthHandler.Callback)
	return f
}

func TestOAuthStartRedirectsToProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthHandlerFixture(ctrl, "https://provider.example.com")

	var saved *domain.OAuthExchangeState
	f.states.EXPECT().SaveExchangeState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.OAuthExchangeState) error {
			saved = rec
			return nil
		})

	resp, err := f.app.Test(httptest.NewRequest("GET", "/api/v1/oauth/start?redirect=/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	location := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(location, "https://provider.example.com/auth"))
	require.NotNil(t, saved)
	assert.Contains(t, location, saved.State)
	assert.Contains(t, location, "code_challenge_method=S256")
	assert.Equal(t, "/dashboard", saved.RedirectAfter)
}

func TestOAuthCallbackProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthHandlerFixture(ctrl, "https://provider.example.com")

	// The state burns even when the provider denied the flow.
	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "state-1").Return(nil, nil)

	resp, err := f.app.Test(httptest.NewRequest("GET",
		"/api/v1/oauth/callback?error=access_denied&state=state-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000/login?error=oauth_denied", resp.Header.Get("Location"))
}

func TestOAuthCallbackUnknownState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOAuthHandlerFixture(ctrl, "https://provider.example.com")

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "forged-state").Return(nil, nil)

	resp, err := f.app.Test(httptest.NewRequest("GET",
		"/api/v1/oauth/callback?code=provider-code&state=forged-state", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000/login?error=oauth_state_invalid", resp.Header.Get("Location"))
}

func TestOAuthCallbackSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":            "provider-sub-1",
			"email":          "known@example.com",
			"email_verified": true,
		})
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	f := newOAuthHandlerFixture(ctrl, provider.URL)
	existing := &domain.User{ID: "user-123", Email: "known@example.com", Role: "user"}

	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "good-state").Return(&domain.OAuthExchangeState{
		State:         "good-state",
		CodeVerifier:  "verifier",
		RedirectAfter: "/dashboard",
		ExpiresAt:     time.Now().Add(5 * time.Minute),
	}, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), "known@example.com").Return(existing, nil)
	f.users.EXPECT().UpdateLastLogin(gomock.Any(), "user-123", gomock.Any()).Return(nil)
	f.states.EXPECT().UpsertProviderTokens(gomock.Any(), gomock.Any()).Return(nil)
	f.sessions.EXPECT().IssueSession(gomock.Any(), existing, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&dto.TokenResponse{AccessToken: "local-access", RefreshToken: "local-refresh"}, nil)

	resp, err := f.app.Test(httptest.NewRequest("GET",
		"/api/v1/oauth/callback?code=provider-code&state=good-state", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000/dashboard?login=success", resp.Header.Get("Location"))

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == constant.RefreshTokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, "local-refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestOAuthCallbackRejectsForeignRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":            "provider-sub-1",
			"email":          "known@example.com",
			"email_verified": true,
		})
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	f := newOAuthHandlerFixture(ctrl, provider.URL)
	existing := &domain.User{ID: "user-123", Email: "known@example.com", Role: "user"}

	// A protocol-relative redirect recorded at flow start collapses to "/".
	f.states.EXPECT().ConsumeExchangeState(gomock.Any(), "good-state").Return(&domain.OAuthExchangeState{
		State:         "good-state",
		CodeVerifier:  "verifier",
		RedirectAfter: "//evil.example.com/phish",
		ExpiresAt:     time.Now().Add(5 * time.Minute),
	}, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), "known@example.com").Return(existing, nil)
	f.users.EXPECT().UpdateLastLogin(gomock.Any(), "user-123", gomock.Any()).Return(nil)
	f.states.EXPECT().UpsertProviderTokens(gomock.Any(), gomock.Any()).Return(nil)
	f.sessions.EXPECT().IssueSession(gomock.Any(), existing, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&dto.TokenResponse{AccessToken: "local-access", RefreshToken: "local-refresh"}, nil)

	resp, err := f.app.Test(httptest.NewRequest("GET",
		"/api/v1/oauth/callback?code=provider-code&state=good-state", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/?login=success", resp.Header.Get("Location"))
}
