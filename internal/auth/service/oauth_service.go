package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/internal/auth/domain"
	"github.com/slimmermetai/auth-service/internal/auth/dto"
	autherror "github.com/slimmermetai/auth-service/internal/errors"
	"github.com/slimmermetai/auth-service/pkg/constant"
)

// providerTimeout bounds every call to the external provider. Auth fails
// closed; it never hangs on a slow provider.
const providerTimeout = 8 * time.Second

// OAuthService runs the PKCE authorization-code flow against an external
// provider and converges on the same session-issuance contract as the
// password flow.
type OAuthService struct {
	cfg       *config.Config
	oauth     *oauth2.Config
	users     domain.UserRepository
	states    domain.OAuthRepository
	sessions  SessionIssuer
	passwords *PasswordService
	client    *http.Client
	logger    zerolog.Logger
}

func NewOAuthService(
	cfg *config.Config,
	users domain.UserRepository,
	states domain.OAuthRepository,
	sessions SessionIssuer,
	passwords *PasswordService,
	logger zerolog.Logger,
) *OAuthService {
	return &OAuthService{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       cfg.OAuthScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
		users:     users,
		states:    states,
		sessions:  sessions,
		passwords: passwords,
		client:    &http.Client{Timeout: providerTimeout},
		logger:    logger,
	}
}

// GenerateAuthURL starts a flow: it mints a state nonce and a PKCE verifier,
// persists them with a 10 minute expiry and returns the provider URL carrying
// the S256 challenge.
func (s *OAuthService) GenerateAuthURL(ctx context.Context, redirectAfter string) (string, error) {
	state, err := newOpaqueToken(constant.RefreshTokenBytes)
	if err != nil {
		return "", err
	}
	verifier := oauth2.GenerateVerifier()

	now := time.Now()
	record := &domain.OAuthExchangeState{
		State:         state,
		CodeVerifier:  verifier,
		RedirectAfter: redirectAfter,
		ExpiresAt:     now.Add(constant.OAuthStateTTL),
		CreatedAt:     now,
	}
	if err := s.states.SaveExchangeState(ctx, record); err != nil {
		return "", err
	}

	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	), nil
}

// HandleCallback consumes the stored exchange state (single use, deleted on
// every outcome), exchanges the code with the provider and returns a local
// session plus the post-login redirect target recorded when the flow started.
func (s *OAuthService) HandleCallback(ctx context.Context, code, state, ip, userAgent string) (*dto.TokenResponse, string, error) {
	record, err := s.states.ConsumeExchangeState(ctx, state)
	if err != nil {
		return nil, "", err
	}
	if record == nil || time.Now().After(record.ExpiresAt) {
		return nil, "", autherror.ErrOAuthStateMismatch
	}
	if code == "" {
		return nil, record.RedirectAfter, autherror.ErrOAuthProvider
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	exCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	token, err := s.oauth.Exchange(exCtx, code, oauth2.VerifierOption(record.CodeVerifier))
	if err != nil {
		s.logger.Error().Err(err).Msg("oauth code exchange failed")
		return nil, record.RedirectAfter, autherror.ErrOAuthProvider
	}

	profile, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		s.logger.Error().Err(err).Msg("oauth userinfo fetch failed")
		return nil, record.RedirectAfter, autherror.ErrOAuthProvider
	}
	if profile.Email == "" || !profile.EmailVerified {
		return nil, record.RedirectAfter, autherror.ErrOAuthEmailUnverified
	}

	user, err := s.findOrCreateUser(ctx, profile)
	if err != nil {
		return nil, record.RedirectAfter, err
	}

	if err := s.states.UpsertProviderTokens(ctx, &domain.ProviderTokens{
		UserID:       user.ID,
		Provider:     s.cfg.OAuthProvider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
		UpdatedAt:    time.Now(),
	}); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist provider tokens")
	}

	session, err := s.sessions.IssueSession(ctx, user, ip, userAgent, time.Now())
	if err != nil {
		return nil, record.RedirectAfter, err
	}
	return session, record.RedirectAfter, nil
}

func (s *OAuthService) fetchUserInfo(ctx context.Context, accessToken string) (*domain.ProviderProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.OAuthUserInfoURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var profile domain.ProviderProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// findOrCreateUser links the provider identity to a local account by
// normalized email. New accounts get a random unusable password and start
// verified, since the provider vouched for the address.
func (s *OAuthService) findOrCreateUser(ctx context.Context, profile *domain.ProviderProfile) (*domain.User, error) {
	email := NormalizeEmail(profile.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
		}
		return user, nil
	}

	placeholder, err := s.passwords.HashRandomPlaceholder()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user = &domain.User{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  placeholder,
		Role:          constant.DefaultUserRole,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
