package service

//go:generate mockgen -destination=../../mocks/mock_session_issuer.go -package=mocks github.com/slimmermetai/auth-service/internal/auth/service SessionIssuer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/internal/auth/domain"
	"github.com/slimmermetai/auth-service/internal/auth/dto"
	autherror "github.com/slimmermetai/auth-service/internal/errors"
	"github.com/slimmermetai/auth-service/internal/notifier"
	"github.com/slimmermetai/auth-service/pkg/constant"
)

// SessionIssuer mints the bearer + refresh pair. Password and federated
// logins both converge on this contract.
type SessionIssuer interface {
	IssueSession(ctx context.Context, user *domain.User, ip, userAgent string, loginTime time.Time) (*dto.TokenResponse, error)
}

// UserService composes the credential, token and guard services into the
// register / login / refresh / logout / reset flows.
type UserService struct {
	cfg       *config.Config
	users     domain.UserRepository
	refresh   domain.RefreshTokenRepository
	ephemeral domain.EphemeralTokenRepository
	blacklist domain.TokenBlacklistRepository
	guard     *LoginGuard
	passwords *PasswordService
	tokens    TokenGenerator
	notify    notifier.Notifier
	logger    zerolog.Logger
}

func NewUserService(
	cfg *config.Config,
	users domain.UserRepository,
	refresh domain.RefreshTokenRepository,
	ephemeral domain.EphemeralTokenRepository,
	blacklist domain.TokenBlacklistRepository,
	guard *LoginGuard,
	passwords *PasswordService,
	tokens TokenGenerator,
	notify notifier.Notifier,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		cfg:       cfg,
		users:     users,
		refresh:   refresh,
		ephemeral: ephemeral,
		blacklist: blacklist,
		guard:     guard,
		passwords: passwords,
		tokens:    tokens,
		notify:    notify,
		logger:    logger,
	}
}

// NormalizeEmail is the single case-normalization path for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) refreshTTL() time.Duration {
	return time.Duration(s.cfg.RefreshExpiryDays) * 24 * time.Hour
}

// IssueSession generates a bearer token and rotates in a fresh opaque
// refresh token, replacing any the user already holds.
func (s *UserService) IssueSession(ctx context.Context, user *domain.User, ip, userAgent string, loginTime time.Time) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokens.Generate(user.ID, user.Email, user.Role, loginTime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	opaque, err := newOpaqueToken(constant.RefreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     opaque,
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: now.Add(s.refreshTTL()),
		CreatedAt: now,
	}
	if err := s.refresh.Replace(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: opaque,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, *dto.TokenResponse, error) {
	email := NormalizeEmail(input.Email)

	if !s.passwords.IsStrong(input.Password, MinPasswordLength) {
		return nil, nil, autherror.ErrWeakPassword
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         constant.DefaultUserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	if err := s.sendEmailVerification(ctx, user); err != nil {
		// Registration stands; the user can request a new link.
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to send verification email")
	}

	tokens, err := s.IssueSession(ctx, user, "", "", time.Time{})
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *UserService) sendEmailVerification(ctx context.Context, user *domain.User) error {
	token, err := newOpaqueToken(constant.RefreshTokenBytes)
	if err != nil {
		return err
	}

	now := time.Now()
	et := &domain.EphemeralToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     token,
		Kind:      constant.KindEmailVerification,
		ExpiresAt: now.Add(constant.EmailVerificationTTL),
		CreatedAt: now,
	}
	if err := s.ephemeral.Replace(ctx, et); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.FrontendURL, token)
	return s.notify.Send(ctx, user.Email, "Verify your email address",
		fmt.Sprintf("Confirm your email address by opening %s. The link expires in 24 hours.", link))
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	email := NormalizeEmail(input.Email)

	blocked, err := s.guard.IsBlocked(ctx, email)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil || !s.passwords.Verify(input.Password, user.PasswordHash) {
		if recErr := s.guard.Record(ctx, email, input.IPAddress, input.UserAgent, false); recErr != nil {
			s.logger.Error().Err(recErr).Str("email", email).Msg("failed to record login attempt")
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if s.passwords.NeedsRehash(user.PasswordHash) {
		if newHash, hashErr := s.passwords.Hash(input.Password); hashErr == nil {
			if upErr := s.users.UpdatePasswordHash(ctx, user.ID, newHash); upErr != nil {
				s.logger.Warn().Err(upErr).Str("user_id", user.ID).Msg("failed to persist rehashed password")
			}
		}
	}

	if err := s.guard.Record(ctx, email, input.IPAddress, input.UserAgent, true); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to record login attempt")
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	return s.IssueSession(ctx, user, input.IPAddress, input.UserAgent, now)
}

func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	userID, err := s.refresh.Redeem(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	return s.IssueSession(ctx, user, input.IPAddress, input.UserAgent, time.Time{})
}

// Logout is best-effort: the client-visible result never depends on internal
// cleanup. The presented refresh token is deleted and the bearer token is
// blacklisted until its natural expiry.
func (s *UserService) Logout(ctx context.Context, refreshToken, accessToken string) {
	if refreshToken != "" {
		if err := s.refresh.Delete(ctx, refreshToken); err != nil {
			s.logger.Warn().Err(err).Msg("failed to delete refresh token on logout")
		}
	}

	if accessToken == "" {
		return
	}
	claims, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return
	}
	sig := s.tokens.SignatureOf(accessToken)
	if sig == "" || claims.ExpiresAt == nil {
		return
	}
	bt := &domain.BlacklistedToken{
		ID:        uuid.NewString(),
		UserID:    claims.Subject,
		Signature: sig,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: time.Now(),
	}
	if err := s.blacklist.Add(ctx, bt); err != nil {
		s.logger.Warn().Err(err).Str("user_id", claims.Subject).Msg("failed to blacklist access token on logout")
	}
}

// ForgotPassword issues a reset token when the account exists. Unknown
// emails return the same nil result so responses cannot be used to probe
// which addresses are registered.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := newOpaqueToken(constant.RefreshTokenBytes)
	if err != nil {
		return err
	}

	now := time.Now()
	et := &domain.EphemeralToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     token,
		Kind:      constant.KindPasswordReset,
		ExpiresAt: now.Add(constant.PasswordResetTTL),
		CreatedAt: now,
	}
	if err := s.ephemeral.Replace(ctx, et); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, token)
	if err := s.notify.Send(ctx, user.Email, "Reset your password",
		fmt.Sprintf("Reset your password by opening %s. The link expires in 1 hour.", link)); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to send password reset email")
	}
	return nil
}

// ResetPassword redeems the single-use reset token. The token consumption,
// the password swap and the revocation of every refresh token happen in one
// transaction inside the repository.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	if !s.passwords.IsStrong(input.NewPassword, MinPasswordLength) {
		return autherror.ErrWeakPassword
	}

	hash, err := s.passwords.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	userID, err := s.ephemeral.RedeemPasswordReset(ctx, input.Token, hash)
	if err != nil {
		return err
	}
	if userID == "" {
		return autherror.ErrEphemeralTokenSpent
	}

	s.logger.Info().Str("user_id", userID).Msg("password reset completed, all sessions revoked")
	return nil
}

func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.ephemeral.RedeemEmailVerification(ctx, token)
	if err != nil {
		return err
	}
	if userID == "" {
		return autherror.ErrEphemeralTokenSpent
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return &dto.UserOutput{
		ID:            user.ID,
		Email:         user.Email,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		LastLoginAt:   user.LastLoginAt,
	}, nil
}
