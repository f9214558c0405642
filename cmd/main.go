package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/db"
	"github.com/slimmermetai/auth-service/internal/auth/handler"
	repo "github.com/slimmermetai/auth-service/internal/auth/repository/postgres"
	"github.com/slimmermetai/auth-service/internal/auth/service"
	"github.com/slimmermetai/auth-service/internal/notifier"
)

func main() {
	cfg := config.Load()

	logger := log.Logger
	if !cfg.IsProduction() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	ctx := context.Background()
	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	userRepo := repo.NewUserRepository(dbPool)
	refreshRepo := repo.NewRefreshTokenRepository(dbPool)
	ephemeralRepo := repo.NewEphemeralTokenRepository(dbPool)
	attemptRepo := repo.NewLoginAttemptRepository(dbPool)
	oauthRepo := repo.NewOAuthRepository(dbPool)
	blacklistRepo := repo.NewTokenBlacklistRepository(dbPool)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	passwordService := service.NewPasswordService(cfg.BcryptCost)
	loginGuard := service.NewLoginGuard(attemptRepo, cfg.LoginMaxAttempts, cfg.LoginWindowMin)
	notify := notifier.NewLogNotifier(logger)

	userService := service.NewUserService(cfg, userRepo, refreshRepo, ephemeralRepo,
		blacklistRepo, loginGuard, passwordService, tokenService, notify, logger)

	authHandler := handler.NewAuthHandler(userService, cfg, logger)

	var oauthHandler *handler.OAuthHandler
	if cfg.OAuthEnabled() {
		if cfg.OAuthClientSecret == "" || cfg.OAuthRedirectURL == "" {
			logger.Fatal().Msg("OAUTH_CLIENT_ID is set but OAUTH_CLIENT_SECRET or OAUTH_REDIRECT_URL is missing")
		}
		oauthService := service.NewOAuthService(cfg, userRepo, oauthRepo, userService, passwordService, logger)
		oauthHandler = handler.NewOAuthHandler(oauthService, cfg, logger)
	} else {
		logger.Warn().Msg("oauth federation disabled: OAUTH_CLIENT_ID not set")
	}

	app := fiber.New()
	requireAuth := handler.RequireAuth(tokenService, blacklistRepo, logger)
	handler.RegisterRoutes(app, authHandler, oauthHandler, requireAuth)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth service listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
