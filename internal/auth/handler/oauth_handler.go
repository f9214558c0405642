package handler

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/internal/auth/service"
	autherror "github.com/slimmermetai/auth-service/internal/errors"
)

type OAuthHandler struct {
	oauthService *service.OAuthService
	cfg          *config.Config
	logger       zerolog.Logger
}

func NewOAuthHandler(oauthService *service.OAuthService, cfg *config.Config, logger zerolog.Logger) *OAuthHandler {
	return &OAuthHandler{oauthService: oauthService, cfg: cfg, logger: logger}
}

// Start redirects the browser to the provider's authorization endpoint.
func (h *OAuthHandler) Start(c *fiber.Ctx) error {
	redirectAfter := c.Query("redirect", "/")

	authURL, err := h.oauthService.GenerateAuthURL(c.UserContext(), redirectAfter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to start oauth flow")
		return h.redirectWithError(c, "oauth_start_failed")
	}

	return c.Redirect(authURL, fiber.StatusFound)
}

// Callback finishes the flow. Every outcome is a 302 back to the frontend;
// failures carry an opaque error code, never the provider's message.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warn().
			Str("error", errParam).
			Str("description", c.Query("error_description")).
			Msg("provider reported oauth error")
		// Consume the stored state anyway so it cannot be replayed.
		_, _, _ = h.oauthService.HandleCallback(c.UserContext(), "", c.Query("state"), c.IP(), string(c.Request().Header.UserAgent()))
		return h.redirectWithError(c, "oauth_denied")
	}

	session, redirectAfter, err := h.oauthService.HandleCallback(
		c.UserContext(), c.Query("code"), c.Query("state"), c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		h.logger.Error().Err(err).Msg("oauth callback failed")
		return h.redirectWithError(c, callbackErrorCode(err))
	}

	setRefreshCookieForDays(c, session.RefreshToken, h.cfg.RefreshExpiryDays)

	target := fmt.Sprintf("%s%s?login=success", h.cfg.FrontendURL, sanitizeRedirect(redirectAfter))
	return c.Redirect(target, fiber.StatusFound)
}

func callbackErrorCode(err error) string {
	switch {
	case errors.Is(err, autherror.ErrOAuthStateMismatch):
		return "oauth_state_invalid"
	case errors.Is(err, autherror.ErrOAuthEmailUnverified):
		return "oauth_email_unverified"
	default:
		return "oauth_failed"
	}
}

func (h *OAuthHandler) redirectWithError(c *fiber.Ctx, code string) error {
	target := fmt.Sprintf("%s/login?error=%s", h.cfg.FrontendURL, url.QueryEscape(code))
	return c.Redirect(target, fiber.StatusFound)
}

// sanitizeRedirect only allows local paths, so the callback can never be
// turned into an open redirect.
func sanitizeRedirect(path string) string {
	if path == "" || path[0] != '/' || (len(path) > 1 && path[1] == '/') {
		return "/"
	}
	return path
}
