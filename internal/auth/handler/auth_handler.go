package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/slimmermetai/auth-service/config"
	"github.com/slimmermetai/auth-service/internal/auth/dto"
	"github.com/slimmermetai/auth-service/internal/auth/service"
	autherror "github.com/slimmermetai/auth-service/internal/errors"
	"github.com/slimmermetai/auth-service/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
	cfg         *config.Config
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewAuthHandler(userService *service.UserService, cfg *config.Config, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cfg:         cfg,
		validate:    validator.New(),
		logger:      logger,
	}
}

// statusForError maps service errors onto the HTTP taxonomy. Everything not
// recognized is an internal failure that must not leak details.
func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidToken),
		errors.Is(err, autherror.ErrRefreshTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrTooManyLoginAttempts):
		return fiber.StatusTooManyRequests
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrWeakPassword),
		errors.Is(err, autherror.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, autherror.ErrEphemeralTokenSpent):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *AuthHandler) respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Path()).Msg("internal error")
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// setRefreshCookieForDays delivers the refresh token to browsers:
// HttpOnly, Secure, SameSite=Strict, path "/".
func setRefreshCookieForDays(c *fiber.Ctx, token string, days int) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(days) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	setRefreshCookieForDays(c, token, h.cfg.RefreshExpiryDays)
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}

	user, tokens, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": dto.UserOutput{
			ID:            user.ID,
			Email:         user.Email,
			Role:          user.Role,
			EmailVerified: user.EmailVerified,
			CreatedAt:     user.CreatedAt,
		},
		"access_token": tokens.AccessToken,
		"expires_at":   tokens.ExpiresAt,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	tokens, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	// Cookie first; body is the fallback for non-browser clients.
	if token := c.Cookies(constant.RefreshTokenCookie); token != "" {
		input.RefreshToken = token
	} else if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return h.respondError(c, autherror.ErrRefreshTokenInvalid)
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	tokens, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	return c.Status(fiber.StatusOK).JSON(tokens)
}

// Logout always answers 200; cleanup failures stay server-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies(constant.RefreshTokenCookie)
	if refreshToken == "" {
		var input dto.RefreshInput
		if err := c.BodyParser(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}

	h.userService.Logout(c.UserContext(), refreshToken, bearerToken(c))

	h.clearRefreshCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

// ForgotPassword answers identically whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	const message = "If that email address is registered, a reset link has been sent."

	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err == nil && h.validate.Struct(input) == nil {
		if err := h.userService.ForgotPassword(c.UserContext(), input.Email); err != nil {
			return h.respondError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}

	if err := h.userService.ResetPassword(c.UserContext(), input); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password updated"})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.respondError(c, autherror.ErrInvalidInput)
	}

	if err := h.userService.VerifyEmail(c.UserContext(), input.Token); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "email verified"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals(ClaimsKey).(*service.JWTCustomClaims)
	if !ok {
		return h.respondError(c, autherror.ErrInvalidToken)
	}

	profile, err := h.userService.Profile(c.UserContext(), claims.Subject)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}
