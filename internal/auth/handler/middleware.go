package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
	"github.com/slimmermetai/auth-service/internal/auth/service"
)

// ClaimsKey is where RequireAuth stores the verified claims in the request
// locals.
const ClaimsKey = "claims"

func bearerToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// RequireAuth verifies the bearer token and rejects blacklisted ones. Any
// failure, including a blacklist lookup error, denies the request.
func RequireAuth(tokens service.TokenGenerator, blacklist domain.TokenBlacklistRepository, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return unauthorized(c)
		}

		claims, err := tokens.VerifyAccessToken(raw)
		if err != nil {
			return unauthorized(c)
		}

		if sig := tokens.SignatureOf(raw); sig != "" {
			blocked, err := blacklist.Contains(c.UserContext(), sig)
			if err != nil {
				logger.Error().Err(err).Msg("token blacklist lookup failed")
				return unauthorized(c)
			}
			if blocked {
				return unauthorized(c)
			}
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
}
