package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the auth surface. oauthHandler is nil when no
// provider is configured; the oauth routes are then simply absent.
func RegisterRoutes(app *fiber.App, h *AuthHandler, oauthHandler *OAuthHandler, requireAuth fiber.Handler) {
	v1 := app.Group("/api/v1")

	v1.Post("/register", h.Register)
	v1.Post("/login", h.Login)
	v1.Post("/refresh", h.Refresh)
	v1.Post("/logout", h.Logout)
	v1.Post("/forgot-password", h.ForgotPassword)
	v1.Post("/reset-password", h.ResetPassword)
	v1.Post("/verify-email", h.VerifyEmail)
	v1.Get("/me", requireAuth, h.Me)

	if oauthHandler != nil {
		v1.Get("/oauth/start", oauthHandler.Start)
		v1.Get("/oauth/callback", oauthHandler.Callback)
	}
}
