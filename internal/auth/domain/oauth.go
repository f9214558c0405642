package domain

import "time"

// OAuthExchangeState is a single-use record binding an authorization attempt
// to its PKCE verifier. Created when the authorization URL is generated,
// consumed exactly once when the callback arrives.
type OAuthExchangeState struct {
	State         string
	CodeVerifier  string
	RedirectAfter string
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

// ProviderTokens are the external provider's own tokens, kept for
// provider-side refresh. One row per (user, provider).
type ProviderTokens struct {
	UserID       string
	Provider     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// ProviderProfile is the subset of the provider's userinfo response the
// federation flow needs.
type ProviderProfile struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
