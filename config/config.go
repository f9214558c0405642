package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultAccessExpiryMin   = 15
	DefaultRefreshExpiryDays = 7
	DefaultBcryptCost        = 12
	DefaultLoginMaxAttempts  = 5
	DefaultLoginWindowMin    = 15
)

type Config struct {
	Env  string
	Port string

	DBURL string

	// AccessTokenSecret signs bearer tokens. There is no fallback: a missing
	// secret aborts startup instead of silently signing with a weak default.
	AccessTokenSecret string
	AccessExpiryMin   int
	RefreshExpiryDays int

	BcryptCost int

	LoginMaxAttempts int
	LoginWindowMin   int

	OAuthProvider     string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthUserInfoURL  string
	OAuthRedirectURL  string
	OAuthScopes       []string

	// FrontendURL is where OAuth callbacks redirect the browser and where
	// verification/reset links point.
	FrontendURL string
}

func Load() *Config {
	env := getEnv("ENV", "development")
	loadEnvFile(env)

	return &Config{
		Env:               env,
		Port:              getEnv("PORT", "8080"),
		DBURL:             mustGetEnv("DB_URL"),
		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:   getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessExpiryMin),
		RefreshExpiryDays: getEnvAsInt("REFRESH_TOKEN_EXPIRY_DAYS", DefaultRefreshExpiryDays),
		BcryptCost:        getEnvAsInt("PASSWORD_BCRYPT_COST", DefaultBcryptCost),
		LoginMaxAttempts:  getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LoginWindowMin:    getEnvAsInt("LOGIN_WINDOW_MINUTES", DefaultLoginWindowMin),
		OAuthProvider:     getEnv("OAUTH_PROVIDER", "google"),
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),
		OAuthAuthURL:      getEnv("OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth"),
		OAuthTokenURL:     getEnv("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
		OAuthUserInfoURL:  getEnv("OAUTH_USERINFO_URL", "https://openidconnect.googleapis.com/v1/userinfo"),
		OAuthRedirectURL:  getEnv("OAUTH_REDIRECT_URL", ""),
		OAuthScopes:       splitScopes(getEnv("OAUTH_SCOPES", "openid email profile")),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

// OAuthEnabled reports whether federation is configured. Partially configured
// federation (id without secret or redirect) is a startup error, checked in main.
func (c *Config) OAuthEnabled() bool {
	return c.OAuthClientID != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func loadEnvFile(env string) {
	file := "config/.env.dev"
	if env == "production" {
		file = "config/.env.prod"
	}
	// Absent files are fine; real deployments inject plain env vars.
	_ = godotenv.Load(file)
}

func splitScopes(s string) []string {
	return strings.Fields(s)
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatal().Str("key", key).Msg("missing required environment variable")
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultVal).Msg("invalid integer value, using default")
		return defaultVal
	}
	return val
}
