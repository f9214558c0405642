package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/slimmermetai/auth-service/internal/auth/service TokenGenerator

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/slimmermetai/auth-service/internal/errors"
)

type TokenGenerator interface {
	Generate(userID, email, role string, loginTime time.Time) (string, time.Time, error)
	GetAccessTokenExpiry() time.Duration
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	SignatureOf(tokenString string) string
}

// TokenService issues and verifies the stateless bearer token (HS256 JWT).
// It is the only signer in the codebase; every caller resolves the secret
// through this one path.
type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	LoginTime int64  `json:"login_time,omitempty"`
}

func NewTokenService(accessSecret string, accessMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret: accessSecret,
		AccessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(userID, email, role string, loginTime time.Time) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.AccessTokenExpiry)

	claims := JWTCustomClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if !loginTime.IsZero() {
		claims.LoginTime = loginTime.Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

// VerifyAccessToken parses and validates the given access token string.
// Malformed, expired and forged tokens all collapse to the same error so the
// response shape never reveals why a token was rejected.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrInvalidToken
		}
		return []byte(ts.AccessTokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

// SignatureOf returns the signature segment of a compact JWT, or "" when the
// token does not have three segments. The blacklist keys on it.
func (ts *TokenService) SignatureOf(tokenString string) string {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ""
	}
	return parts[2]
}
