package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
)

// LoginGuard throttles brute-force login attempts. It counts failures in a
// trailing window from the append-only login_attempts log; a successful
// login implicitly resets the counter because only failures after the most
// recent success are counted.
type LoginGuard struct {
	attempts    domain.LoginAttemptRepository
	maxAttempts int
	window      time.Duration
}

func NewLoginGuard(attempts domain.LoginAttemptRepository, maxAttempts, windowMinutes int) *LoginGuard {
	return &LoginGuard{
		attempts:    attempts,
		maxAttempts: maxAttempts,
		window:      time.Duration(windowMinutes) * time.Minute,
	}
}

func (g *LoginGuard) Record(ctx context.Context, email, ip, userAgent string, success bool) error {
	return g.attempts.Record(ctx, &domain.LoginAttempt{
		ID:          uuid.NewString(),
		Email:       email,
		IPAddress:   ip,
		UserAgent:   userAgent,
		AttemptTime: time.Now(),
		Successful:  success,
	})
}

// IsBlocked is consulted before any credential check so a blocked caller
// never reaches the expensive hash comparison.
func (g *LoginGuard) IsBlocked(ctx context.Context, email string) (bool, error) {
	count, err := g.attempts.CountRecentFailures(ctx, email, g.window)
	if err != nil {
		return false, err
	}
	return count >= g.maxAttempts, nil
}
