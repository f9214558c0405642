package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/slimmermetai/auth-service/internal/auth/domain"
)

type LoginAttemptRepository struct {
	db DB
}

func NewLoginAttemptRepository(db DB) *LoginAttemptRepository {
	return &LoginAttemptRepository{db: db}
}

// Record appends to the audit log. There is no read-modify-write counter, so
// concurrent failures cannot lose writes.
func (r *LoginAttemptRepository) Record(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, email, ip_address, user_agent, attempt_time, successful)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, attempt.ID, attempt.Email, attempt.IPAddress, attempt.UserAgent, attempt.AttemptTime, attempt.Successful)
	return err
}

// CountRecentFailures counts failed attempts inside the trailing window,
// ignoring anything older than the most recent successful login. A success
// therefore resets the effective counter without deleting audit rows.
func (r *LoginAttemptRepository) CountRecentFailures(ctx context.Context, email string, window time.Duration) (int, error) {
	cutoff := time.Now().Add(-window)

	row := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM login_attempts
		WHERE email = $1
		  AND successful = FALSE
		  AND attempt_time > $2
		  AND attempt_time > COALESCE(
			(SELECT MAX(attempt_time) FROM login_attempts WHERE email = $1 AND successful = TRUE),
			to_timestamp(0))
	`, email, cutoff)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count login failures: %w", err)
	}
	return count, nil
}
