package notifier

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks github.com/slimmermetai/auth-service/internal/notifier Notifier

import (
	"context"

	"github.com/rs/zerolog"
)

// Notifier delivers out-of-band messages (verification links, reset links).
// Actual mail transport lives outside this service.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogNotifier writes messages to the log instead of delivering them. Used in
// development and as the default when no transport is wired.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, to, subject, body string) error {
	n.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("notification (log transport)")
	return nil
}
