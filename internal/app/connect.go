package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
)

// connectWithRetry calls dial with exponential backoff until it succeeds or
// the attempts run out.
func connectWithRetry[T any](ctx context.Context, logger *slog.Logger, name string, dial func(context.Context) (T, error)) (T, error) {
	var conn T
	backoff := retry.WithMaxRetries(connectAttempts-1, retry.WithCappedDuration(5*time.Second, retry.NewExponential(connectBackoff)))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		c, err := dial(ctx)
		if err != nil {
			logger.Warn("connection attempt failed",
				slog.String("target", name),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	return conn, err
}
