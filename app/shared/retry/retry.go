// Package retry wraps guild-scoped storage operations with a bounded
// exponential backoff. Only conflicts flagged as retryable are retried;
// everything else surfaces to the caller immediately.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharederrors"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 25 * time.Millisecond
)

// Config bounds the retry loop. OnRetry, when set, runs once per retried
// conflict before the next attempt.
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	OnRetry         func()
}

// DefaultConfig returns the bounds used when the caller passes a zero Config.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      defaultMaxRetries,
		InitialInterval: defaultInitialInterval,
	}
}

// Do runs op, retrying on sharederrors.ErrConcurrentModification with
// exponential backoff up to cfg.MaxRetries additional attempts. After
// exhaustion the conflict error is returned unchanged so callers still see
// the retryable kind.
func Do(ctx context.Context, cfg Config, logger *slog.Logger, name string, op func(ctx context.Context) error) error {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = defaultInitialInterval
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, sharederrors.ErrConcurrentModification) {
			logger.Warn("retrying on write conflict",
				slog.String("operation", name),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			if cfg.OnRetry != nil {
				cfg.OnRetry()
			}
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx))

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}
