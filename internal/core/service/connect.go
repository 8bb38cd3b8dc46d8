package service

import (
	"context"
	"errors"
	"time"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

// ConnectOnStart selects the live source at boot. Seed credentials, when
// given, are stored through Configure; otherwise stored credentials are
// reused. Connection failures are retried with exponential backoff, a missing
// configuration or a storage failure is not.
func ConnectOnStart(ctx context.Context, home port.SmartHome, url, token string, b backoff.BackOff, logger *zap.Logger) error {
	seeded := false
	connect := func() error {
		var err error
		if url != "" && token != "" && !seeded {
			err = home.Configure(ctx, url, token)
			// credentials are persisted by Configure even on probe failure
			seeded = err == nil || errors.Is(err, domain.ErrConnectionFailed)
		} else {
			err = home.Reconnect(ctx)
		}
		if err == nil || errors.Is(err, domain.ErrConnectionFailed) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("home assistant not reachable, retrying", zap.Error(err), zap.Duration("next", next))
	}
	return backoff.RetryNotify(connect, backoff.WithContext(b, ctx), notify)
}

// StartupBackOff is a short bounded policy for the boot connection attempt.
func StartupBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	return b
}
