package netsync

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ReconnectPolicy は再接続の試行回数と間隔の上限です。
type ReconnectPolicy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// RandomizationFactor は間隔に掛けるジッタの幅です。0 のとき間隔は固定の指数列になります。
	RandomizationFactor float64
}

func DefaultReconnectPolicy() ReconnectPolicy {
	return ReconnectPolicy{
		MaxTries:            5,
		InitialInterval:     500 * time.Millisecond,
		MaxInterval:         5 * time.Second,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
	}
}

// MinInterval は試行どうしの間隔の下限です。
func (p ReconnectPolicy) MinInterval() time.Duration {
	initial := p.InitialInterval
	if initial <= 0 {
		initial = backoff.DefaultInitialInterval
	}
	return time.Duration(float64(initial) * (1 - p.RandomizationFactor))
}

func (p ReconnectPolicy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.RandomizationFactor = p.RandomizationFactor
	b.Reset()
	return b
}

// connect は指数バックオフで Link.Connect を最大 MaxTries 回試みます。
func (s *Sync) connect(ctx context.Context) error {
	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if err := s.link.Connect(ctx); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(s.cfg.Reconnect.backOff()),
		backoff.WithMaxTries(s.cfg.Reconnect.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.WarnContext(ctx, "netsync: connect failed, retrying",
				"attempt", attempt,
				"next", next,
				"err", err,
			)
		}),
	)
	return err
}
