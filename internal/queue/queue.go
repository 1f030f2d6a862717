package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

var (
	// ErrFull is returned by Push when the queue has no free slot.
	ErrFull = errors.New("queue: full")
	// ErrStopped is returned by Push after Stop.
	ErrStopped = errors.New("queue: stopped")
)

// Config controls the behaviour of a Queue.
type Config struct {
	Name         string
	Size         int
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Queue is a bounded multi-producer queue. Producers never block; a single
// consumer drains it either with Drain or with the Consume poll loop.
type Queue[T any] struct {
	name     string
	items    chan T
	interval time.Duration
	logger   *slog.Logger

	stopped atomic.Bool
}

// New creates a Queue with the supplied configuration.
func New[T any](cfg Config) *Queue[T] {
	size := cfg.Size
	if size <= 0 {
		size = 1024
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 15 * time.Millisecond
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue[T]{
		name:     cfg.Name,
		items:    make(chan T, size),
		interval: interval,
		logger:   logger,
	}
}

// Push enqueues v without blocking.
func (q *Queue[T]) Push(v T) error {
	if q.stopped.Load() {
		return ErrStopped
	}
	select {
	case q.items <- v:
		return nil
	default:
		return ErrFull
	}
}

// Drain removes every pending item and returns them in FIFO order.
func (q *Queue[T]) Drain() []T {
	var out []T
	for {
		select {
		case v := <-q.items:
			out = append(out, v)
		default:
			return out
		}
	}
}

// Len reports the number of pending items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Consume drains the queue into handle until ctx is cancelled. When the queue
// is empty it sleeps for the poll interval instead of spinning.
func (q *Queue[T]) Consume(ctx context.Context, handle func(context.Context, T) error) {
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()
	for {
	DRAIN_LOOP:
		for {
			select {
			case <-ctx.Done():
				return
			case v := <-q.items:
				if err := handle(ctx, v); err != nil {
					q.logger.WarnContext(ctx, "queue: handler error", "queue", q.name, "err", err)
				}
			default:
				break DRAIN_LOOP
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stop rejects further pushes. Items already queued stay drainable.
func (q *Queue[T]) Stop() {
	q.stopped.Store(true)
}
