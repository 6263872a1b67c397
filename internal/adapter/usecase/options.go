package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Option configures a use case.
type Option func(*base)

// WithClock replaces time.Now. Tests use it to move past deadlines.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.nowFn = now }
}

// WithLogger sets the logger used for post-commit failures.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) { b.logger = logger }
}

// WithEvents sets where committed events are published.
func WithEvents(events port.EventPublisher) Option {
	return func(b *base) { b.events = events }
}

// base holds what every use case shares.
type base struct {
	nowFn  func() time.Time
	logger *slog.Logger
	events port.EventPublisher
}

func newBase(opts []Option) base {
	b := base{
		nowFn:  time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// now returns the clock reading at the precision the stores persist.
func (b *base) now() time.Time {
	return b.nowFn().UTC().Truncate(time.Microsecond)
}

// publish hands e to the event publisher. The mutation has already
// committed, so a failure is logged rather than returned.
func (b *base) publish(ctx context.Context, e domain.Event) {
	if b.events == nil {
		return
	}
	if err := b.events.Publish(ctx, e); err != nil {
		b.logger.Error("publish event",
			slog.String("type", e.Type()),
			slog.String("campaign", e.Campaign().String()),
			slog.Any("error", err))
	}
}
