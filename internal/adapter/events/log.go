package events

import (
	"context"
	"log/slog"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// LogPublisher writes each event to a structured log.
type LogPublisher struct {
	logger *slog.Logger
}

var _ port.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, e domain.Event) error {
	p.logger.LogAttrs(ctx, slog.LevelDebug, "event",
		slog.String("type", e.Type()),
		slog.String("campaign", e.Campaign().String()),
		slog.Any("data", e))
	return nil
}
