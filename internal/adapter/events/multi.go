package events

import (
	"context"
	"errors"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Multi publishes every event to each of its publishers in order. One
// failing publisher does not stop the others.
type Multi []port.EventPublisher

var _ port.EventPublisher = Multi(nil)

func (m Multi) Publish(ctx context.Context, e domain.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
