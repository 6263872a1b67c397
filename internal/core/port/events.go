package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// EventPublisher receives ledger events after the mutation that produced
// them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
