package repository

import (
	"context"

	"salon/internal/domain/entity"
)

// Unsubscribe cancels a long-lived subscription. Implementations must be
// idempotent and safe to call multiple times; the owning context must invoke
// it on teardown so no callback mutates state after the consumer is gone.
type Unsubscribe func()

// MessageRepository is the append-only message store for salons.
type MessageRepository interface {
	// Add persists a new message and returns it with the server-assigned id
	// and creation timestamp filled in.
	Add(ctx context.Context, msg *entity.Message) (*entity.Message, error)

	// Subscribe registers a snapshot listener for all messages of a salon,
	// ordered by creation time descending. Every change redelivers the
	// entire current matching set, never deltas. An empty snapshot is a
	// valid delivery. A terminal store error is reported once through
	// onError and the subscription stops; retrying is the caller's call.
	Subscribe(
		ctx context.Context,
		salonID string,
		onSnapshot func(messages []entity.Message),
		onError func(err error),
	) (Unsubscribe, error)
}
