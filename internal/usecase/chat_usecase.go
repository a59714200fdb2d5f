package usecase

import (
	"context"

	"salon/internal/domain/entity"
)

// SendMessageInput carries everything needed to persist and fan out one
// chat message.
type SendMessageInput struct {
	SalonID    string
	SenderID   string
	SenderName string
	Text       string
}

// SalonSession is a live view over one salon: the merged, chronologically
// ascending sequence of confirmed and optimistic messages.
type SalonSession interface {
	// Messages returns the current merged display sequence.
	Messages() []entity.Message

	// Close cancels the underlying snapshot subscription. Idempotent.
	Close()
}

// ChatUsecase drives the realtime message synchronization engine.
type ChatUsecase interface {
	// OpenSalon subscribes to a salon's message stream. onUpdate receives
	// the full merged sequence after every change; onError receives the
	// terminal subscription error (reported once, no auto-retry) and stale
	// send notices.
	OpenSalon(
		ctx context.Context,
		salonID string,
		onUpdate func(messages []entity.Message),
		onError func(err error),
	) (SalonSession, error)

	// Send persists a message, merges it into the open salon view
	// immediately, and dispatches a best-effort push notification to the
	// other participant. Persistence failure aborts the whole operation.
	Send(ctx context.Context, input SendMessageInput) (*entity.Message, error)
}
